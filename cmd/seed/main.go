package main

import (
	"context"
	"fmt"
	"log"

	"github.com/WesleyJeean/Animeflix/internal/config"
	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/utils"
	"github.com/WesleyJeean/Animeflix/pkg/database"
)

type seedAnime struct {
	Title         string
	Synopsis      string
	TrailerURL    string
	PosterURL     string
	BannerURL     string
	Studio        string
	Year          int
	AgeRating     string
	Genres        []string
	Tags          []string
	TotalEpisodes int
}

var catalog = []seedAnime{
	{
		Title:         "Dragon Ball Z",
		Synopsis:      "Goku and his friends defend Earth against powerful villains from across the universe. Epic battles, transformations, and the legendary Super Saiyan await.",
		TrailerURL:    "https://www.youtube.com/watch?v=UJOjTNDY-h8",
		PosterURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/oc5ypo6v_images%20%281%29.jpg",
		BannerURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/oc5ypo6v_images%20%281%29.jpg",
		Studio:        "Toei Animation",
		Year:          1989,
		AgeRating:     "TV-PG",
		Genres:        []string{"Action", "Adventure", "Shounen"},
		Tags:          []string{"Martial Arts", "Super Power", "Comedy"},
		TotalEpisodes: 12,
	},
	{
		Title:         "Naruto",
		Synopsis:      "Naruto Uzumaki, a young ninja who seeks recognition from his peers and dreams of becoming the Hokage, the leader of his village.",
		TrailerURL:    "https://www.youtube.com/watch?v=QczGoCmX-pI",
		PosterURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/7mizyp6c_MV5BYTgyZDhmMTEtZDFhNi00MTc4LTg3NjUtYWJlNGE5Mzk2NzMxXkEyXkFqcGc%40._V1_.jpg",
		BannerURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/7mizyp6c_MV5BYTgyZDhmMTEtZDFhNi00MTc4LTg3NjUtYWJlNGE5Mzk2NzMxXkEyXkFqcGc%40._V1_.jpg",
		Studio:        "Studio Pierrot",
		Year:          2002,
		AgeRating:     "TV-PG",
		Genres:        []string{"Action", "Adventure", "Shounen"},
		Tags:          []string{"Ninja", "Martial Arts", "Super Power"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Death Note",
		Synopsis:      "A high school student discovers a supernatural notebook that allows him to kill anyone by writing their name in it, leading to a cat-and-mouse game with a detective.",
		TrailerURL:    "https://www.youtube.com/watch?v=tJZtOrm-WPk",
		PosterURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/bett7axk_089875.jpg",
		BannerURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/bett7axk_089875.jpg",
		Studio:        "Madhouse",
		Year:          2006,
		AgeRating:     "TV-14",
		Genres:        []string{"Mystery", "Thriller", "Supernatural"},
		Tags:          []string{"Psychological", "Detective", "Dark"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Jujutsu Kaisen",
		Synopsis:      "A high school student joins a secret organization of Jujutsu Sorcerers to kill a powerful Curse and save humanity from evil spirits.",
		TrailerURL:    "https://www.youtube.com/watch?v=4A_X-Dvl0ws",
		PosterURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/asqga2he_Jujutsu_Kaisen_Cover.png",
		BannerURL:     "https://customer-assets.emergentagent.com/job_fe791525-1daf-4323-bf52-6df37239687e/artifacts/asqga2he_Jujutsu_Kaisen_Cover.png",
		Studio:        "MAPPA",
		Year:          2020,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Supernatural", "Shounen"},
		Tags:          []string{"Dark Fantasy", "School", "Demons"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Attack on Titan",
		Synopsis:      "Humanity fights for survival against giant humanoid Titans that have pushed mankind to the brink of extinction.",
		TrailerURL:    "https://www.youtube.com/watch?v=LHtdKWJdif4",
		PosterURL:     "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f",
		BannerURL:     "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f",
		Studio:        "Wit Studio / MAPPA",
		Year:          2013,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Drama", "Fantasy"},
		Tags:          []string{"Military", "Dark", "Gore"},
		TotalEpisodes: 12,
	},
	{
		Title:         "My Hero Academia",
		Synopsis:      "In a world where most humans have superpowers, a powerless boy enrolls in a prestigious hero academy to become the greatest hero.",
		TrailerURL:    "https://www.youtube.com/watch?v=D5fYOnwYkj4",
		PosterURL:     "https://images.unsplash.com/photo-1618336753974-aae8e04506aa",
		BannerURL:     "https://images.unsplash.com/photo-1618336753974-aae8e04506aa",
		Studio:        "Bones",
		Year:          2016,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Comedy", "Shounen"},
		Tags:          []string{"Super Power", "School", "Hero"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Demon Slayer",
		Synopsis:      "A family is attacked by demons, and the only survivors are a boy and his sister, who has been turned into a demon. He vows to find a cure and kill demons.",
		TrailerURL:    "https://www.youtube.com/watch?v=VQGCKyvzIM4",
		PosterURL:     "https://images.unsplash.com/photo-1578632767115-351597cf2477",
		BannerURL:     "https://images.unsplash.com/photo-1578632767115-351597cf2477",
		Studio:        "ufotable",
		Year:          2019,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Supernatural", "Shounen"},
		Tags:          []string{"Demons", "Historical", "Swordplay"},
		TotalEpisodes: 12,
	},
	{
		Title:         "One Punch Man",
		Synopsis:      "The story of a hero who can defeat any opponent with a single punch, seeking a challenge and meaning in his overwhelming power.",
		TrailerURL:    "https://www.youtube.com/watch?v=Poo5lqoWSGw",
		PosterURL:     "https://images.unsplash.com/photo-1612036782180-6f0b6cd846fe",
		BannerURL:     "https://images.unsplash.com/photo-1612036782180-6f0b6cd846fe",
		Studio:        "Madhouse",
		Year:          2015,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Comedy", "Parody"},
		Tags:          []string{"Super Power", "Hero", "Sci-Fi"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Fullmetal Alchemist: Brotherhood",
		Synopsis:      "Two brothers search for the Philosopher's Stone to restore their bodies after a failed alchemical experiment.",
		TrailerURL:    "https://www.youtube.com/watch?v=O8mMmZ_Zaqo",
		PosterURL:     "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
		BannerURL:     "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
		Studio:        "Bones",
		Year:          2009,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Adventure", "Drama"},
		Tags:          []string{"Military", "Magic", "Shounen"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Steins;Gate",
		Synopsis:      "A group of friends discover time travel through a microwave, leading to dire consequences that must be undone.",
		TrailerURL:    "https://www.youtube.com/watch?v=27OZc-ku6is",
		PosterURL:     "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0",
		BannerURL:     "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0",
		Studio:        "White Fox",
		Year:          2011,
		AgeRating:     "TV-14",
		Genres:        []string{"Sci-Fi", "Thriller", "Drama"},
		Tags:          []string{"Time Travel", "Psychological", "Mystery"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Sword Art Online",
		Synopsis:      "Players are trapped in a virtual reality MMORPG and must clear all levels to escape, with death in-game meaning death in real life.",
		TrailerURL:    "https://www.youtube.com/watch?v=6ohYYtxfDCg",
		PosterURL:     "https://images.unsplash.com/photo-1542751371-adc38448a05e",
		BannerURL:     "https://images.unsplash.com/photo-1542751371-adc38448a05e",
		Studio:        "A-1 Pictures",
		Year:          2012,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Adventure", "Fantasy"},
		Tags:          []string{"Virtual Reality", "Game", "Romance"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Code Geass",
		Synopsis:      "An exiled prince obtains the power of Geass and leads a rebellion against the tyrannical empire that conquered his homeland.",
		TrailerURL:    "https://www.youtube.com/watch?v=moDqpBN4wTc",
		PosterURL:     "https://images.unsplash.com/photo-1601850494422-3cf14624b0b3",
		BannerURL:     "https://images.unsplash.com/photo-1601850494422-3cf14624b0b3",
		Studio:        "Sunrise",
		Year:          2006,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Drama", "Mecha"},
		Tags:          []string{"Military", "Super Power", "School"},
		TotalEpisodes: 12,
	},
	{
		Title:         "Tokyo Ghoul",
		Synopsis:      "A college student becomes a half-ghoul and must navigate the dangerous world between humans and ghouls.",
		TrailerURL:    "https://www.youtube.com/watch?v=vGuQeQsoRgU",
		PosterURL:     "https://images.unsplash.com/photo-1613109526778-27605f1f27d2",
		BannerURL:     "https://images.unsplash.com/photo-1613109526778-27605f1f27d2",
		Studio:        "Studio Pierrot",
		Year:          2014,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Horror", "Supernatural"},
		Tags:          []string{"Gore", "Psychological", "Dark"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Hunter x Hunter",
		Synopsis:      "A young boy embarks on a journey to become a Hunter and find his father, encountering friends and enemies along the way.",
		TrailerURL:    "https://www.youtube.com/watch?v=d6kBeJjTGnY",
		PosterURL:     "https://images.unsplash.com/photo-1607252650355-f7fd0460ccdb",
		BannerURL:     "https://images.unsplash.com/photo-1607252650355-f7fd0460ccdb",
		Studio:        "Madhouse",
		Year:          2011,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Adventure", "Shounen"},
		Tags:          []string{"Super Power", "Fantasy", "Friendship"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Cowboy Bebop",
		Synopsis:      "A ragtag crew of bounty hunters travels through space in 2071, dealing with their pasts and hunting criminals.",
		TrailerURL:    "https://www.youtube.com/watch?v=qig4KOK2R2g",
		PosterURL:     "https://images.unsplash.com/photo-1569003339405-ea396a5a8a90",
		BannerURL:     "https://images.unsplash.com/photo-1569003339405-ea396a5a8a90",
		Studio:        "Sunrise",
		Year:          1998,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Sci-Fi", "Drama"},
		Tags:          []string{"Space", "Bounty Hunter", "Jazz"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Mob Psycho 100",
		Synopsis:      "A powerful psychic tries to live a normal life while dealing with spirits and his own overwhelming emotions.",
		TrailerURL:    "https://www.youtube.com/watch?v=Bw-5Lka7gPE",
		PosterURL:     "https://images.unsplash.com/photo-1535666669445-e8c15cd2e7d9",
		BannerURL:     "https://images.unsplash.com/photo-1535666669445-e8c15cd2e7d9",
		Studio:        "Bones",
		Year:          2016,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Comedy", "Supernatural"},
		Tags:          []string{"Super Power", "School", "Slice of Life"},
		TotalEpisodes: 8,
	},
	{
		Title:         "One Piece",
		Synopsis:      "A young pirate sets sail to find the legendary treasure One Piece and become the King of the Pirates.",
		TrailerURL:    "https://www.youtube.com/watch?v=MCb13lbVGE0",
		PosterURL:     "https://images.unsplash.com/photo-1620503374956-c942862f0372",
		BannerURL:     "https://images.unsplash.com/photo-1620503374956-c942862f0372",
		Studio:        "Toei Animation",
		Year:          1999,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Adventure", "Comedy"},
		Tags:          []string{"Pirates", "Shounen", "Fantasy"},
		TotalEpisodes: 12,
	},
	{
		Title:         "Vinland Saga",
		Synopsis:      "A young Viking warrior seeks revenge while navigating the brutal world of medieval warfare and exploration.",
		TrailerURL:    "https://www.youtube.com/watch?v=xEVcTStgA4A",
		PosterURL:     "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4",
		BannerURL:     "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4",
		Studio:        "Wit Studio",
		Year:          2019,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Adventure", "Drama"},
		Tags:          []string{"Historical", "Vikings", "Seinen"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Spy x Family",
		Synopsis:      "A spy, an assassin, and a telepath form a fake family for their respective missions, leading to comedic and heartwarming situations.",
		TrailerURL:    "https://www.youtube.com/watch?v=U_rWZK_8vUk",
		PosterURL:     "https://images.unsplash.com/photo-1603366445787-09714680cbf1",
		BannerURL:     "https://images.unsplash.com/photo-1603366445787-09714680cbf1",
		Studio:        "Wit Studio / CloverWorks",
		Year:          2022,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Comedy", "Slice of Life"},
		Tags:          []string{"Spy", "Family", "Wholesome"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Re:Zero - Starting Life in Another World",
		Synopsis:      "A young man is transported to a fantasy world and discovers he can return to a specific point in time upon death.",
		TrailerURL:    "https://www.youtube.com/watch?v=ETWPtIfesyA",
		PosterURL:     "https://images.unsplash.com/photo-1571847690160-bc0bde0a9b12",
		BannerURL:     "https://images.unsplash.com/photo-1571847690160-bc0bde0a9b12",
		Studio:        "White Fox",
		Year:          2016,
		AgeRating:     "TV-MA",
		Genres:        []string{"Drama", "Fantasy", "Thriller"},
		Tags:          []string{"Isekai", "Time Loop", "Psychological"},
		TotalEpisodes: 10,
	},
	{
		Title:         "Bleach",
		Synopsis:      "A teenager gains the powers of a Soul Reaper and must protect the living world from evil spirits and guide souls to the afterlife.",
		TrailerURL:    "https://www.youtube.com/watch?v=cBbbyHiQ2os",
		PosterURL:     "https://images.unsplash.com/photo-1580477667995-2b94f01c9516",
		BannerURL:     "https://images.unsplash.com/photo-1580477667995-2b94f01c9516",
		Studio:        "Studio Pierrot",
		Year:          2004,
		AgeRating:     "TV-14",
		Genres:        []string{"Action", "Adventure", "Supernatural"},
		Tags:          []string{"Shounen", "Swordplay", "Spirits"},
		TotalEpisodes: 12,
	},
	{
		Title:         "Chainsaw Man",
		Synopsis:      "A young man merges with a devil to become Chainsaw Man and joins a government agency hunting devils.",
		TrailerURL:    "https://www.youtube.com/watch?v=v4yLeNt-kCU",
		PosterURL:     "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae",
		BannerURL:     "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae",
		Studio:        "MAPPA",
		Year:          2022,
		AgeRating:     "TV-MA",
		Genres:        []string{"Action", "Horror", "Supernatural"},
		Tags:          []string{"Gore", "Dark Fantasy", "Demons"},
		TotalEpisodes: 8,
	},
	{
		Title:         "Your Name",
		Synopsis:      "Two strangers find themselves linked in a bizarre way and must search for each other across time and space.",
		TrailerURL:    "https://www.youtube.com/watch?v=xU47nhruN-Q",
		PosterURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		BannerURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		Studio:        "CoMix Wave Films",
		Year:          2016,
		AgeRating:     "TV-PG",
		Genres:        []string{"Romance", "Drama", "Fantasy"},
		Tags:          []string{"Body Swap", "Supernatural", "Movie"},
		TotalEpisodes: 5,
	},
}

func intPtr(v int) *int {
	return &v
}

// episodesFor generates the episode rows for one title. The first episode
// has no skip markers; later ones share fixed intro and recap windows.
func episodesFor(anime *domain.Anime) []*domain.Episode {
	episodes := make([]*domain.Episode, 0, anime.TotalEpisodes)
	for i := 1; i <= anime.TotalEpisodes; i++ {
		episode := &domain.Episode{
			ID:              utils.NewID("episode"),
			AnimeID:         anime.ID,
			SeasonNumber:    1,
			EpisodeNumber:   i,
			Title:           fmt.Sprintf("Episode %d", i),
			ThumbnailURL:    anime.PosterURL,
			VideoURL:        fmt.Sprintf("https://example.com/video/%s/ep%d.mp4", anime.ID, i),
			DurationSeconds: 1440,
		}
		if i > 1 {
			episode.SkipIntroStart = intPtr(90)
			episode.SkipIntroEnd = intPtr(180)
			episode.SkipRecapStart = intPtr(10)
			episode.SkipRecapEnd = intPtr(90)
		}
		episodes = append(episodes, episode)
	}
	return episodes
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgres(cfg.Postgres.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(cfg.Postgres.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repos := repository.NewRepositories(db)

	for _, entry := range catalog {
		trailer := entry.TrailerURL
		anime := &domain.Anime{
			ID:            utils.NewID("anime"),
			Title:         entry.Title,
			Synopsis:      entry.Synopsis,
			TrailerURL:    &trailer,
			PosterURL:     entry.PosterURL,
			BannerURL:     entry.BannerURL,
			Studio:        entry.Studio,
			Year:          entry.Year,
			AgeRating:     entry.AgeRating,
			Genres:        entry.Genres,
			Tags:          entry.Tags,
			TotalEpisodes: entry.TotalEpisodes,
		}

		if err := repos.Anime.Create(ctx, anime); err != nil {
			log.Fatalf("Failed to seed %s: %v", entry.Title, err)
		}

		for _, episode := range episodesFor(anime) {
			if err := repos.Episode.Create(ctx, episode); err != nil {
				log.Fatalf("Failed to seed episode %d of %s: %v", episode.EpisodeNumber, entry.Title, err)
			}
		}

		log.Printf("Seeded %s with %d episodes", entry.Title, entry.TotalEpisodes)
	}

	log.Printf("Seeding completed, %d titles", len(catalog))
}
