package acceptance

import (
	"fmt"
	"net/http"

	"github.com/WesleyJeean/Animeflix/internal/domain"
)

func (s *Suite) TestAnime_ListAndFilters() {
	s.seedAnime("Action Show", []string{"Action", "Adventure"}, []string{"Super Power"})
	s.seedAnime("Romance Show", []string{"Romance", "Drama"}, []string{"School"})
	s.seedAnime("Action Drama", []string{"Action", "Drama"}, []string{"Dark"})

	resp := s.do(http.MethodGet, "/api/anime", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var all []domain.Anime
	s.decode(resp, &all)
	s.Len(all, 3)

	resp = s.do(http.MethodGet, "/api/anime?genre=Action", "", nil)
	var action []domain.Anime
	s.decode(resp, &action)
	s.Len(action, 2)

	resp = s.do(http.MethodGet, "/api/anime?tag=School", "", nil)
	var school []domain.Anime
	s.decode(resp, &school)
	s.Len(school, 1)
	s.Equal("Romance Show", school[0].Title)

	resp = s.do(http.MethodGet, "/api/anime?search=drama", "", nil)
	var drama []domain.Anime
	s.decode(resp, &drama)
	s.Len(drama, 1, "Title search is substring, case-insensitive")
	s.Equal("Action Drama", drama[0].Title)

	resp = s.do(http.MethodGet, "/api/anime?limit=2", "", nil)
	var limited []domain.Anime
	s.decode(resp, &limited)
	s.Len(limited, 2)
}

func (s *Suite) TestAnime_GetByID() {
	anime := s.seedAnime("Single Title", []string{"Drama"}, []string{"Slow"})

	resp := s.do(http.MethodGet, "/api/anime/"+anime.ID, "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var got domain.Anime
	s.decode(resp, &got)
	s.Equal(anime.ID, got.ID)
	s.Equal("Single Title", got.Title)
	s.Equal([]string{"Drama"}, got.Genres)

	missing := s.do(http.MethodGet, "/api/anime/anime_missing00000", "", nil)
	defer missing.Body.Close()
	s.Equal(http.StatusNotFound, missing.StatusCode)
}

func (s *Suite) TestAnime_EpisodesOrdered() {
	anime := s.seedAnime("Episodic", []string{"Action"}, nil)
	// Insert out of order, read back ordered
	s.seedEpisode(anime.ID, 3)
	s.seedEpisode(anime.ID, 1)
	s.seedEpisode(anime.ID, 2)

	resp := s.do(http.MethodGet, fmt.Sprintf("/api/anime/%s/episodes", anime.ID), "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var episodes []domain.Episode
	s.decode(resp, &episodes)
	s.Require().Len(episodes, 3)
	for i, episode := range episodes {
		s.Equal(i+1, episode.EpisodeNumber)
	}
}

func (s *Suite) TestAnime_Recommendations() {
	base := s.seedAnime("Base", []string{"Action", "Mecha"}, nil)
	s.seedAnime("Shares Genre", []string{"Action"}, nil)
	s.seedAnime("Unrelated", []string{"Romance"}, nil)

	resp := s.do(http.MethodGet, fmt.Sprintf("/api/anime/%s/recommendations", base.ID), "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var recs []domain.Anime
	s.decode(resp, &recs)
	s.Require().Len(recs, 1, "Recommendations share a genre and exclude the source")
	s.Equal("Shares Genre", recs[0].Title)

	// Unknown id yields an empty list, not an error
	unknown := s.do(http.MethodGet, "/api/anime/anime_missing00000/recommendations", "", nil)
	s.Equal(http.StatusOK, unknown.StatusCode)
	var empty []domain.Anime
	s.decode(unknown, &empty)
	s.Empty(empty)
}

func (s *Suite) TestAnime_Shelves() {
	for i := 0; i < 12; i++ {
		s.seedAnime(fmt.Sprintf("Title %02d", i), []string{"Action"}, nil)
	}

	trending := s.do(http.MethodGet, "/api/anime/trending", "", nil)
	s.Equal(http.StatusOK, trending.StatusCode)
	var trendingList []domain.Anime
	s.decode(trending, &trendingList)
	s.Len(trendingList, 10)

	newest := s.do(http.MethodGet, "/api/anime/new-releases", "", nil)
	s.Equal(http.StatusOK, newest.StatusCode)
	var newestList []domain.Anime
	s.decode(newest, &newestList)
	s.Len(newestList, 10)
	s.Equal("Title 11", newestList[0].Title, "New releases are newest first")
}

func (s *Suite) TestSearch_TrimmedSummaries() {
	s.seedAnime("Cowboy Bebop", []string{"Sci-Fi"}, nil)
	s.seedAnime("Cowboy Western", []string{"Drama"}, nil)
	s.seedAnime("Space Opera", []string{"Sci-Fi"}, nil)

	resp := s.do(http.MethodGet, "/api/search?q=cowboy", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var results []domain.AnimeSummary
	s.decode(resp, &results)
	s.Len(results, 2)
	for _, result := range results {
		s.NotEmpty(result.ID)
		s.NotEmpty(result.Title)
		s.NotEmpty(result.PosterURL)
	}
}
