package acceptance

import (
	"fmt"
	"net/http"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
)

func (s *Suite) TestWatchHistory_SaveAndContinueWatching() {
	_, token := s.signup("watcher@example.com", "Watcher")
	profile := s.createProfile(token, "Main")

	anime := s.seedAnime("Long Runner", []string{"Action"}, nil)
	ep1 := s.seedEpisode(anime.ID, 1)
	ep2 := s.seedEpisode(anime.ID, 2)

	resp := s.do(http.MethodPost, "/api/watch-history?profile_id="+profile.ID, token, dto.WatchProgressRequest{
		AnimeID:         anime.ID,
		EpisodeID:       ep1.ID,
		ProgressSeconds: 300,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// The second save for the same anime replaces the record
	resp = s.do(http.MethodPost, "/api/watch-history?profile_id="+profile.ID, token, dto.WatchProgressRequest{
		AnimeID:         anime.ID,
		EpisodeID:       ep2.ID,
		ProgressSeconds: 60,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	cw := s.do(http.MethodGet, fmt.Sprintf("/api/watch-history/%s/continue-watching", profile.ID), token, nil)
	s.Equal(http.StatusOK, cw.StatusCode)

	var entries []domain.ContinueWatchingEntry
	s.decode(cw, &entries)
	s.Require().Len(entries, 1)
	s.Equal(anime.ID, entries[0].Anime.ID)
	s.Equal(ep2.ID, entries[0].Episode.ID)
	s.Equal(60, entries[0].ProgressSeconds)
}

func (s *Suite) TestWatchHistory_CompletedLeavesShelf() {
	_, token := s.signup("finisher@example.com", "Finisher")
	profile := s.createProfile(token, "Main")

	anime := s.seedAnime("Short Show", []string{"Drama"}, nil)
	ep := s.seedEpisode(anime.ID, 1)

	resp := s.do(http.MethodPost, "/api/watch-history?profile_id="+profile.ID, token, dto.WatchProgressRequest{
		AnimeID:         anime.ID,
		EpisodeID:       ep.ID,
		ProgressSeconds: 1440,
		Completed:       true,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	cw := s.do(http.MethodGet, fmt.Sprintf("/api/watch-history/%s/continue-watching", profile.ID), token, nil)
	var entries []domain.ContinueWatchingEntry
	s.decode(cw, &entries)
	s.Empty(entries)
}

func (s *Suite) TestWatchHistory_ForeignProfileIsNotFound() {
	_, ownerToken := s.signup("owner2@example.com", "Owner")
	profile := s.createProfile(ownerToken, "Main")

	anime := s.seedAnime("Guarded", []string{"Action"}, nil)
	ep := s.seedEpisode(anime.ID, 1)

	_, intruderToken := s.signup("intruder2@example.com", "Intruder")

	resp := s.do(http.MethodPost, "/api/watch-history?profile_id="+profile.ID, intruderToken, dto.WatchProgressRequest{
		AnimeID:         anime.ID,
		EpisodeID:       ep.ID,
		ProgressSeconds: 10,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	cw := s.do(http.MethodGet, fmt.Sprintf("/api/watch-history/%s/continue-watching", profile.ID), intruderToken, nil)
	defer cw.Body.Close()
	s.Equal(http.StatusNotFound, cw.StatusCode)
}

func (s *Suite) TestMyList_AddGetRemove() {
	_, token := s.signup("lister@example.com", "Lister")
	profile := s.createProfile(token, "Main")
	anime := s.seedAnime("Bookmark Me", []string{"Comedy"}, nil)

	addURL := fmt.Sprintf("/api/my-list?profile_id=%s&anime_id=%s", profile.ID, anime.ID)

	resp := s.do(http.MethodPost, addURL, token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// Second add is rejected
	dup := s.do(http.MethodPost, addURL, token, nil)
	defer dup.Body.Close()
	s.Equal(http.StatusBadRequest, dup.StatusCode)

	listResp := s.do(http.MethodGet, "/api/my-list/"+profile.ID, token, nil)
	s.Equal(http.StatusOK, listResp.StatusCode)
	var listed []domain.Anime
	s.decode(listResp, &listed)
	s.Require().Len(listed, 1)
	s.Equal(anime.ID, listed[0].ID)

	removeURL := fmt.Sprintf("/api/my-list/%s/%s", profile.ID, anime.ID)
	removeResp := s.do(http.MethodDelete, removeURL, token, nil)
	defer removeResp.Body.Close()
	s.Equal(http.StatusOK, removeResp.StatusCode)

	// Removing again is a 404
	gone := s.do(http.MethodDelete, removeURL, token, nil)
	defer gone.Body.Close()
	s.Equal(http.StatusNotFound, gone.StatusCode)
}

func (s *Suite) TestMyList_PerProfileIsolation() {
	_, token := s.signup("family@example.com", "Family")
	first := s.createProfile(token, "First")
	second := s.createProfile(token, "Second")
	anime := s.seedAnime("Shared Account", []string{"Action"}, nil)

	resp := s.do(http.MethodPost, fmt.Sprintf("/api/my-list?profile_id=%s&anime_id=%s", first.ID, anime.ID), token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	secondList := s.do(http.MethodGet, "/api/my-list/"+second.ID, token, nil)
	var listed []domain.Anime
	s.decode(secondList, &listed)
	s.Empty(listed, "Lists are scoped to one profile, not the account")
}

func (s *Suite) TestRatings_UpsertAndFetch() {
	_, token := s.signup("rater@example.com", "Rater")
	profile := s.createProfile(token, "Main")
	anime := s.seedAnime("Rate Me", []string{"Drama"}, nil)

	liked := true
	resp := s.do(http.MethodPost, "/api/ratings?profile_id="+profile.ID, token, dto.RatingRequest{
		AnimeID: anime.ID,
		Liked:   &liked,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	score := 9
	resp = s.do(http.MethodPost, "/api/ratings?profile_id="+profile.ID, token, dto.RatingRequest{
		AnimeID: anime.ID,
		Liked:   &liked,
		Score:   &score,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	getURL := fmt.Sprintf("/api/ratings/%s/%s", anime.ID, profile.ID)
	getResp := s.do(http.MethodGet, getURL, token, nil)
	s.Equal(http.StatusOK, getResp.StatusCode)

	var rating dto.RatingResponse
	s.decode(getResp, &rating)
	s.Require().NotNil(rating.Liked)
	s.True(*rating.Liked)
	s.Require().NotNil(rating.Score)
	s.Equal(9, *rating.Score)
}

func (s *Suite) TestRatings_UnratedIsNull() {
	_, token := s.signup("unrated@example.com", "Unrated")
	profile := s.createProfile(token, "Main")
	anime := s.seedAnime("Never Rated", []string{"Drama"}, nil)

	getURL := fmt.Sprintf("/api/ratings/%s/%s", anime.ID, profile.ID)
	resp := s.do(http.MethodGet, getURL, token, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var rating dto.RatingResponse
	s.decode(resp, &rating)
	s.Nil(rating.Liked)
	s.Nil(rating.Score)
}

func (s *Suite) TestReviews_CreateAndList() {
	_, token := s.signup("reviewer@example.com", "Reviewer")
	profile := s.createProfile(token, "Critic")
	anime := s.seedAnime("Reviewed", []string{"Drama"}, nil)

	resp := s.do(http.MethodPost, "/api/reviews?profile_id="+profile.ID, token, dto.ReviewRequest{
		AnimeID: anime.ID,
		Title:   "Masterpiece",
		Content: "Could not stop watching.",
		Rating:  10,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var created dto.ReviewCreatedResponse
	s.decode(resp, &created)
	s.Contains(created.ReviewID, "review_")

	// Reviews are append-only; the same profile can review again
	resp = s.do(http.MethodPost, "/api/reviews?profile_id="+profile.ID, token, dto.ReviewRequest{
		AnimeID: anime.ID,
		Title:   "Second Thoughts",
		Content: "Still great on rewatch.",
		Spoiler: true,
		Rating:  9,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// Listing requires no session
	listResp := s.do(http.MethodGet, "/api/reviews/"+anime.ID, "", nil)
	s.Equal(http.StatusOK, listResp.StatusCode)

	var reviews []domain.Review
	s.decode(listResp, &reviews)
	s.Require().Len(reviews, 2)
	s.Equal("Second Thoughts", reviews[0].Title, "Newest review comes first")
	s.Equal("Critic", reviews[0].ProfileName)
}

func (s *Suite) TestLibrary_RequiresSession() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/watch-history?profile_id=p"},
		{http.MethodGet, "/api/watch-history/p/continue-watching"},
		{http.MethodPost, "/api/my-list?profile_id=p&anime_id=a"},
		{http.MethodGet, "/api/my-list/p"},
		{http.MethodDelete, "/api/my-list/p/a"},
		{http.MethodPost, "/api/ratings?profile_id=p"},
		{http.MethodGet, "/api/ratings/a/p"},
		{http.MethodPost, "/api/reviews?profile_id=p"},
	}

	for _, tc := range paths {
		resp := s.do(tc.method, tc.path, "", nil)
		resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}
