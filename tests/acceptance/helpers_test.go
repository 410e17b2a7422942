package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/utils"
)

// signup registers an account and returns its auth response together with
// the session token from the cookie.
func (s *Suite) signup(email, name string) (dto.AuthResponse, string) {
	body, _ := json.Marshal(dto.SignupRequest{
		Email:    email,
		Password: "Password123",
		Name:     name,
	})

	resp, err := http.Post(s.BaseURL+"/api/auth/signup", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Signup should succeed")

	var authResp dto.AuthResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&authResp))

	token := s.sessionCookie(resp)
	s.Require().NotEmpty(token, "Signup should set the session cookie")

	return authResp, token
}

func (s *Suite) sessionCookie(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return cookie.Value
		}
	}
	return ""
}

// do issues a request carrying the session token as a cookie. A nil body
// sends no payload.
func (s *Suite) do(method, path, token string, payload interface{}) *http.Response {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, s.BaseURL+path, body)
	s.Require().NoError(err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *Suite) decode(resp *http.Response, target interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(target))
}

// createProfile adds a profile for the given session and returns it.
func (s *Suite) createProfile(token, name string) domain.Profile {
	resp := s.do(http.MethodPost, "/api/profiles", token, dto.ProfileCreateRequest{
		Name:   name,
		Avatar: "avatar1",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Profile creation should succeed")

	var profile domain.Profile
	s.decode(resp, &profile)
	return profile
}

// seedAnime inserts a catalog row directly through the repository.
func (s *Suite) seedAnime(title string, genres, tags []string) *domain.Anime {
	trailer := "https://www.youtube.com/watch?v=test"
	anime := &domain.Anime{
		ID:            utils.NewID("anime"),
		Title:         title,
		Synopsis:      "Synopsis of " + title,
		TrailerURL:    &trailer,
		PosterURL:     "https://img.example.com/poster.jpg",
		BannerURL:     "https://img.example.com/banner.jpg",
		Studio:        "Test Studio",
		Year:          2020,
		AgeRating:     "TV-14",
		Genres:        genres,
		Tags:          tags,
		TotalEpisodes: 3,
	}
	s.Require().NoError(s.Repos.Anime.Create(context.Background(), anime))
	return anime
}

// seedEpisode inserts one episode for an anime.
func (s *Suite) seedEpisode(animeID string, number int) *domain.Episode {
	episode := &domain.Episode{
		ID:              utils.NewID("episode"),
		AnimeID:         animeID,
		SeasonNumber:    1,
		EpisodeNumber:   number,
		Title:           fmt.Sprintf("Episode %d", number),
		ThumbnailURL:    "https://img.example.com/thumb.jpg",
		VideoURL:        fmt.Sprintf("https://example.com/video/%s/ep%d.mp4", animeID, number),
		DurationSeconds: 1440,
	}
	s.Require().NoError(s.Repos.Episode.Create(context.Background(), episode))
	return episode
}
