package acceptance

import (
	"encoding/json"
	"net/http"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
)

func (s *Suite) TestProfiles_CreateAndList() {
	_, token := s.signup("owner@example.com", "Owner")

	created := s.createProfile(token, "Living Room")
	s.Contains(created.ID, "profile_")
	s.Equal("Living Room", created.Name)

	resp := s.do(http.MethodGet, "/api/profiles", token, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var profiles []domain.Profile
	s.decode(resp, &profiles)
	s.Len(profiles, 1)
	s.Equal(created.ID, profiles[0].ID)
}

func (s *Suite) TestProfiles_CapAtFive() {
	_, token := s.signup("capped@example.com", "Capped")

	names := []string{"One", "Two", "Three", "Four", "Five"}
	for _, name := range names {
		s.createProfile(token, name)
	}

	resp := s.do(http.MethodPost, "/api/profiles", token, dto.ProfileCreateRequest{
		Name:   "Six",
		Avatar: "avatar1",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	// Another account is unaffected by the first account's cap
	_, otherToken := s.signup("other@example.com", "Other")
	s.createProfile(otherToken, "Fresh")
}

func (s *Suite) TestProfiles_RequireSession() {
	resp := s.do(http.MethodGet, "/api/profiles", "", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestProfiles_DeleteOwn() {
	_, token := s.signup("deleter@example.com", "Deleter")
	profile := s.createProfile(token, "Doomed")

	resp := s.do(http.MethodDelete, "/api/profiles/"+profile.ID, token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	listResp := s.do(http.MethodGet, "/api/profiles", token, nil)
	s.Equal(http.StatusOK, listResp.StatusCode)

	var profiles []domain.Profile
	s.decode(listResp, &profiles)
	s.Empty(profiles)
}

func (s *Suite) TestProfiles_DeleteForeignIsNotFound() {
	_, ownerToken := s.signup("victim@example.com", "Victim")
	profile := s.createProfile(ownerToken, "Protected")

	_, intruderToken := s.signup("intruder@example.com", "Intruder")

	resp := s.do(http.MethodDelete, "/api/profiles/"+profile.ID, intruderToken, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// The profile survives
	listResp := s.do(http.MethodGet, "/api/profiles", ownerToken, nil)
	var profiles []domain.Profile
	s.decode(listResp, &profiles)
	s.Len(profiles, 1)
}

func (s *Suite) TestProfiles_IsKidFlag() {
	_, token := s.signup("parent@example.com", "Parent")

	resp := s.do(http.MethodPost, "/api/profiles", token, dto.ProfileCreateRequest{
		Name:   "Kids",
		Avatar: "avatar3",
		IsKid:  true,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var profile domain.Profile
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&profile))
	resp.Body.Close()
	s.True(profile.IsKid)
}
