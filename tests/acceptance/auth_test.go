package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/WesleyJeean/Animeflix/internal/dto"
)

func (s *Suite) TestSignup_Success() {
	authResp, token := s.signup("alice@example.com", "Alice")

	s.Equal("alice@example.com", authResp.Email)
	s.Equal("Alice", authResp.Name)
	s.NotEmpty(authResp.UserID)
	s.Contains(token, "session_")
}

func (s *Suite) TestSignup_DuplicateEmail() {
	s.signup("dup@example.com", "First")

	body, _ := json.Marshal(dto.SignupRequest{
		Email:    "dup@example.com",
		Password: "Password123",
		Name:     "Second",
	})
	resp, err := http.Post(s.BaseURL+"/api/auth/signup", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestSignup_InvalidEmail() {
	body, _ := json.Marshal(dto.SignupRequest{
		Email:    "not-an-email",
		Password: "Password123",
		Name:     "Nobody",
	})
	resp, err := http.Post(s.BaseURL+"/api/auth/signup", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestLogin_Success() {
	s.signup("bob@example.com", "Bob")

	body, _ := json.Marshal(dto.LoginRequest{
		Email:    "bob@example.com",
		Password: "Password123",
	})
	resp, err := http.Post(s.BaseURL+"/api/auth/login", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&authResp))
	s.Equal("bob@example.com", authResp.Email)

	s.NotEmpty(s.sessionCookie(resp), "Login should set the session cookie")
}

func (s *Suite) TestLogin_WrongPassword() {
	s.signup("carol@example.com", "Carol")

	body, _ := json.Marshal(dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "WrongPassword1",
	})
	resp, err := http.Post(s.BaseURL+"/api/auth/login", "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestExchangeSession_Success() {
	resp := s.do(http.MethodPost, "/api/auth/session?session_id=sess-valid", "", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&authResp))
	s.Equal("external@example.com", authResp.Email)
	s.Equal("External User", authResp.Name)

	// The session is keyed on the provider-issued token
	token := s.sessionCookie(resp)
	s.Equal("session_external0000000000000000000000", token)

	meResp := s.do(http.MethodGet, "/api/auth/me", token, nil)
	defer meResp.Body.Close()
	s.Equal(http.StatusOK, meResp.StatusCode)
}

func (s *Suite) TestExchangeSession_ProviderRejects() {
	resp := s.do(http.MethodPost, "/api/auth/session?session_id=sess-bogus", "", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestMe_RequiresSession() {
	resp := s.do(http.MethodGet, "/api/auth/me", "", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodGet, "/api/auth/me", "session_unknown00000000000000000000", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestMe_BearerHeaderFallback() {
	_, token := s.signup("dave@example.com", "Dave")

	req, err := http.NewRequest(http.MethodGet, s.BaseURL+"/api/auth/me", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&authResp))
	s.Equal("dave@example.com", authResp.Email)
}

func (s *Suite) TestLogout_InvalidatesSession() {
	_, token := s.signup("erin@example.com", "Erin")

	resp := s.do(http.MethodPost, "/api/auth/logout", token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	meResp := s.do(http.MethodGet, "/api/auth/me", token, nil)
	defer meResp.Body.Close()
	s.Equal(http.StatusUnauthorized, meResp.StatusCode)

	// Logout with the dead token is still a 200
	again := s.do(http.MethodPost, "/api/auth/logout", token, nil)
	defer again.Body.Close()
	s.Equal(http.StatusOK, again.StatusCode)
}
