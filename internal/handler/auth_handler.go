package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// setSessionCookie writes the session token as an httpOnly cookie. SameSite
// is None so browser clients served from another origin can carry it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", true, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", true, true)
}

func authResponse(result *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		UserID:  result.User.ID,
		Email:   result.User.Email,
		Name:    result.User.Name,
		Picture: result.User.Picture,
	}
}

// Signup handles account registration
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: err.Error(),
		})
		return
	}

	h.setSessionCookie(c, result.Token, h.authService.SessionMaxAge())
	c.JSON(http.StatusOK, authResponse(result))
}

// Login handles password login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, h.authService.SessionMaxAge())
	c.JSON(http.StatusOK, authResponse(result))
}

// ExchangeSession trades a provider session id for a local session
// @Summary Exchange a provider session id
// @Tags auth
// @Produce json
// @Param session_id query string true "Provider session id"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) ExchangeSession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "session_id is required",
		})
		return
	}

	result, err := h.authService.ExchangeSession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, h.authService.SessionMaxAge())
	c.JSON(http.StatusOK, authResponse(result))
}

// Me returns the authenticated account
// @Summary Get the current account
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	})
}

// Logout deletes the current session and clears the cookie
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), extractToken(c)); err != nil {
		respondError(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}
