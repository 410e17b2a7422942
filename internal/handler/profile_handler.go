package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

// ProfileHandler handles viewer profile requests
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// List returns the profiles of the authenticated account
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.Profile
// @Failure 401 {object} dto.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	profiles, err := h.profileService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// Create adds a profile to the authenticated account
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.ProfileCreateRequest true "Profile creation request"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} dto.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	var req dto.ProfileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete removes a profile of the authenticated account
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Param profile_id path string true "Profile id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profiles/{profile_id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), user.ID, c.Param("profile_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile deleted"})
}
