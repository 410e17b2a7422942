package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

// LibraryHandler handles profile-scoped collection requests. The profile id
// always arrives from the client and is verified by the service layer's
// ownership guard before anything is read or written.
type LibraryHandler struct {
	libraryService service.LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService service.LibraryService) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
	}
}

func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: name + " is required",
		})
		return "", false
	}
	return value, true
}

// SaveProgress upserts watch progress for one (profile, anime)
// @Summary Save watch progress
// @Tags watch-history
// @Accept json
// @Produce json
// @Param profile_id query string true "Profile id"
// @Param request body dto.WatchProgressRequest true "Progress update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /watch-history [post]
func (h *LibraryHandler) SaveProgress(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	profileID, ok := requireQuery(c, "profile_id")
	if !ok {
		return
	}

	var req dto.WatchProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.libraryService.SaveProgress(c.Request.Context(), user.ID, profileID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Progress saved"})
}

// ContinueWatching returns the continue-watching shelf for a profile
// @Summary Continue watching
// @Tags watch-history
// @Produce json
// @Param profile_id path string true "Profile id"
// @Success 200 {array} domain.ContinueWatchingEntry
// @Failure 404 {object} dto.ErrorResponse
// @Router /watch-history/{profile_id}/continue-watching [get]
func (h *LibraryHandler) ContinueWatching(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	entries, err := h.libraryService.ContinueWatching(c.Request.Context(), user.ID, c.Param("profile_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddToList adds an anime to a profile's list
// @Summary Add to my list
// @Tags my-list
// @Produce json
// @Param profile_id query string true "Profile id"
// @Param anime_id query string true "Anime id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /my-list [post]
func (h *LibraryHandler) AddToList(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	profileID, ok := requireQuery(c, "profile_id")
	if !ok {
		return
	}
	animeID, ok := requireQuery(c, "anime_id")
	if !ok {
		return
	}

	if err := h.libraryService.AddToList(c.Request.Context(), user.ID, profileID, animeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Added to list"})
}

// GetList returns the anime on a profile's list
// @Summary Get my list
// @Tags my-list
// @Produce json
// @Param profile_id path string true "Profile id"
// @Success 200 {array} domain.Anime
// @Failure 404 {object} dto.ErrorResponse
// @Router /my-list/{profile_id} [get]
func (h *LibraryHandler) GetList(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	anime, err := h.libraryService.GetList(c.Request.Context(), user.ID, c.Param("profile_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// RemoveFromList removes an anime from a profile's list
// @Summary Remove from my list
// @Tags my-list
// @Produce json
// @Param profile_id path string true "Profile id"
// @Param anime_id path string true "Anime id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /my-list/{profile_id}/{anime_id} [delete]
func (h *LibraryHandler) RemoveFromList(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	if err := h.libraryService.RemoveFromList(c.Request.Context(), user.ID, c.Param("profile_id"), c.Param("anime_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Removed from list"})
}

// SaveRating upserts a profile's rating for one anime
// @Summary Save a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param profile_id query string true "Profile id"
// @Param request body dto.RatingRequest true "Rating"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ratings [post]
func (h *LibraryHandler) SaveRating(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	profileID, ok := requireQuery(c, "profile_id")
	if !ok {
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.libraryService.SaveRating(c.Request.Context(), user.ID, profileID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Rating saved"})
}

// GetRating returns a profile's rating for one anime
// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Param anime_id path string true "Anime id"
// @Param profile_id path string true "Profile id"
// @Success 200 {object} dto.RatingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ratings/{anime_id}/{profile_id} [get]
func (h *LibraryHandler) GetRating(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	rating, err := h.libraryService.GetRating(c.Request.Context(), user.ID, c.Param("profile_id"), c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// CreateReview appends a review for an anime
// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param profile_id query string true "Profile id"
// @Param request body dto.ReviewRequest true "Review"
// @Success 200 {object} dto.ReviewCreatedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reviews [post]
func (h *LibraryHandler) CreateReview(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	profileID, ok := requireQuery(c, "profile_id")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	reviewID, err := h.libraryService.CreateReview(c.Request.Context(), user.ID, profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReviewCreatedResponse{
		Message:  "Review created",
		ReviewID: reviewID,
	})
}

// GetReviews returns the newest reviews for an anime
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param anime_id path string true "Anime id"
// @Success 200 {array} domain.Review
// @Router /reviews/{anime_id} [get]
func (h *LibraryHandler) GetReviews(c *gin.Context) {
	reviews, err := h.libraryService.GetReviews(c.Request.Context(), c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
