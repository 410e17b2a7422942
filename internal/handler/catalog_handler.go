package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

// CatalogHandler handles read-only catalog requests
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// List returns catalog entries with optional filters
// @Summary Browse the catalog
// @Tags anime
// @Produce json
// @Param genre query string false "Exact genre filter"
// @Param tag query string false "Exact tag filter"
// @Param search query string false "Title substring filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} domain.Anime
// @Router /anime [get]
func (h *CatalogHandler) List(c *gin.Context) {
	filter := repository.AnimeFilter{
		Genre:  c.Query("genre"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
		Skip:   intQuery(c, "skip", 0),
		Limit:  intQuery(c, "limit", 0),
	}

	anime, err := h.catalogService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Trending returns the trending shelf
// @Summary Trending anime
// @Tags anime
// @Produce json
// @Success 200 {array} domain.Anime
// @Router /anime/trending [get]
func (h *CatalogHandler) Trending(c *gin.Context) {
	anime, err := h.catalogService.Trending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// NewReleases returns the newest titles
// @Summary New releases
// @Tags anime
// @Produce json
// @Success 200 {array} domain.Anime
// @Router /anime/new-releases [get]
func (h *CatalogHandler) NewReleases(c *gin.Context) {
	anime, err := h.catalogService.NewReleases(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Get returns one catalog entry
// @Summary Get an anime
// @Tags anime
// @Produce json
// @Param anime_id path string true "Anime id"
// @Success 200 {object} domain.Anime
// @Failure 404 {object} dto.ErrorResponse
// @Router /anime/{anime_id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	anime, err := h.catalogService.Get(c.Request.Context(), c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Episodes returns the episodes of one anime in playback order
// @Summary List episodes
// @Tags anime
// @Produce json
// @Param anime_id path string true "Anime id"
// @Success 200 {array} domain.Episode
// @Router /anime/{anime_id}/episodes [get]
func (h *CatalogHandler) Episodes(c *gin.Context) {
	episodes, err := h.catalogService.Episodes(c.Request.Context(), c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, episodes)
}

// Recommendations returns titles sharing a genre with the given anime
// @Summary Recommendations
// @Tags anime
// @Produce json
// @Param anime_id path string true "Anime id"
// @Success 200 {array} domain.Anime
// @Router /anime/{anime_id}/recommendations [get]
func (h *CatalogHandler) Recommendations(c *gin.Context) {
	anime, err := h.catalogService.Recommendations(c.Request.Context(), c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Search returns trimmed summaries matching a title substring
// @Summary Search the catalog
// @Tags search
// @Produce json
// @Param q query string true "Title substring"
// @Param limit query int false "Result cap"
// @Success 200 {array} domain.AnimeSummary
// @Router /search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	results, err := h.catalogService.Search(c.Request.Context(), c.Query("q"), intQuery(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
