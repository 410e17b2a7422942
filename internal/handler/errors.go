package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Not authenticated",
		})
	case errors.Is(err, service.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Invalid session",
		})
	case errors.Is(err, service.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Session expired",
		})
	case errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not found",
			Message: "User not found",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Invalid email or password",
		})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not found",
			Message: "Profile not found",
		})
	case errors.Is(err, service.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not found",
			Message: "Resource not found",
		})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Email already registered",
		})
	case errors.Is(err, service.ErrProfileLimitExceeded):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Maximum 5 profiles allowed",
		})
	case errors.Is(err, service.ErrDuplicateListEntry):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Already in list",
		})
	case errors.Is(err, service.ErrExternalAuthFailure):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Session exchange failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
		})
	}
}

// respondValidationError reports a request body or parameter that failed
// binding.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Validation failed",
		Message: err.Error(),
	})
}
