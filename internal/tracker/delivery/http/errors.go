package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository"
	"apply-tracker/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrSheetNotFound), errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, tracker.ErrSheetNotFound)
	case errors.Is(err, tracker.ErrInvalidEvent), errors.Is(err, tracker.ErrColumnNotFound):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
