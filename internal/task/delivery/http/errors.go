package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"verdant-agenda/internal/task"
	"verdant-agenda/pkg/response"
)

// respondError translates domain errors into HTTP responses.
// Unknown errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidTime),
		errors.Is(err, task.ErrInvalidTimeRange),
		errors.Is(err, task.ErrInvalidDuration):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrSuggestionFailed):
		response.BadGateway(c, task.ErrSuggestionFailed)
	default:
		response.InternalError(c, err)
	}
}
