package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"verdant-agenda/internal/middleware"
	"verdant-agenda/pkg/response"
)

// Watch godoc
// @Summary     Watch the schedule
// @Description Streams the user's task list as server-sent events whenever it changes.
// @Tags        Tasks
// @Produce     text/event-stream
// @Success     200 {string} string "SSE stream of task list snapshots"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/watch [GET]
func (h *handler) Watch(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	ch, err := h.uc.Watch(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Watch: %v", err)
		h.respondError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case tasks, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("tasks", h.newListResp(tasks))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
