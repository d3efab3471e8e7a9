package http

import (
	"github.com/gin-gonic/gin"

	"verdant-agenda/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated user; the suggestion endpoint is
// additionally rate limited because it costs an LLM call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PATCH("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.DELETE("", mw.Auth(), h.DeleteAll)
		tasks.POST("/suggestions", mw.Auth(), mw.RateLimit(), h.Suggest)
		tasks.GET("/watch", mw.Auth(), h.Watch)
	}
}
