package http

import (
	"github.com/gin-gonic/gin"

	"apply-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sheets := rg.Group("/sheets")
	{
		sheets.POST("", mw.Auth(), h.CreateSheet)
		sheets.GET("/:id", mw.Auth(), h.GetSheet)
		sheets.POST("/:id/applied-column", mw.Auth(), h.Provision)
		sheets.GET("/:id/stats", mw.Auth(), h.Stats)
		sheets.GET("/:id/analysis", mw.Auth(), h.Analyze)
		sheets.POST("/:id/filter", mw.Auth(), h.Filter)
	}
}
