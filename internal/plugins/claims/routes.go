package claims

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up claim routes on the given authenticated group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/claims", h.List)
	g.GET("/claims/statuses", h.StatusCounts)
	g.GET("/claims/types", h.PolicyTypes)
	g.POST("/claims", h.File)
}
