package policies

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up policy routes on the given authenticated group.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/policies", h.List)
	g.GET("/policies/summary", h.Summary)
	g.GET("/policies/statuses", h.StatusCounts)
}
