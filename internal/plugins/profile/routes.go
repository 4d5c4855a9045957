package profile

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up profile routes on the given authenticated group.
// The caller applies auth.RequireAuth via the group's middleware stack.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.POST("/profile/image", h.UploadImage)
	g.DELETE("/profile/image", h.DeleteImage)
	g.GET("/stats", h.Stats)
}
