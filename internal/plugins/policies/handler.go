package policies

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the policies page data.
type Handler struct {
	service PolicyService
}

// NewHandler creates a new policies handler.
func NewHandler(service PolicyService) *Handler {
	return &Handler{service: service}
}

// List returns the policy table (GET /api/policies?status=Active).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.QueryParam("status")))
}

// Summary returns the table aggregates (GET /api/policies/summary).
func (h *Handler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Summary())
}

// StatusCounts returns the filter chip counts (GET /api/policies/statuses).
func (h *Handler) StatusCounts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.StatusCounts())
}
