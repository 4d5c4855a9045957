package claims

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/apperror"
)

// Handler serves the claims page data and the filing endpoint.
type Handler struct {
	service ClaimService
}

// NewHandler creates a new claims handler.
func NewHandler(service ClaimService) *Handler {
	return &Handler{service: service}
}

// List returns the claims table (GET /api/claims?status=Approved).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.QueryParam("status")))
}

// StatusCounts returns the filter chip counts (GET /api/claims/statuses).
func (h *Handler) StatusCounts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.StatusCounts())
}

// PolicyTypes returns the claimable policy types (GET /api/claims/types).
func (h *Handler) PolicyTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.PolicyTypes())
}

// File records a new claim (POST /api/claims).
func (h *Handler) File(c echo.Context) error {
	var input FileClaimInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	claim, errs := h.service.FileClaim(input)
	if !errs.Valid() {
		return apperror.NewValidation(errs)
	}

	return c.JSON(http.StatusCreated, claim)
}
