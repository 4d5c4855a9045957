package profile

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/apperror"
	"github.com/coverly/portal/internal/dateutil"
	"github.com/coverly/portal/internal/plugins/auth"
	"github.com/coverly/portal/internal/validate"
)

// Handler handles HTTP requests for the profile and stats pages. All
// routes sit behind auth.RequireAuth, so a session is always present.
type Handler struct {
	service      ProfileService
	maxImageSize int64
}

// NewHandler creates a new profile handler.
func NewHandler(service ProfileService, maxImageSize int64) *Handler {
	return &Handler{service: service, maxImageSize: maxImageSize}
}

// GetProfile returns the caller's profile (GET /api/profile): the saved
// edited profile when one exists, otherwise the assembled demo profile.
func (h *Handler) GetProfile(c echo.Context) error {
	sess := auth.GetSession(c)

	saved, err := h.service.LoadProfile(c.Request().Context(), sess.Username)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if saved != nil {
		return c.JSON(http.StatusOK, *saved)
	}

	p := h.service.Assemble(c.Request().Context(), sess.Username, sess.Name, sess.Role)
	return c.JSON(http.StatusOK, p)
}

// UpdateProfile applies a profile edit (PUT /api/profile). Only submitted
// fields are validated and changed; the rest stay as they were.
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	errs := validate.ProfileForm(validate.ProfileFields{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
	})
	if !errs.Valid() {
		return apperror.NewValidation(errs)
	}

	sess := auth.GetSession(c)
	ctx := c.Request().Context()

	current, err := h.service.LoadProfile(ctx, sess.Username)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if current == nil {
		assembled := h.service.Assemble(ctx, sess.Username, sess.Name, sess.Role)
		current = &assembled
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		current.DateOfBirth = dateutil.ToDDMMYYYY(*req.DateOfBirth)
	}
	if req.Address != nil {
		current.Address = *req.Address
	}

	if err := h.service.SaveProfile(ctx, sess.Username, *current); err != nil {
		return apperror.NewInternal(err)
	}

	return c.JSON(http.StatusOK, *current)
}

// Stats returns the caller's dashboard statistics (GET /api/stats).
func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.StatsFor(auth.GetUsername(c)))
}

// UploadImage saves a profile image (POST /api/profile/image). The body
// carries the image as a data URI, matching what the camera/file picker
// produces on the client.
func (h *Handler) UploadImage(c echo.Context) error {
	var req ImageRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if !strings.HasPrefix(req.Image, "data:image/") {
		return apperror.NewBadRequest("Please select a valid image file (JPEG, PNG, GIF, WebP)")
	}
	if int64(len(req.Image)) > h.maxImageSize {
		return apperror.NewBadRequest("Image size must be less than 5MB")
	}

	username := auth.GetUsername(c)
	if err := h.service.SaveImage(c.Request().Context(), username, req.Image); err != nil {
		return apperror.NewInternal(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// DeleteImage removes the saved profile image (DELETE /api/profile/image),
// dropping the avatar back to the generated fallback.
func (h *Handler) DeleteImage(c echo.Context) error {
	username := auth.GetUsername(c)
	if err := h.service.DeleteImage(c.Request().Context(), username); err != nil {
		return apperror.NewInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
