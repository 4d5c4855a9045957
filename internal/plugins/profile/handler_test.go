package profile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/coverly/portal/internal/apperror"
	"github.com/coverly/portal/internal/plugins/auth"
)

func newHandlerFixture(t *testing.T) *Handler {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	creds, err := auth.NewMemoryStore(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seeding credential store: %v", err)
	}
	return NewHandler(NewProfileService(creds, rdb), 64)
}

func imageUploadContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/profile/image", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestUploadImage_RejectsNonImageData(t *testing.T) {
	h := newHandlerFixture(t)

	err := h.UploadImage(imageUploadContext(`{"image":"data:text/plain;base64,aGVsbG8="}`))
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.Code)
	}
	if appErr.Message != "Please select a valid image file (JPEG, PNG, GIF, WebP)" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestUploadImage_RejectsOversizedData(t *testing.T) {
	h := newHandlerFixture(t)

	// The fixture caps the image at 64 bytes.
	big := "data:image/png;base64," + strings.Repeat("A", 100)
	err := h.UploadImage(imageUploadContext(`{"image":"` + big + `"}`))
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.Code)
	}
	if appErr.Message != "Image size must be less than 5MB" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}
