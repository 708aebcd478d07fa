package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deeplinker/internal/config"
	"deeplinker/internal/domain"
	"deeplinker/internal/handler"
	"deeplinker/internal/handler/mocks"
	"deeplinker/internal/platform"
	"deeplinker/internal/service"
	"deeplinker/internal/validation"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"

type fixture struct {
	linkService *mocks.MockLinkService
	validator   *mocks.MockURLValidator
	tracker     *mocks.MockTracker
	echo        *echo.Echo
}

func newFixture(t *testing.T, cfg config.RedirectConfig) *fixture {
	t.Helper()

	f := &fixture{
		linkService: mocks.NewMockLinkService(t),
		validator:   mocks.NewMockURLValidator(t),
		tracker:     mocks.NewMockTracker(t),
		echo:        echo.New(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler.New(f.linkService, f.validator, f.tracker, cfg, logger).Register(f.echo)

	return f
}

func (f *fixture) request(method, target, body, userAgent string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	rec := f.request(http.MethodGet, "/api/v1/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_CreateLink(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	f.validator.EXPECT().ValidateURL("https://www.youtube.com/watch?v=abc123").Return(nil)
	f.validator.EXPECT().ValidateSlug("").Return(nil)
	f.linkService.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(domain.Link{
		ID:          1,
		Slug:        "bMZn4Y",
		OriginalURL: "https://www.youtube.com/watch?v=abc123",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}, nil)
	f.linkService.EXPECT().ShortURL("bMZn4Y").Return("http://localhost:8080/r/bMZn4Y")

	rec := f.request(http.MethodPost, "/api/v1/links",
		`{"url":"https://www.youtube.com/watch?v=abc123"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"bMZn4Y"`)
	assert.Contains(t, rec.Body.String(), `"short_url":"http://localhost:8080/r/bMZn4Y"`)
}

func TestHandler_CreateLink_InvalidBody(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	rec := f.request(http.MethodPost, "/api/v1/links", `{not json`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
}

func TestHandler_CreateLink_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{"empty url", validation.ErrEmptyURL, `{"error":"url is required"}`},
		{"bad format", validation.ErrInvalidURLFormat, `{"error":"invalid url format"}`},
		{"unsafe protocol", validation.ErrUnsafeProtocol, `{"error":"url protocol not allowed"}`},
		{"too long", validation.ErrURLTooLong, `{"error":"url exceeds maximum length"}`},
		{"private ip", validation.ErrPrivateIPNotAllowed, `{"error":"private ip addresses not allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})
			f.validator.EXPECT().ValidateURL(mock.Anything).Return(tt.err)

			rec := f.request(http.MethodPost, "/api/v1/links", `{"url":"whatever"}`, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_CreateLink_SlugTaken(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	f.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
	f.validator.EXPECT().ValidateSlug("promo").Return(nil)
	f.linkService.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(domain.Link{}, service.ErrSlugTaken)

	rec := f.request(http.MethodPost, "/api/v1/links",
		`{"url":"https://example.com","slug":"promo"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"slug already in use"}`, rec.Body.String())
}

func TestHandler_GetLink(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	f.linkService.EXPECT().GetLink(mock.Anything, "bMZn4Y").Return(domain.Link{
		Slug:        "bMZn4Y",
		OriginalURL: "https://example.com",
		IsActive:    true,
	}, nil)
	f.linkService.EXPECT().ShortURL("bMZn4Y").Return("http://localhost:8080/r/bMZn4Y")

	rec := f.request(http.MethodGet, "/api/v1/links/bMZn4Y", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"original_url":"https://example.com"`)
}

func TestHandler_GetLink_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})

	f.linkService.EXPECT().GetLink(mock.Anything, "missing").Return(domain.Link{}, service.ErrLinkNotFound)

	rec := f.request(http.MethodGet, "/api/v1/links/missing", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"link not found"}`, rec.Body.String())
}

func TestHandler_Redirect_Interstitial(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5, ShowSkipButton: true})

	link := domain.Link{ID: 1, Slug: "abc123", OriginalURL: "https://www.youtube.com/watch?v=abc123", IsActive: true}
	f.linkService.EXPECT().Resolve(mock.Anything, "abc123").Return(link, nil)
	f.linkService.EXPECT().TargetFor(link, platform.IOS).Return("youtube://watch?v=abc123")
	f.tracker.EXPECT().Track(mock.MatchedBy(func(e domain.ClickEvent) bool {
		return e.LinkID == 1 && e.Device == "ios" && e.Referrer == "direct"
	})).Return()

	rec := f.request(http.MethodGet, "/r/abc123", "", iphoneUA)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "youtube://watch?v=abc123")
	assert.Contains(t, body, `id="count">5<`)
	assert.Contains(t, body, "Continue now")
}

func TestHandler_Redirect_SkipButtonHidden(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5, ShowSkipButton: false})

	link := domain.Link{ID: 1, Slug: "abc123", OriginalURL: "https://example.com", IsActive: true}
	f.linkService.EXPECT().Resolve(mock.Anything, "abc123").Return(link, nil)
	f.linkService.EXPECT().TargetFor(link, platform.Other).Return("https://example.com")
	f.tracker.EXPECT().Track(mock.Anything).Return()

	rec := f.request(http.MethodGet, "/r/abc123", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Continue now")
}

func TestHandler_Redirect_Immediate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.RedirectConfig{CountdownSeconds: 0})

	link := domain.Link{ID: 1, Slug: "abc123", OriginalURL: "https://example.com", IsActive: true}
	f.linkService.EXPECT().Resolve(mock.Anything, "abc123").Return(link, nil)
	f.linkService.EXPECT().TargetFor(link, platform.Other).Return("https://example.com")
	f.tracker.EXPECT().Track(mock.Anything).Return()

	rec := f.request(http.MethodGet, "/r/abc123", "", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Location"))
}

func TestHandler_Redirect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"not found", service.ErrLinkNotFound, http.StatusNotFound, "Link not found"},
		{"deactivated", service.ErrLinkDeactivated, http.StatusGone, "Link deactivated"},
		{"expired", service.ErrLinkExpired, http.StatusGone, "Link expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.RedirectConfig{CountdownSeconds: 5})
			f.linkService.EXPECT().Resolve(mock.Anything, "abc123").Return(domain.Link{}, tt.err)

			rec := f.request(http.MethodGet, "/r/abc123", "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
		})
	}
}
