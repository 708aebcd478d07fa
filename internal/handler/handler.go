package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"deeplinker/internal/config"
	"deeplinker/internal/domain"
	"deeplinker/internal/redirect"
	"deeplinker/internal/service"
	"deeplinker/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var (
	errInvalidBody  = map[string]string{"error": "invalid request body"}
	errURLRequired  = map[string]string{"error": "url is required"}
	errInvalidURL   = map[string]string{"error": "invalid url format"}
	errUnsafeURL    = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong   = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP    = map[string]string{"error": "private ip addresses not allowed"}
	errBadSlug      = map[string]string{"error": "invalid slug format"}
	errSlugTooLong  = map[string]string{"error": "slug exceeds maximum length"}
	errSlugTaken    = map[string]string{"error": "slug already in use"}
	errLinkNotFound = map[string]string{"error": "link not found"}
	errCreateFailed = map[string]string{"error": "failed to create link"}
	errGetFailed    = map[string]string{"error": "failed to get link"}
	respHealthOK    = map[string]string{"status": "ok"}
)

type countdownPage struct {
	Seconds int
	// Target carries app-native schemes (youtube://, intent://); typed as
	// template.URL so the template engine does not reject them as unsafe.
	Target   template.URL
	ShowSkip bool
}

type errorPage struct {
	Title   string
	Message string
}

type Handler struct {
	linkService LinkService
	validator   URLValidator
	tracker     Tracker
	redirectCfg config.RedirectConfig
	logger      *slog.Logger
}

func New(
	linkService LinkService,
	validator URLValidator,
	tracker Tracker,
	redirectCfg config.RedirectConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		linkService: linkService,
		validator:   validator,
		tracker:     tracker,
		redirectCfg: redirectCfg,
		logger:      logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/links", h.CreateLink)
	api.GET("/links/:slug", h.GetLink)
	e.GET("/r/:slug", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateURL(req.URL); err != nil {
		return h.handleValidationError(c, err)
	}
	if err := h.validator.ValidateSlug(req.Slug); err != nil {
		return h.handleValidationError(c, err)
	}
	// Platform override URLs carry native schemes and skip the http(s)
	// validator; the explicit browser fallback must be a real web URL.
	if req.FallbackURL != "" {
		if err := h.validator.ValidateURL(req.FallbackURL); err != nil {
			return h.handleValidationError(c, err)
		}
	}

	link, err := h.linkService.CreateLink(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, errSlugTaken)
		}
		h.logger.Error("failed to create link", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, h.toResponse(link))
}

func (h *Handler) GetLink(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, errBadSlug)
	}

	link, err := h.linkService.GetLink(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to get link", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.JSON(http.StatusOK, h.toResponse(link))
}

// Redirect drives one visit through the session state machine. Resolver
// errors render kind-specific pages; success either redirects immediately
// (countdown disabled) or renders the interstitial countdown page, whose
// client-side timer and skip control mirror the session's rules.
func (h *Handler) Redirect(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return h.renderError(c, http.StatusBadRequest, "Bad request", "The link address is incomplete.")
	}

	sess := redirect.NewSession(h.redirectCfg, h.linkService, h.tracker, redirect.Request{
		Slug:      slug,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Referrer:  extractDomain(c.Request().Referer()),
	})

	if err := sess.Start(c.Request().Context()); err != nil {
		return h.renderResolveError(c, err)
	}

	if h.redirectCfg.CountdownSeconds <= 0 {
		var target string
		err := sess.Run(c.Request().Context(), func(t string) { target = t })
		if err != nil {
			h.logger.Error("redirect session failed", slog.String("error", err.Error()))
			return h.renderError(c, http.StatusInternalServerError, "Something went wrong", "Please try the link again.")
		}
		return c.Redirect(http.StatusFound, target)
	}

	return h.renderPage(c, http.StatusOK, "countdown.html", countdownPage{
		Seconds:  sess.Remaining(),
		Target:   template.URL(sess.TargetURL()),
		ShowSkip: h.redirectCfg.ShowSkipButton,
	})
}

func (h *Handler) renderResolveError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return h.renderError(c, http.StatusNotFound, "Link not found",
			"This short link does not exist. Check the address and try again.")
	case errors.Is(err, service.ErrLinkDeactivated):
		return h.renderError(c, http.StatusGone, "Link deactivated",
			"This short link has been deactivated by its owner.")
	case errors.Is(err, service.ErrLinkExpired):
		return h.renderError(c, http.StatusGone, "Link expired",
			"This short link has expired and no longer works.")
	default:
		h.logger.Error("failed to resolve link", slog.String("error", err.Error()))
		return h.renderError(c, http.StatusInternalServerError, "Something went wrong",
			"Please try the link again.")
	}
}

func (h *Handler) renderPage(c echo.Context, status int, name string, data any) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return pageTemplates.ExecuteTemplate(c.Response(), name, data)
}

func (h *Handler) renderError(c echo.Context, status int, title, message string) error {
	return h.renderPage(c, status, "error.html", errorPage{Title: title, Message: message})
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	case errors.Is(err, validation.ErrInvalidSlug):
		return c.JSON(http.StatusBadRequest, errBadSlug)
	case errors.Is(err, validation.ErrSlugTooLong):
		return c.JSON(http.StatusBadRequest, errSlugTooLong)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func (h *Handler) toResponse(link domain.Link) domain.LinkResponse {
	return domain.LinkResponse{
		Slug:        link.Slug,
		ShortURL:    h.linkService.ShortURL(link.Slug),
		OriginalURL: link.OriginalURL,
		IsActive:    link.IsActive,
		ExpiresAt:   link.ExpiresAt,
		CreatedAt:   link.CreatedAt,
	}
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}
