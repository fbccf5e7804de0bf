package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/service"
	"shortlink/internal/validation"
	"shortlink/internal/visitor"
)

var (
	errInvalidBody    = map[string]string{"error": "invalid request body"}
	errURLRequired    = map[string]string{"error": "url is required"}
	errInvalidURL     = map[string]string{"error": "invalid url format"}
	errUnsafeURL      = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong     = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP      = map[string]string{"error": "private ip addresses not allowed"}
	errBadAlias       = map[string]string{"error": "alias contains invalid characters"}
	errAliasTaken     = map[string]string{"error": "alias is already taken"}
	errLinkNotFound   = map[string]string{"error": "link not found"}
	errLinkInactive   = map[string]string{"error": "link is inactive"}
	errLinkRestricted = map[string]string{"error": "link is restricted"}
	errLinkExpired    = map[string]string{"error": "link has expired"}
	errBadDestination = map[string]string{"error": "destination is not a valid url"}
	errCreateFailed   = map[string]string{"error": "failed to create link"}
	errResolveFailed  = map[string]string{"error": "failed to resolve link"}
	errStatsFailed    = map[string]string{"error": "failed to load stats"}
	respHealthOK      = map[string]string{"status": "ok"}
)

const countryHintHeader = "CF-IPCountry"

type Handler struct {
	links     LinkResolver
	extractor *visitor.Extractor
	logger    *slog.Logger
}

func New(links LinkResolver, extractor *visitor.Extractor, logger *slog.Logger) *Handler {
	return &Handler{
		links:     links,
		extractor: extractor,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/s/:code", h.Resolve)
	e.POST("/s/:code", h.Resolve)

	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/links", h.CreateLink)
	api.GET("/links/:code/stats", h.LinkStats)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Resolve serves both the read path and the password submission path:
// a submitted password simply re-enters the same pipeline.
func (h *Handler) Resolve(c echo.Context) error {
	code := c.Param("code")
	req := c.Request()

	visit := h.extractor.Extract(visitor.Input{
		IP:             c.RealIP(),
		UserAgent:      req.UserAgent(),
		Referrer:       req.Referer(),
		AcceptLanguage: req.Header.Get("Accept-Language"),
		CountryHint:    req.Header.Get(countryHintHeader),
		Now:            time.Now(),
	})

	opts := service.VisitOptions{
		Password:   c.FormValue("password"),
		SkipSplash: parseBool(c.FormValue("skipSplash")),
		IP:         c.RealIP(),
		UserAgent:  req.UserAgent(),
		Referrer:   req.Referer(),
	}

	res, err := h.links.Resolve(req.Context(), code, visit, opts)
	if err != nil {
		return h.resolveError(c, code, err)
	}

	if res.Cookie != nil {
		c.SetCookie(&http.Cookie{
			Name:     res.Cookie.Name,
			Value:    res.Cookie.Value,
			Path:     "/",
			MaxAge:   res.Cookie.MaxAge,
			HttpOnly: false,
			SameSite: http.SameSiteLaxMode,
		})
	}

	switch res.Mode {
	case domain.ModeSplash:
		return h.renderHTML(c, splashTmpl, res.Splash)
	case domain.ModeChallenge:
		return h.renderHTML(c, challengeTmpl, res.Challenge)
	}
	return c.Redirect(http.StatusFound, res.Location)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	resp, err := h.links.Create(c.Request().Context(), req)
	if err != nil {
		return h.createError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) LinkStats(c echo.Context) error {
	resp, err := h.links.Stats(c.Request().Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errLinkNotFound)
		}
		h.logger.Error("failed to load stats", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errStatsFailed)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) resolveError(c echo.Context, code string, err error) error {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	case errors.Is(err, service.ErrLinkExpired):
		return c.JSON(http.StatusGone, errLinkExpired)
	case errors.Is(err, service.ErrLinkInactive):
		return c.JSON(http.StatusForbidden, errLinkInactive)
	case errors.Is(err, service.ErrLinkRestricted):
		return c.JSON(http.StatusForbidden, errLinkRestricted)
	case errors.Is(err, service.ErrInvalidDestination):
		return c.JSON(http.StatusBadRequest, errBadDestination)
	}

	h.logger.Error("failed to resolve link",
		slog.String("code", code),
		slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errResolveFailed)
}

func (h *Handler) createError(c echo.Context, err error) error {
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
	case errors.Is(err, validation.ErrAliasInvalid):
		return c.JSON(http.StatusBadRequest, errBadAlias)
	case errors.Is(err, service.ErrAliasTaken):
		return c.JSON(http.StatusConflict, errAliasTaken)
	}

	h.logger.Error("failed to create link", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errCreateFailed)
}

func (h *Handler) renderHTML(c echo.Context, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errResolveFailed)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func parseBool(v string) bool {
	return v == "1" || v == "true" || v == "yes"
}
