// Package web serves the Pokémon browser over HTTP: an HTML page and a JSON API
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
	"github.com/andresmatiasescobar/pokedex/internal/services/browser"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Browser browser.Service
	// Sampler serves the one-off listing endpoints that leave the page untouched
	Sampler sampler.Service
	Logger  *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Browser == nil {
		vb.RequiredField("Browser")
	}
	if c.Sampler == nil {
		vb.RequiredField("Sampler")
	}
	return vb.Build()
}

// Handler serves the browser page and API
type Handler struct {
	browser browser.Service
	sampler sampler.Service
	logger  *slog.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		browser: cfg.Browser,
		sampler: cfg.Sampler,
		logger:  logger,
	}, nil
}

// NewRouter builds the gin engine with every route registered
func NewRouter(h *Handler) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(h.logRequests)

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	e.SetHTMLTemplate(tmpl)

	e.GET("/", h.Index)
	e.GET("/select", h.Select)
	e.POST("/reshuffle", h.Reshuffle)
	e.GET("/healthz", h.Health)

	api := e.Group("/api/v1")
	api.GET("/view", h.GetView)
	api.GET("/types", h.ListTypes)
	api.GET("/types/:name/pokemon", h.ListByType)
	api.GET("/pokemon/random", h.RandomSample)

	return e, nil
}

func (h *Handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.logger.InfoContext(c.Request.Context(), "http request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"ip", c.ClientIP(),
		"duration", time.Since(start))
}

// cycleContext detaches a component cycle from the request so a closed tab
// does not leave the shared view failed with "context canceled"
func cycleContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// Index renders the current view
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, NewPage(h.browser.View(), ""))
}

// Select changes the selected type, then redirects to the page
func (h *Handler) Select(c *gin.Context) {
	if _, err := h.browser.Select(cycleContext(c), c.Query("type")); err != nil {
		status, _ := errors.ToHTTP(err)
		c.HTML(status, indexTemplate, NewPage(h.browser.View(), errors.GetMessage(err)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Reshuffle draws a new random sample, then redirects to the page
func (h *Handler) Reshuffle(c *gin.Context) {
	if _, err := h.browser.Reshuffle(cycleContext(c)); err != nil {
		status, _ := errors.ToHTTP(err)
		c.HTML(status, indexTemplate, NewPage(h.browser.View(), errors.GetMessage(err)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetView returns the current view as JSON
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.browser.View())
}

// ListTypes returns the loaded type catalog
func (h *Handler) ListTypes(c *gin.Context) {
	v := h.browser.View()
	types := v.Types
	if types == nil {
		types = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"types": types})
}

// ListByType lists the first members of a type without touching the page
func (h *Handler) ListByType(c *gin.Context) {
	limit, err := intQuery(c, "cap")
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.sampler.FetchByType(c.Request.Context(), &sampler.FetchByTypeInput{
		Type: c.Param("name"),
		Cap:  limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":    c.Param("name"),
		"members": out.Members,
		"pokemon": out.Pokemon,
		"skipped": out.Skipped,
	})
}

// RandomSample draws a one-off random sample without touching the page
func (h *Handler) RandomSample(c *gin.Context) {
	count, err := intQuery(c, "count")
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.sampler.FetchRandomSample(c.Request.Context(), &sampler.FetchRandomSampleInput{Count: count})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":     out.IDs,
		"pokemon": out.Pokemon,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := errors.ToHTTP(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(status, body)
}

// intQuery reads an optional positive integer query parameter; 0 when absent
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.InvalidArgumentf("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}
