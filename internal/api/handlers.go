package api

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"merchdash/internal/charts"
)

// Handler serves the composed dashboard. The server goes live before the
// CSV is loaded; every route answers 503 until the first SetDashboard.
type Handler struct {
	mu   sync.RWMutex
	dash *charts.Dashboard
}

func NewHandler(dash *charts.Dashboard) *Handler {
	return &Handler{dash: dash}
}

// SetDashboard swaps in a freshly built dashboard, either the initial
// background load or a watch-triggered rebuild.
func (h *Handler) SetDashboard(d *charts.Dashboard) {
	h.mu.Lock()
	h.dash = d
	h.mu.Unlock()
}

func (h *Handler) current() *charts.Dashboard {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dash
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetDashboard)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/dashboard", h.GetData)
	api.GET("/line", h.GetLine)
	api.GET("/bar", h.GetBar)
	api.GET("/pies", h.GetPies)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetDashboard renders the full HTML page.
func (h *Handler) GetDashboard(c echo.Context) error {
	d := h.current()
	if d == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dashboard still loading")
	}
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *Handler) GetData(c echo.Context) error {
	d := h.current()
	if d == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dashboard still loading")
	}
	return c.JSON(http.StatusOK, d.Data)
}

func (h *Handler) GetLine(c echo.Context) error {
	d := h.current()
	if d == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dashboard still loading")
	}
	return c.JSON(http.StatusOK, d.Data.Line)
}

func (h *Handler) GetBar(c echo.Context) error {
	d := h.current()
	if d == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dashboard still loading")
	}
	return c.JSON(http.StatusOK, d.Data.Bar)
}

func (h *Handler) GetPies(c echo.Context) error {
	d := h.current()
	if d == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dashboard still loading")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"exports": d.Data.Exports,
		"imports": d.Data.Imports,
	})
}
