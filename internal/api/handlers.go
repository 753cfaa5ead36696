package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/samanqayyum/dhv/internal/models"
)

// Handler serves the dashboard selections and the rendered infographic.
// It starts empty and answers 503 until SetData is called, so the
// server can come up while the datasets load in the background.
type Handler struct {
	mu    sync.RWMutex
	data  *models.Dashboard
	image []byte
}

func NewHandler() *Handler {
	return &Handler{}
}

// SetData swaps in a freshly built dashboard and its rendered PNG.
func (h *Handler) SetData(d *models.Dashboard, image []byte) {
	h.mu.Lock()
	h.data = d
	h.image = image
	h.mu.Unlock()
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/population/growth", h.GetPopulationGrowth)
	api.GET("/migration", h.GetNetMigration)
	api.GET("/emissions", h.GetCO2Emission)
	api.GET("/unemployment", h.GetUnemployment)
	e.GET("/infographic.png", h.GetInfographic)
}

func (h *Handler) snapshot() (*models.Dashboard, []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data, h.image
}

func notReady(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": "datasets still loading",
	})
}

// --- HANDLERS ---

func (h *Handler) GetDashboard(c echo.Context) error {
	data, _ := h.snapshot()
	if data == nil {
		return notReady(c)
	}
	return c.JSON(http.StatusOK, data)
}

func (h *Handler) GetPopulationGrowth(c echo.Context) error {
	data, _ := h.snapshot()
	if data == nil {
		return notReady(c)
	}
	return c.JSON(http.StatusOK, data.PopulationGrowth)
}

func (h *Handler) GetNetMigration(c echo.Context) error {
	data, _ := h.snapshot()
	if data == nil {
		return notReady(c)
	}
	return c.JSON(http.StatusOK, data.NetMigration)
}

func (h *Handler) GetCO2Emission(c echo.Context) error {
	data, _ := h.snapshot()
	if data == nil {
		return notReady(c)
	}
	return c.JSON(http.StatusOK, data.CO2Emission)
}

func (h *Handler) GetUnemployment(c echo.Context) error {
	data, _ := h.snapshot()
	if data == nil {
		return notReady(c)
	}
	return c.JSON(http.StatusOK, data.Unemployment)
}

func (h *Handler) GetInfographic(c echo.Context) error {
	_, image := h.snapshot()
	if image == nil {
		return notReady(c)
	}
	return c.Blob(http.StatusOK, "image/png", image)
}
