package diagnostics

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

const collectionProbeLimit = 10

// Handler serves the root banner, health, and store-connectivity probes.
type Handler struct {
	store docstore.Store
}

// NewHandler creates a new diagnostics handler.
func NewHandler(store docstore.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the diagnostics routes on the root group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Root)
	g.GET("/test", h.Test)
	g.GET("/health", h.Health)
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Blood Donation Management API running",
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

// Test probes store connectivity. It always answers 200: a broken store is
// reported in the payload, not as an HTTP failure.
func (h *Handler) Test(c echo.Context) error {
	ctx := c.Request().Context()
	out := map[string]interface{}{
		"backend":  "go",
		"database": "postgres",
	}
	if err := h.store.Ping(ctx); err != nil {
		out["connection_status"] = "failed"
		out["error"] = truncate(err.Error(), 50)
		return c.JSON(http.StatusOK, out)
	}
	out["connection_status"] = "ok"
	names, err := h.store.Collections(ctx, collectionProbeLimit)
	if err != nil {
		out["connection_status"] = "failed"
		out["error"] = truncate(err.Error(), 50)
		return c.JSON(http.StatusOK, out)
	}
	out["collections"] = names
	return c.JSON(http.StatusOK, out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
