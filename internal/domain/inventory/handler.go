package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Handler provides HTTP handlers for the Inventory domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Inventory domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all Inventory domain routes.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/inventory", h.Add)
	g.GET("/inventory", h.List)
	g.DELETE("/inventory/:id", h.Delete)
}

func (h *Handler) Add(c echo.Context) error {
	var item Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Add(c.Request().Context(), &item)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	includeExpired := false
	if v := c.QueryParam("include_expired"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "include_expired must be a boolean")
		}
		includeExpired = b
	}
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("hospital_id"), includeExpired)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func httpError(err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return echo.NewHTTPError(http.StatusBadRequest, verrs)
	case errors.Is(err, docstore.ErrMalformedID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, docstore.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
