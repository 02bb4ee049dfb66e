package hospital

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Handler provides HTTP handlers for the Hospital domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Hospital domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all Hospital domain routes.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/hospitals", h.Create)
	g.GET("/hospitals", h.List)
}

func (h *Handler) Create(c echo.Context) error {
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &hosp)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
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
