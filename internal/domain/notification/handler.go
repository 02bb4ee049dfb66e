package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Handler provides HTTP handlers for the Notification domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Notification domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all Notification domain routes.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/notify", h.Create)
	g.GET("/notifications", h.List)
}

func (h *Handler) Create(c echo.Context) error {
	var n Notification
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &n)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return echo.NewHTTPError(http.StatusBadRequest, verrs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	limit := DefaultListLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	items, err := h.svc.List(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
