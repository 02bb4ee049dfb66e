package donor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloodbank/bloodbank/internal/platform/docstore"
	"github.com/bloodbank/bloodbank/internal/platform/validation"
)

// Handler provides HTTP handlers for the Donor domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Donor domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all Donor domain routes.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/donors", h.Register)
	g.GET("/donors", h.List)
}

func (h *Handler) Register(c echo.Context) error {
	var d Donor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Register(c.Request().Context(), &d)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":       id,
		"eligible": d.Eligible,
	})
}

func (h *Handler) List(c echo.Context) error {
	eligibleOnly := true
	if v := c.QueryParam("eligible_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "eligible_only must be a boolean")
		}
		eligibleOnly = b
	}
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("blood_group"), eligibleOnly)
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
