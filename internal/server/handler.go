package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	staysync "github.com/mahadevpnair10/STAYSYNC"
	"github.com/mahadevpnair10/STAYSYNC/catalog"
	"github.com/mahadevpnair10/STAYSYNC/dataset"
	"github.com/mahadevpnair10/STAYSYNC/internal/metrics"
	"github.com/mahadevpnair10/STAYSYNC/internal/profiles"
)

// Version is the API version reported by the banner route.
const Version = "1.0.0"

var validate = validator.New()

// Handler adapts the forecast core to the HTTP surface.
type Handler struct {
	forecaster *staysync.Forecaster
	profiles   *profiles.Service
	metrics    *metrics.Metrics
	log        zerolog.Logger

	supabaseConfigured bool
}

// NewHandler wires the core into the HTTP routes.
func NewHandler(f *staysync.Forecaster, p *profiles.Service, m *metrics.Metrics, log zerolog.Logger, supabaseConfigured bool) *Handler {
	return &Handler{
		forecaster:         f,
		profiles:           p,
		metrics:            m,
		log:                log,
		supabaseConfigured: supabaseConfigured,
	}
}

// RegisterRoutes attaches all API routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/health", h.health)
	e.GET("/properties", h.properties)
	e.GET("/properties/supabase", h.propertiesSupabase)
	e.GET("/properties/details", h.propertyDetails)
	e.POST("/forecast", h.forecast)
}

// ForecastRequest is the POST /forecast body.
type ForecastRequest struct {
	PropertyName string  `json:"property_name" validate:"required"`
	ADR          float64 `json:"adr" validate:"required,gt=0"`
}

// ForecastResponse mirrors the demo UI contract: rendered artifacts plus the
// two derived totals.
type ForecastResponse struct {
	PlotHTML        string `json:"plot_html"`
	TotalRoomNights int    `json:"total_room_nights"`
	TotalRevenue    int    `json:"total_revenue"`
	MapHTML         string `json:"map_html"`
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hotel Occupancy Forecast API",
		"version": Version,
	})
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":              "healthy",
		"timestamp":           time.Now().Format(time.RFC3339),
		"supabase_configured": h.supabaseConfigured,
	})
}

func (h *Handler) properties(c echo.Context) error {
	names, source := h.profiles.Names(c.Request().Context())
	h.metrics.ProfileListSource.WithLabelValues(source).Inc()
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) propertiesSupabase(c echo.Context) error {
	names, err := h.profiles.RemoteNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Message: "supabase error: " + err.Error()})
	}
	h.metrics.ProfileListSource.WithLabelValues(profiles.SourceSupabase).Inc()
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) propertyDetails(c echo.Context) error {
	return c.JSON(http.StatusOK, h.forecaster.Catalog().Properties())
}

func (h *Handler) forecast(c echo.Context) error {
	var req ForecastRequest
	if err := c.Bind(&req); err != nil {
		return h.forecastError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := defaults.Set(&req); err != nil {
		return h.forecastError(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.StructCtx(c.Request().Context(), &req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return h.forecastError(c, http.StatusBadRequest, verrs.Error())
		}
		return h.forecastError(c, http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	res, err := h.forecaster.ForecastProperty(req.PropertyName, req.ADR)
	h.metrics.ForecastDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return h.coreError(c, req.PropertyName, err)
	}

	plotHTML, err := staysync.PlotHTML(res)
	if err != nil {
		return h.forecastError(c, http.StatusInternalServerError, "render plot: "+err.Error())
	}
	mapHTML, err := staysync.LocationMapHTML(res.Property)
	if err != nil {
		return h.forecastError(c, http.StatusInternalServerError, "render map: "+err.Error())
	}

	h.metrics.ForecastRequests.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, ForecastResponse{
		PlotHTML:        plotHTML,
		TotalRoomNights: res.RoomNights,
		TotalRevenue:    res.Revenue,
		MapHTML:         mapHTML,
		Success:         true,
	})
}

func (h *Handler) coreError(c echo.Context, name string, err error) error {
	switch {
	case errors.Is(err, staysync.ErrInvalidRate):
		return h.forecastError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrUnknownProperty):
		return h.forecastError(c, http.StatusNotFound, "Property Name not found.")
	case errors.Is(err, dataset.ErrNoSegmentData):
		return h.forecastError(c, http.StatusUnprocessableEntity, "no forecast available: no historical data for this property's segment")
	default:
		h.log.Error().Err(err).Str("property", name).Msg("forecast failed")
		return h.forecastError(c, http.StatusInternalServerError, "forecast error: "+err.Error())
	}
}

func (h *Handler) forecastError(c echo.Context, status int, msg string) error {
	h.metrics.ForecastRequests.WithLabelValues("error").Inc()
	return c.JSON(status, errorResponse{Message: msg})
}
