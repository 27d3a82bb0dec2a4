package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "dealerpulse/internal/errors"
	"dealerpulse/internal/services"
)

// DashboardHandler serves the analytic views of the dashboard API.
type DashboardHandler struct {
	service      *services.DashboardService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(service *services.DashboardService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/kpis", h.GetKPIs)
	r.Get("/filters", h.GetFilters)
	r.Get("/trend", h.GetTrend)
	r.Get("/heatmap", h.GetHeatmap)
	r.Get("/variance", h.GetVariance)
	r.Get("/variance/export", h.ExportVariance)
	r.Get("/revenue", h.GetRevenue)
	r.Get("/car-models", h.GetCarModels)
	r.Get("/seasonal/monthly", h.GetMonthlySeasonal)
	r.Get("/seasonal/quarterly", h.GetQuarterlySeasonal)

	return r
}

// GetKPIs returns the headline summary computed at startup.
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.KPIs(r.Context()))
}

// GetFilters returns the options available for the trend controls.
func (h *DashboardHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.FilterOptions(r.Context()))
}

// GetTrend returns the monthly revenue series, optionally filtered by
// date range (from, to), fuel type and model query parameters.
func (h *DashboardHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := services.TrendParams{
		From:      query.Get("from"),
		To:        query.Get("to"),
		FuelTypes: query["fuel"],
		Models:    query["model"],
	}

	points, err := h.service.Trend(r.Context(), params)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"points": points})
}

// GetHeatmap returns the dealer-by-quarter revenue grid.
func (h *DashboardHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Heatmap(r.Context()))
}

// GetVariance returns the top dealers by quarterly revenue spread.
func (h *DashboardHandler) GetVariance(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Variance(r.Context()))
}

// ExportVariance streams the variance table as an xlsx download.
func (h *DashboardHandler) ExportVariance(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("dealer_variance_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.service.ExportVariance(r.Context(), w); err != nil {
		// Headers may already be written; log and abort the stream.
		h.logger.Error("variance download failed", slog.String("error", err.Error()))
	}
}

// GetRevenue returns per-dealer revenue totals, highest first.
func (h *DashboardHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"dealers": h.service.Revenue(r.Context())})
}

// GetCarModels returns model revenue grouped by fuel type.
func (h *DashboardHandler) GetCarModels(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.CarModels(r.Context()))
}

// GetMonthlySeasonal returns total revenue per calendar month.
func (h *DashboardHandler) GetMonthlySeasonal(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"buckets": h.service.MonthlySeasonal(r.Context())})
}

// GetQuarterlySeasonal returns total revenue per calendar quarter.
func (h *DashboardHandler) GetQuarterlySeasonal(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"buckets": h.service.QuarterlySeasonal(r.Context())})
}
