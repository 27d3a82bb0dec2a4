package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"dealerpulse/internal/analytics"
	"dealerpulse/internal/errors"
	"dealerpulse/internal/exporter"
	"dealerpulse/pkg/contracts/domain"
)

const queryDateLayout = "2006-01-02"

// TrendParams carries the raw query parameters of the revenue trend view.
// From and To must either both be set or both be empty.
type TrendParams struct {
	From      string   `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string   `json:"to" validate:"omitempty,datetime=2006-01-02,required_with=From"`
	FuelTypes []string `json:"fuel"`
	Models    []string `json:"model"`
}

// DashboardService serves all analytic views over the contract dataset
// loaded at startup. The dataset never changes after construction, so
// the headline KPIs are computed once and reused.
type DashboardService struct {
	dataset  domain.Dataset
	kpis     domain.KPISummary
	options  analytics.FilterOptions
	topRows  int
	validate *validator.Validate
	writer   *exporter.VarianceWriter
	logger   *slog.Logger
}

// NewDashboardService builds the service and precomputes the static KPIs.
func NewDashboardService(dataset domain.Dataset, topVarianceRows int, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}

	kpis := analytics.Summarize(dataset)
	logger.Info("dashboard service initialized",
		slog.Int("records", dataset.Len()),
		slog.Float64("total_revenue", kpis.TotalRevenue),
		slog.Int("active_contracts", kpis.ActiveContracts))

	return &DashboardService{
		dataset:  dataset,
		kpis:     kpis,
		options:  analytics.Filters(dataset),
		topRows:  topVarianceRows,
		validate: validator.New(),
		writer:   exporter.NewVarianceWriter(logger),
		logger:   logger,
	}
}

// KPIs returns the startup-time headline summary.
func (s *DashboardService) KPIs(ctx context.Context) domain.KPISummary {
	return s.kpis
}

// FilterOptions returns the distinct fuel types, model descriptions and
// contract date bounds available for the trend controls.
func (s *DashboardService) FilterOptions(ctx context.Context) analytics.FilterOptions {
	return s.options
}

// Trend validates params and returns the filtered monthly revenue series.
func (s *DashboardService) Trend(ctx context.Context, params TrendParams) ([]analytics.TrendPoint, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, err
	}
	return analytics.Trend(s.dataset, filter), nil
}

// Heatmap returns the dealer-by-quarter revenue grid.
func (s *DashboardService) Heatmap(ctx context.Context) analytics.HeatmapGrid {
	return analytics.Heatmap(s.dataset)
}

// Variance returns the top dealers by quarterly revenue spread.
func (s *DashboardService) Variance(ctx context.Context) analytics.VarianceTable {
	return analytics.Variance(s.dataset, s.topRows)
}

// ExportVariance writes the variance table as an xlsx workbook to w.
func (s *DashboardService) ExportVariance(ctx context.Context, w io.Writer) error {
	table := analytics.Variance(s.dataset, s.topRows)
	if err := s.writer.Write(w, table); err != nil {
		s.logger.Error("variance export failed", slog.String("error", err.Error()))
		return errors.NewStorageError("render variance workbook", err)
	}
	return nil
}

// Revenue returns per-dealer totals sorted by revenue descending.
func (s *DashboardService) Revenue(ctx context.Context) []analytics.DealerRevenue {
	return analytics.RevenueByDealer(s.dataset)
}

// CarModels returns revenue per model description grouped by fuel type.
func (s *DashboardService) CarModels(ctx context.Context) analytics.ModelAnalysis {
	return analytics.CarModels(s.dataset)
}

// MonthlySeasonal returns total revenue per calendar month.
func (s *DashboardService) MonthlySeasonal(ctx context.Context) []analytics.BucketTotal {
	return analytics.MonthlyPattern(s.dataset)
}

// QuarterlySeasonal returns total revenue per calendar quarter.
func (s *DashboardService) QuarterlySeasonal(ctx context.Context) []analytics.BucketTotal {
	return analytics.QuarterlyPattern(s.dataset)
}

// RecordCount reports how many contract rows were loaded.
func (s *DashboardService) RecordCount() int {
	return s.dataset.Len()
}

func (s *DashboardService) buildFilter(params TrendParams) (analytics.TrendFilter, error) {
	if err := s.validate.Struct(params); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field := verrs[0].Field()
			return analytics.TrendFilter{}, errors.ErrValidation(field, "must be a date in YYYY-MM-DD form")
		}
		return analytics.TrendFilter{}, errors.ErrInvalidRequest
	}
	if (params.From == "") != (params.To == "") {
		return analytics.TrendFilter{}, errors.ErrValidation("from", "from and to must be provided together")
	}

	filter := analytics.TrendFilter{
		FuelTypes: params.FuelTypes,
		Models:    params.Models,
	}
	if params.From != "" {
		from, err := time.Parse(queryDateLayout, params.From)
		if err != nil {
			return analytics.TrendFilter{}, errors.ErrValidation("from", "must be a date in YYYY-MM-DD form")
		}
		to, err := time.Parse(queryDateLayout, params.To)
		if err != nil {
			return analytics.TrendFilter{}, errors.ErrValidation("to", "must be a date in YYYY-MM-DD form")
		}
		if to.Before(from) {
			return analytics.TrendFilter{}, errors.ErrValidation("to", "must not be before from")
		}
		filter.From = from
		filter.To = to
	}
	return filter, nil
}
