package analytics

import (
	"time"
)

// TrendFilter narrows the trend aggregation. The date range applies only
// when both bounds are set and is inclusive on both ends; the membership
// filters apply when non-empty.
type TrendFilter struct {
	From      time.Time
	To        time.Time
	FuelTypes []string
	Models    []string
}

// HasDateRange reports whether both range bounds are set.
func (f TrendFilter) HasDateRange() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

// TrendPoint is one month of summed revenue, chronologically ordered within
// its series.
type TrendPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// HeatmapGrid is the dealer-by-quarter revenue pivot limited to Q1/Q4
// columns, zero-filled, ready for heatmap rendering.
type HeatmapGrid struct {
	Dealers  []string    `json:"dealers"`
	Quarters []string    `json:"quarters"`
	Values   [][]float64 `json:"values"`
}

// VarianceRow is one dealer row of the variance table. Quarters is aligned
// with the parent table's Quarters labels.
type VarianceRow struct {
	DealerID string    `json:"dealerbpid"`
	Quarters []float64 `json:"quarters"`
	Variance float64   `json:"variance"`
}

// VarianceTable is the top-N dealer variance summary, sorted by descending
// variance.
type VarianceTable struct {
	Quarters []string      `json:"quarters"`
	Rows     []VarianceRow `json:"rows"`
}

// FuelSeries is one fuel type's totals aligned with the parent's Models.
type FuelSeries struct {
	FuelType string    `json:"fueltypecode"`
	Totals   []float64 `json:"totals"`
}

// ModelAnalysis is revenue grouped by car model and stacked by fuel type.
type ModelAnalysis struct {
	Models []string     `json:"models"`
	Series []FuelSeries `json:"series"`
}

// DealerRevenue is one dealer's total revenue bar.
type DealerRevenue struct {
	DealerID string  `json:"dealerbpid"`
	Total    float64 `json:"total"`
}

// BucketTotal is summed revenue for one chronological bucket (month or
// quarter), labelled with the bucket's string form.
type BucketTotal struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// FilterOptions holds the distinct values the dashboard offers in the Trends
// tab controls, derived from the loaded dataset.
type FilterOptions struct {
	FuelTypes []string  `json:"fuel_types"`
	Models    []string  `json:"models"`
	MinDate   time.Time `json:"min_date"`
	MaxDate   time.Time `json:"max_date"`
}
