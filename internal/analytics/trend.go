package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// Trend filters the dataset and sums revenue per start month. The result is
// chronologically ordered and deterministic for equal inputs; an empty match
// yields an empty series, never an error.
func Trend(ds domain.Dataset, filter TrendFilter) []TrendPoint {
	fuelSet := toSet(filter.FuelTypes)
	modelSet := toSet(filter.Models)

	totals := make(map[domain.Month]float64)
	for _, record := range ds.Records() {
		// Rows without a parseable start date never enter date-bucketed views
		if !record.HasStartDate() {
			continue
		}

		if filter.HasDateRange() {
			if record.StartDate.Before(filter.From) || record.StartDate.After(filter.To) {
				continue
			}
		}
		if len(fuelSet) > 0 && !fuelSet[record.FuelType] {
			continue
		}
		if len(modelSet) > 0 && !modelSet[record.ModelDescription] {
			continue
		}

		totals[record.StartMonth] += record.CapitalAmount
	}

	months := make([]domain.Month, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		points = append(points, TrendPoint{Month: month.String(), Total: totals[month]})
	}

	return points
}

// toSet converts a value list to a membership set, dropping empty strings.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
