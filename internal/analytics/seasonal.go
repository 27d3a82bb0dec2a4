package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// MonthlyPattern sums revenue per start month over the full unfiltered
// dataset, ordered chronologically.
func MonthlyPattern(ds domain.Dataset) []BucketTotal {
	totals := make(map[domain.Month]float64)
	for _, record := range ds.Records() {
		if record.StartMonth.IsZero() {
			continue
		}
		totals[record.StartMonth] += record.CapitalAmount
	}

	months := make([]domain.Month, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	result := make([]BucketTotal, 0, len(months))
	for _, month := range months {
		result = append(result, BucketTotal{Label: month.String(), Total: totals[month]})
	}
	return result
}

// QuarterlyPattern sums revenue per start quarter over the full unfiltered
// dataset, ordered chronologically.
func QuarterlyPattern(ds domain.Dataset) []BucketTotal {
	totals := make(map[domain.Quarter]float64)
	for _, record := range ds.Records() {
		if record.StartQuarter.IsZero() {
			continue
		}
		totals[record.StartQuarter] += record.CapitalAmount
	}

	quarters := make([]domain.Quarter, 0, len(totals))
	for quarter := range totals {
		quarters = append(quarters, quarter)
	}
	sort.Slice(quarters, func(i, j int) bool { return quarters[i].Before(quarters[j]) })

	result := make([]BucketTotal, 0, len(quarters))
	for _, quarter := range quarters {
		result = append(result, BucketTotal{Label: quarter.String(), Total: totals[quarter]})
	}
	return result
}
