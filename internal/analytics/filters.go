package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// Filters derives the Trends tab control options from the dataset: the
// distinct non-null fuel types and models, and the start-date bounds for the
// date range picker.
func Filters(ds domain.Dataset) FilterOptions {
	fuelSet := make(map[string]bool)
	modelSet := make(map[string]bool)

	var options FilterOptions
	for _, record := range ds.Records() {
		if record.FuelType != "" {
			fuelSet[record.FuelType] = true
		}
		if record.ModelDescription != "" {
			modelSet[record.ModelDescription] = true
		}
		if record.HasStartDate() {
			if options.MinDate.IsZero() || record.StartDate.Before(options.MinDate) {
				options.MinDate = record.StartDate
			}
			if options.MaxDate.IsZero() || record.StartDate.After(options.MaxDate) {
				options.MaxDate = record.StartDate
			}
		}
	}

	options.FuelTypes = sortedKeys(fuelSet)
	options.Models = sortedKeys(modelSet)

	return options
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
