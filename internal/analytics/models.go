package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// CarModels sums revenue by (model, fuel type) and shapes the result as one
// series per fuel type aligned over the sorted model list, for a stacked bar
// chart keyed by model and colored by fuel type. Rows with a null model or
// fuel type are excluded from the grouping.
func CarModels(ds domain.Dataset) ModelAnalysis {
	type key struct {
		model string
		fuel  string
	}

	sums := make(map[key]float64)
	modelSet := make(map[string]bool)
	fuelSet := make(map[string]bool)

	for _, record := range ds.Records() {
		if record.ModelDescription == "" || record.FuelType == "" {
			continue
		}
		modelSet[record.ModelDescription] = true
		fuelSet[record.FuelType] = true
		sums[key{record.ModelDescription, record.FuelType}] += record.CapitalAmount
	}

	models := make([]string, 0, len(modelSet))
	for model := range modelSet {
		models = append(models, model)
	}
	sort.Strings(models)

	fuels := make([]string, 0, len(fuelSet))
	for fuel := range fuelSet {
		fuels = append(fuels, fuel)
	}
	sort.Strings(fuels)

	series := make([]FuelSeries, 0, len(fuels))
	for _, fuel := range fuels {
		totals := make([]float64, len(models))
		for i, model := range models {
			totals[i] = sums[key{model, fuel}]
		}
		series = append(series, FuelSeries{FuelType: fuel, Totals: totals})
	}

	return ModelAnalysis{Models: models, Series: series}
}
