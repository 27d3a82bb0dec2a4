package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// quarterPivot is the shared dealer-by-quarter revenue pivot behind the
// heatmap and the variance table. Rows cover every dealer appearing with a
// non-null start quarter; columns keep only first and fourth quarters;
// absent dealer/quarter combinations are zero-filled.
type quarterPivot struct {
	dealers  []string
	quarters []domain.Quarter
	values   [][]float64
}

// pivotQuarters builds the pivot from the dataset.
func pivotQuarters(ds domain.Dataset) quarterPivot {
	type cell struct {
		dealer  string
		quarter domain.Quarter
	}

	sums := make(map[cell]float64)
	dealerSet := make(map[string]bool)
	quarterSet := make(map[domain.Quarter]bool)

	for _, record := range ds.Records() {
		if record.DealerID == "" || record.StartQuarter.IsZero() {
			continue
		}

		// Every dealer with a non-null quarter gets a row, even when none
		// of its quarters survive the Q1/Q4 column cut.
		dealerSet[record.DealerID] = true

		if record.StartQuarter.Q != 1 && record.StartQuarter.Q != 4 {
			continue
		}
		quarterSet[record.StartQuarter] = true
		sums[cell{record.DealerID, record.StartQuarter}] += record.CapitalAmount
	}

	dealers := make([]string, 0, len(dealerSet))
	for dealer := range dealerSet {
		dealers = append(dealers, dealer)
	}
	sort.Strings(dealers)

	quarters := make([]domain.Quarter, 0, len(quarterSet))
	for quarter := range quarterSet {
		quarters = append(quarters, quarter)
	}
	sort.Slice(quarters, func(i, j int) bool { return quarters[i].Before(quarters[j]) })

	values := make([][]float64, len(dealers))
	for i, dealer := range dealers {
		row := make([]float64, len(quarters))
		for j, quarter := range quarters {
			row[j] = sums[cell{dealer, quarter}]
		}
		values[i] = row
	}

	return quarterPivot{dealers: dealers, quarters: quarters, values: values}
}

// quarterLabels renders the pivot's column labels.
func (p quarterPivot) quarterLabels() []string {
	labels := make([]string, len(p.quarters))
	for i, quarter := range p.quarters {
		labels[i] = quarter.String()
	}
	return labels
}

// Heatmap returns the dealer-level Q4 vs Q1 revenue grid for heatmap
// rendering with a sequential color scale.
func Heatmap(ds domain.Dataset) HeatmapGrid {
	pivot := pivotQuarters(ds)

	return HeatmapGrid{
		Dealers:  pivot.dealers,
		Quarters: pivot.quarterLabels(),
		Values:   pivot.values,
	}
}

// Variance returns the top dealers by Q1/Q4 revenue spread: per dealer,
// variance is the max minus the min across the kept quarter columns. Rows
// are sorted by descending variance and truncated to topN.
func Variance(ds domain.Dataset, topN int) VarianceTable {
	pivot := pivotQuarters(ds)

	rows := make([]VarianceRow, 0, len(pivot.dealers))
	for i, dealer := range pivot.dealers {
		rows = append(rows, VarianceRow{
			DealerID: dealer,
			Quarters: pivot.values[i],
			Variance: rowSpread(pivot.values[i]),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Variance > rows[j].Variance })

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}

	return VarianceTable{
		Quarters: pivot.quarterLabels(),
		Rows:     rows,
	}
}

// rowSpread returns max - min of the row, 0 for an empty row.
func rowSpread(row []float64) float64 {
	if len(row) == 0 {
		return 0
	}

	min, max := row[0], row[0]
	for _, v := range row[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
