package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerpulse/pkg/contracts/domain"
)

func TestHeatmapScenario(t *testing.T) {
	grid := Heatmap(scenarioDataset())

	// 2023Q2 is dropped: only first and fourth quarters survive the column filter
	assert.Equal(t, []string{"2023Q1"}, grid.Quarters)
	require.Equal(t, []string{"D1", "D2"}, grid.Dealers)
	assert.Equal(t, [][]float64{{100}, {200}}, grid.Values)
}

func TestHeatmapZeroFill(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D2", "2023-10-20", 200, "LIVE"),
	})

	grid := Heatmap(ds)

	assert.Equal(t, []string{"2023Q1", "2023Q4"}, grid.Quarters)
	assert.Equal(t, [][]float64{{100, 0}, {0, 200}}, grid.Values)
}

func TestHeatmapRowMembership(t *testing.T) {
	// D3 only has a Q2 contract: it appears as a row (it has a start
	// quarter) but contributes nothing to the surviving columns.
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D3", "2023-05-01", 75, "LIVE"),
	})

	grid := Heatmap(ds)

	assert.Equal(t, []string{"D1", "D3"}, grid.Dealers)
	assert.Equal(t, []string{"2023Q1"}, grid.Quarters)
	assert.Equal(t, [][]float64{{100}, {0}}, grid.Values)
}

func TestHeatmapExcludesNullKeys(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("", "2023-01-16", 50, "LIVE"),  // null dealer
		record("D2", "", 70, "LIVE"),          // null quarter
	})

	grid := Heatmap(ds)

	assert.Equal(t, []string{"D1"}, grid.Dealers)
	assert.Equal(t, [][]float64{{100}}, grid.Values)
}

func TestVarianceScenario(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D1", "2023-10-10", 400, "LIVE"),
		record("D2", "2023-01-20", 200, "LIVE"),
	})

	table := Variance(ds, 10)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2023Q1", "2023Q4"}, table.Quarters)
	// D1 spread 300 (400-100), D2 spread 200 (200-0 after zero fill)
	assert.Equal(t, "D1", table.Rows[0].DealerID)
	assert.Equal(t, 300.0, table.Rows[0].Variance)
	assert.Equal(t, "D2", table.Rows[1].DealerID)
	assert.Equal(t, 200.0, table.Rows[1].Variance)
}

func TestVarianceTopNAndOrdering(t *testing.T) {
	var records []domain.ContractRecord
	for i := 0; i < 15; i++ {
		dealer := fmt.Sprintf("D%02d", i)
		records = append(records,
			record(dealer, "2023-01-15", float64(i*10), "LIVE"),
			record(dealer, "2023-10-15", 0, "LIVE"),
		)
	}
	ds := domain.NewDataset(records)

	table := Variance(ds, 10)

	require.Len(t, table.Rows, 10)
	for i := 1; i < len(table.Rows); i++ {
		assert.GreaterOrEqual(t, table.Rows[i-1].Variance, table.Rows[i].Variance,
			"variance must be non-increasing")
	}
	assert.Equal(t, "D14", table.Rows[0].DealerID)
}

func TestVarianceStableOnTies(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("DB", "2023-01-15", 100, "LIVE"),
		record("DA", "2023-01-15", 100, "LIVE"),
	})

	table := Variance(ds, 10)

	// equal spreads keep the ascending dealer ordering
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "DA", table.Rows[0].DealerID)
	assert.Equal(t, "DB", table.Rows[1].DealerID)
}

func TestVarianceEmptyDataset(t *testing.T) {
	table := Variance(domain.NewDataset(nil), 10)

	assert.Empty(t, table.Quarters)
	assert.Empty(t, table.Rows)
}

func TestHeatmapIdempotent(t *testing.T) {
	ds := scenarioDataset()
	assert.Equal(t, Heatmap(ds), Heatmap(ds))
}
