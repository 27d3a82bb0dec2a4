package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerpulse/pkg/contracts/domain"
)

func TestMonthlyPattern(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D2", "2023-01-20", 200, "LIVE"),
		record("D1", "2023-04-10", 50, "LIVE"),
		record("D3", "", 999, "LIVE"), // null date excluded
	})

	pattern := MonthlyPattern(ds)

	require.Len(t, pattern, 2)
	assert.Equal(t, BucketTotal{Label: "2023-01", Total: 300}, pattern[0])
	assert.Equal(t, BucketTotal{Label: "2023-04", Total: 50}, pattern[1])
}

func TestQuarterlyPatternKeepsAllQuarters(t *testing.T) {
	// unlike the heatmap, the seasonal view keeps Q2 and Q3
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D1", "2023-05-10", 50, "LIVE"),
		record("D2", "2023-08-02", 75, "LIVE"),
		record("D2", "2023-11-20", 25, "LIVE"),
	})

	pattern := QuarterlyPattern(ds)

	require.Len(t, pattern, 4)
	labels := make([]string, len(pattern))
	for i, b := range pattern {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"2023Q1", "2023Q2", "2023Q3", "2023Q4"}, labels)
	assert.Equal(t, 100.0, pattern[0].Total)
	assert.Equal(t, 25.0, pattern[3].Total)
}

func TestSeasonalPatternsEmptyDataset(t *testing.T) {
	ds := domain.NewDataset(nil)

	assert.Empty(t, MonthlyPattern(ds))
	assert.Empty(t, QuarterlyPattern(ds))
}
