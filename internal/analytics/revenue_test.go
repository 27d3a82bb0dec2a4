package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerpulse/pkg/contracts/domain"
)

func TestRevenueByDealerDescending(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D2", "2023-01-20", 200, "LIVE"),
		record("D1", "2023-04-10", 50, "LIVE"),
	})

	ranking := RevenueByDealer(ds)

	require.Len(t, ranking, 2)
	assert.Equal(t, DealerRevenue{DealerID: "D2", Total: 200}, ranking[0])
	assert.Equal(t, DealerRevenue{DealerID: "D1", Total: 150}, ranking[1])
}

func TestRevenueByDealerTiesKeepDealerOrder(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("DB", "2023-01-15", 100, "LIVE"),
		record("DA", "2023-01-15", 100, "LIVE"),
	})

	ranking := RevenueByDealer(ds)

	require.Len(t, ranking, 2)
	assert.Equal(t, "DA", ranking[0].DealerID)
	assert.Equal(t, "DB", ranking[1].DealerID)
}

func TestRevenueByDealerExcludesNullDealer(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("", "2023-01-15", 999, "LIVE"),
	})

	ranking := RevenueByDealer(ds)

	require.Len(t, ranking, 1)
	assert.Equal(t, "D1", ranking[0].DealerID)
}

func TestRevenueByDealerIncludesUndatedRows(t *testing.T) {
	ds := domain.NewDataset([]domain.ContractRecord{
		record("D1", "2023-01-15", 100, "LIVE"),
		record("D1", "", 25, "LIVE"),
	})

	ranking := RevenueByDealer(ds)

	require.Len(t, ranking, 1)
	assert.Equal(t, 125.0, ranking[0].Total)
}
