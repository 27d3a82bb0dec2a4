package analytics

import (
	"sort"

	"dealerpulse/pkg/contracts/domain"
)

// RevenueByDealer sums revenue per dealer and orders the bars by descending
// total. Ties keep ascending dealer-id order. Rows with a null dealer id are
// excluded.
func RevenueByDealer(ds domain.Dataset) []DealerRevenue {
	totals := make(map[string]float64)
	for _, record := range ds.Records() {
		if record.DealerID == "" {
			continue
		}
		totals[record.DealerID] += record.CapitalAmount
	}

	dealers := make([]string, 0, len(totals))
	for dealer := range totals {
		dealers = append(dealers, dealer)
	}
	sort.Strings(dealers)

	result := make([]DealerRevenue, 0, len(dealers))
	for _, dealer := range dealers {
		result = append(result, DealerRevenue{DealerID: dealer, Total: totals[dealer]})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Total > result[j].Total })

	return result
}
