package analytics

import (
	"strings"

	"dealerpulse/pkg/contracts/domain"
)

// activeStatusMarker is the case-sensitive substring that marks an active
// contract in contract_status.
const activeStatusMarker = "LIVE"

// Summarize computes the four fiscal KPIs over the full dataset. It runs
// once at startup and the result stays static for the process lifetime; no
// filter affects it.
func Summarize(ds domain.Dataset) domain.KPISummary {
	var summary domain.KPISummary

	perDealer := make(map[string]float64)
	for _, record := range ds.Records() {
		summary.TotalRevenue += record.CapitalAmount

		// Null dealer ids are excluded from the per-dealer grouping but
		// still count toward total revenue.
		if record.DealerID != "" {
			perDealer[record.DealerID] += record.CapitalAmount
		}

		if strings.Contains(record.Status, activeStatusMarker) {
			summary.ActiveContracts++
		}
	}

	if len(perDealer) > 0 {
		var sum float64
		first := true
		for _, total := range perDealer {
			sum += total
			if first || total > summary.TopDealerRevenue {
				summary.TopDealerRevenue = total
				first = false
			}
		}
		summary.AvgRevenuePerDealer = sum / float64(len(perDealer))
	}

	return summary
}
