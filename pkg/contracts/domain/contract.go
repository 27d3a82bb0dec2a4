package domain

import (
	"fmt"
	"time"
)

// ContractRecord represents one dealer contract row from the combined CSV
// exports. Dates use the zero time.Time as the null-date sentinel for values
// that failed to parse; categorical fields use the empty string for nulls.
type ContractRecord struct {
	DealerID         string    `json:"dealerbpid"`
	StartDate        time.Time `json:"contractstartdate"`
	EndDate          time.Time `json:"contractenddate"`
	CapitalAmount    float64   `json:"totalcapitalamount"`
	Status           string    `json:"contract_status"`
	FuelType         string    `json:"fueltypecode,omitempty"`
	ModelDescription string    `json:"modeldescription,omitempty"`

	// Derived buckets, set by the field deriver from StartDate.
	// Unset (zero Year) when StartDate is null.
	StartQuarter Quarter `json:"start_quarter"`
	StartMonth   Month   `json:"month"`
}

// HasStartDate reports whether the contract start date parsed successfully.
func (c ContractRecord) HasStartDate() bool {
	return !c.StartDate.IsZero()
}

// Quarter is a calendar year+quarter bucket, e.g. 2023Q1.
type Quarter struct {
	Year int `json:"year"`
	Q    int `json:"quarter"`
}

// QuarterOf returns the quarter bucket containing t.
func QuarterOf(t time.Time) Quarter {
	return Quarter{Year: t.Year(), Q: (int(t.Month())-1)/3 + 1}
}

// IsZero reports whether the quarter is unset.
func (q Quarter) IsZero() bool { return q.Year == 0 }

// String renders the quarter as "2023Q1".
func (q Quarter) String() string {
	return fmt.Sprintf("%04dQ%d", q.Year, q.Q)
}

// Before reports whether q is chronologically before other.
func (q Quarter) Before(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}
	return q.Q < other.Q
}

// Month is a calendar year+month bucket, e.g. 2023-01.
type Month struct {
	Year int        `json:"year"`
	M    time.Month `json:"month"`
}

// MonthOf returns the month bucket containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), M: t.Month()}
}

// IsZero reports whether the month is unset.
func (m Month) IsZero() bool { return m.Year == 0 }

// String renders the month as "2023-01".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.M))
}

// Before reports whether m is chronologically before other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.M < other.M
}

// Dataset is an immutable handle over the combined contract table. It is
// built once at startup and shared read-only by all aggregations; no code
// path mutates the records after load.
type Dataset struct {
	records []ContractRecord
}

// NewDataset wraps the given records. The caller must not modify the slice
// after handing it over.
func NewDataset(records []ContractRecord) Dataset {
	return Dataset{records: records}
}

// Records returns the underlying rows for read-only iteration.
func (d Dataset) Records() []ContractRecord {
	return d.records
}

// Len returns the number of rows in the dataset.
func (d Dataset) Len() int {
	return len(d.records)
}

// KPISummary holds the four fiscal KPIs computed once at load time. They are
// static for the process lifetime and do not react to any filter.
type KPISummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	AvgRevenuePerDealer float64 `json:"avg_revenue_per_dealer"`
	TopDealerRevenue    float64 `json:"top_dealer_revenue"`
	ActiveContracts     int     `json:"active_contracts"`
}
