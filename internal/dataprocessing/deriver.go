package dataprocessing

import (
	"strings"
	"time"

	"dealerpulse/pkg/contracts/domain"
)

// dateLayouts are the accepted contract date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02/01/2006",
	"02-Jan-2006",
}

// ParseDate parses a contract date cell. Unparseable or empty values yield
// the zero time (the null-date sentinel) rather than an error; the row is
// retained and only excluded from date-bucketed aggregations.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}

// DeriveBuckets sets the start-quarter and start-month fields from the
// record's start date. Both stay unset when the start date is null. The
// derivation is pure: recomputing from the same start date always yields the
// same buckets.
func DeriveBuckets(record *domain.ContractRecord) {
	if !record.HasStartDate() {
		record.StartQuarter = domain.Quarter{}
		record.StartMonth = domain.Month{}
		return
	}

	record.StartQuarter = domain.QuarterOf(record.StartDate)
	record.StartMonth = domain.MonthOf(record.StartDate)
}
