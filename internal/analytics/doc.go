// Package analytics implements the dashboard aggregations over the combined
// contract dataset. Every function is pure: it takes the immutable dataset
// (plus an optional filter for the trend view), computes one grouped or
// pivoted summary, and returns a chart-ready result. Nothing here caches or
// mutates shared state, so every UI interaction recomputes from the full
// table.
//
// Null-group policy: rows whose group key is null (empty dealer, fuel type,
// or model, or an unset date bucket) are excluded from groupings on that key
// but still count toward every aggregate that does not group on it.
package analytics
