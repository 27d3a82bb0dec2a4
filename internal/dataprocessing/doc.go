// Package dataprocessing loads the dealer contract CSV exports and derives
// the date-bucket fields the dashboard aggregates over.
//
// The package is organized into two components:
//
// 1. Loader: reads the two contract exports and concatenates them into one
// in-memory table, failing fatally on missing files or schema mismatches.
//
// 2. Deriver: parses the contract date columns, substituting the null-date
// sentinel for unparseable values, and derives the start-quarter and
// start-month buckets.
//
// The loaded dataset is immutable after initialization and shared read-only
// by all aggregation functions.
package dataprocessing
