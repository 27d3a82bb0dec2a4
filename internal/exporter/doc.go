// Package exporter renders dashboard tables into downloadable
// spreadsheet files.
package exporter
