package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"dealerpulse/internal/analytics"
)

const varianceSheet = "Variance"

// VarianceWriter renders the quarterly variance table as an Excel workbook.
type VarianceWriter struct {
	logger *slog.Logger
}

// NewVarianceWriter creates a variance workbook writer.
func NewVarianceWriter(logger *slog.Logger) *VarianceWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &VarianceWriter{logger: logger}
}

// Write streams an xlsx workbook containing the variance table to w.
// Columns are dealer, one column per quarter, and the variance value.
func (vw *VarianceWriter) Write(w io.Writer, table analytics.VarianceTable) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(varianceSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := make([]interface{}, 0, len(table.Quarters)+2)
	header = append(header, "Dealer")
	for _, q := range table.Quarters {
		header = append(header, q)
	}
	header = append(header, "Variance")
	if err := f.SetSheetRow(varianceSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, 0, len(row.Quarters)+2)
		cells = append(cells, row.DealerID)
		for _, v := range row.Quarters {
			cells = append(cells, v)
		}
		cells = append(cells, row.Variance)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(varianceSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	vw.logger.Debug("variance workbook rendered",
		slog.Int("rows", len(table.Rows)),
		slog.Int("quarters", len(table.Quarters)))

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
