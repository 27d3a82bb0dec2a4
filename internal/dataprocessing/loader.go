package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"dealerpulse/internal/errors"
	"dealerpulse/pkg/contracts/domain"
)

// Column headers required in every contract export. The loader resolves
// columns by header name, so column order in the files does not matter.
var requiredColumns = []string{
	"dealerbpid",
	"contractstartdate",
	"contractenddate",
	"totalcapitalamount",
	"contract_status",
	"fueltypecode",
	"modeldescription",
}

// Loader reads dealer contract CSV exports into the in-memory dataset.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader with the given logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadCombined reads both contract exports concurrently and concatenates
// their rows into one dataset, first file fully, then second, preserving row
// order within each file. Any missing file, malformed CSV row, missing
// required column, or unparseable amount is a fatal load error: the caller
// must not start serving.
func (l *Loader) LoadCombined(ctx context.Context, pathA, pathB string) (domain.Dataset, error) {
	var recordsA, recordsB []domain.ContractRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recordsA, err = l.loadFile(ctx, pathA)
		return err
	})
	g.Go(func() error {
		var err error
		recordsB, err = l.loadFile(ctx, pathB)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Dataset{}, err
	}

	combined := make([]domain.ContractRecord, 0, len(recordsA)+len(recordsB))
	combined = append(combined, recordsA...)
	combined = append(combined, recordsB...)

	l.logger.InfoContext(ctx, "contract exports loaded",
		slog.String("file_a", pathA),
		slog.String("file_b", pathB),
		slog.Int("rows_a", len(recordsA)),
		slog.Int("rows_b", len(recordsB)),
		slog.Int("total_rows", len(combined)))

	return domain.NewDataset(combined), nil
}

// loadFile reads one contract export into records in file order.
func (l *Loader) loadFile(ctx context.Context, path string) ([]domain.ContractRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open contract export %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read CSV header of %s", path), err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("invalid schema in %s", path), err)
	}

	var records []domain.ContractRecord
	line := 1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read CSV row %d of %s", line+1, path), err)
		}
		line++

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("malformed row %d of %s", line, path), err)
		}
		records = append(records, record)
	}

	l.logger.DebugContext(ctx, "contract export parsed",
		slog.String("path", path),
		slog.Int("rows", len(records)))

	return records, nil
}

// mapColumns resolves required column positions from the header row.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}

	return columns, nil
}

// parseRow converts one CSV row into a ContractRecord and derives its date
// buckets. Date parse failures produce null dates per the deriver's policy;
// an unparseable capital amount is malformed data and fails the load.
func parseRow(row []string, columns map[string]int) (domain.ContractRecord, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	amountText := cell("totalcapitalamount")
	var amount float64
	if amountText != "" {
		var err error
		amount, err = strconv.ParseFloat(strings.ReplaceAll(amountText, ",", ""), 64)
		if err != nil {
			return domain.ContractRecord{}, fmt.Errorf("invalid totalcapitalamount %q: %w", amountText, err)
		}
	}

	record := domain.ContractRecord{
		DealerID:         cell("dealerbpid"),
		StartDate:        ParseDate(cell("contractstartdate")),
		EndDate:          ParseDate(cell("contractenddate")),
		CapitalAmount:    amount,
		Status:           cell("contract_status"),
		FuelType:         cell("fueltypecode"),
		ModelDescription: cell("modeldescription"),
	}

	DeriveBuckets(&record)

	return record, nil
}
