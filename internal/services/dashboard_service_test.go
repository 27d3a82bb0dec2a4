package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apierrors "dealerpulse/internal/errors"
	"dealerpulse/pkg/contracts/domain"
)

func testRecord(dealer, start string, amount float64, status, fuel, model string) domain.ContractRecord {
	r := domain.ContractRecord{
		DealerID:         dealer,
		CapitalAmount:    amount,
		Status:           status,
		FuelType:         fuel,
		ModelDescription: model,
	}
	if start != "" {
		ts, err := time.Parse("2006-01-02", start)
		if err == nil {
			r.StartDate = ts
			r.StartQuarter = domain.QuarterOf(ts)
			r.StartMonth = domain.MonthOf(ts)
		}
	}
	return r
}

func testService(t *testing.T) *DashboardService {
	t.Helper()
	ds := domain.NewDataset([]domain.ContractRecord{
		testRecord("D1", "2023-01-15", 100, "LIVE", "Petrol", "Model A"),
		testRecord("D1", "2023-04-10", 50, "LIVE", "Petrol", "Model B"),
		testRecord("D2", "2023-01-20", 200, "CLOSED", "Electric", "Model A"),
	})
	return NewDashboardService(ds, 10, nil)
}

func TestDashboardServiceKPIs(t *testing.T) {
	svc := testService(t)

	kpis := svc.KPIs(context.Background())

	assert.Equal(t, 350.0, kpis.TotalRevenue)
	assert.Equal(t, 2, kpis.ActiveContracts)
	assert.Equal(t, 200.0, kpis.TopDealerRevenue)
}

func TestDashboardServiceKPIsAreStatic(t *testing.T) {
	svc := testService(t)

	first := svc.KPIs(context.Background())
	second := svc.KPIs(context.Background())

	assert.Equal(t, first, second)
}

func TestDashboardServiceTrend(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name       string
		params     TrendParams
		wantMonths []string
		wantErr    bool
	}{
		{
			name:       "no filters",
			params:     TrendParams{},
			wantMonths: []string{"2023-01", "2023-04"},
		},
		{
			name:       "fuel filter",
			params:     TrendParams{FuelTypes: []string{"Electric"}},
			wantMonths: []string{"2023-01"},
		},
		{
			name:       "no match yields empty series",
			params:     TrendParams{FuelTypes: []string{"Diesel"}},
			wantMonths: []string{},
		},
		{
			name:       "date range",
			params:     TrendParams{From: "2023-04-01", To: "2023-12-31"},
			wantMonths: []string{"2023-04"},
		},
		{
			name:    "malformed from date",
			params:  TrendParams{From: "04/01/2023", To: "2023-12-31"},
			wantErr: true,
		},
		{
			name:    "from without to",
			params:  TrendParams{From: "2023-04-01"},
			wantErr: true,
		},
		{
			name:    "to before from",
			params:  TrendParams{From: "2023-12-31", To: "2023-01-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := svc.Trend(context.Background(), tt.params)
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *apierrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				return
			}
			require.NoError(t, err)
			months := make([]string, 0, len(points))
			for _, p := range points {
				months = append(months, p.Month)
			}
			assert.Equal(t, tt.wantMonths, months)
		})
	}
}

func TestDashboardServiceVarianceExport(t *testing.T) {
	svc := testService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportVariance(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Variance")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Dealer", rows[0][0])
}

func TestDashboardServiceFilterOptions(t *testing.T) {
	svc := testService(t)

	opts := svc.FilterOptions(context.Background())

	assert.Equal(t, []string{"Electric", "Petrol"}, opts.FuelTypes)
	assert.Equal(t, []string{"Model A", "Model B"}, opts.Models)
}

func TestDashboardServiceViews(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	grid := svc.Heatmap(ctx)
	assert.Equal(t, []string{"D1", "D2"}, grid.Dealers)

	table := svc.Variance(ctx)
	assert.LessOrEqual(t, len(table.Rows), 10)

	revenue := svc.Revenue(ctx)
	require.Len(t, revenue, 2)
	assert.Equal(t, "D2", revenue[0].DealerID)

	models := svc.CarModels(ctx)
	assert.Equal(t, []string{"Model A", "Model B"}, models.Models)

	assert.NotEmpty(t, svc.MonthlySeasonal(ctx))
	assert.NotEmpty(t, svc.QuarterlySeasonal(ctx))
	assert.Equal(t, 3, svc.RecordCount())
}
