package services

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
)

func mustRecord(t *testing.T, date string, qty int64) *entities.SalesRecord {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", date, err)
	}
	record, err := entities.NewSalesRecord(parsed, "SKU1", "STORE1", entities.Quantity(decimal.NewFromInt(qty)))
	if err != nil {
		t.Fatalf("Failed to create sales record: %v", err)
	}
	return record
}

func TestBuildDailySeries_FillsGapsWithZero(t *testing.T) {
	records := []*entities.SalesRecord{
		mustRecord(t, "2024-01-01", 10),
		mustRecord(t, "2024-01-04", 8),
	}

	series := BuildDailySeries(records)

	if len(series) != 4 {
		t.Fatalf("Expected 4 days spanning 2024-01-01 to 2024-01-04, got %d", len(series))
	}

	expected := []float64{10, 0, 0, 8}
	for i, want := range expected {
		if series[i].Quantity != want {
			t.Errorf("Day %d: expected quantity %g, got %g", i, want, series[i].Quantity)
		}
	}
}

func TestBuildDailySeries_SumsSameDayRecords(t *testing.T) {
	records := []*entities.SalesRecord{
		mustRecord(t, "2024-01-02", 3),
		mustRecord(t, "2024-01-02", 4),
	}

	series := BuildDailySeries(records)

	if len(series) != 1 {
		t.Fatalf("Expected single-day series, got %d entries", len(series))
	}
	if series[0].Quantity != 7 {
		t.Errorf("Expected same-day records summed to 7, got %g", series[0].Quantity)
	}
}

func TestBuildDailySeries_UnorderedInput(t *testing.T) {
	records := []*entities.SalesRecord{
		mustRecord(t, "2024-01-03", 2),
		mustRecord(t, "2024-01-01", 5),
	}

	series := BuildDailySeries(records)

	if len(series) != 3 {
		t.Fatalf("Expected 3 days, got %d", len(series))
	}
	if series[0].Quantity != 5 || series[2].Quantity != 2 {
		t.Errorf("Expected chronological series [5 0 2], got %v", series.Values())
	}
}

func TestBuildDailySeries_Empty(t *testing.T) {
	series := BuildDailySeries(nil)
	if len(series) != 0 {
		t.Errorf("Expected empty series for no records, got %d entries", len(series))
	}
}

func TestMean(t *testing.T) {
	testCases := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"empty", nil, 0.0},
		{"single value", []float64{4}, 4.0},
		{"several values", []float64{2, 4, 6}, 4.0},
		{"all zero", []float64{0, 0, 0}, 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mean(tc.values); got != tc.expected {
				t.Errorf("Mean(%v) = %g, expected %g", tc.values, got, tc.expected)
			}
		})
	}
}

func TestPopulationStd(t *testing.T) {
	t.Run("fewer than two values", func(t *testing.T) {
		if got := PopulationStd([]float64{5}); got != 0.0 {
			t.Errorf("Expected 0 for single value, got %g", got)
		}
		if got := PopulationStd(nil); got != 0.0 {
			t.Errorf("Expected 0 for empty slice, got %g", got)
		}
	})

	t.Run("constant values", func(t *testing.T) {
		if got := PopulationStd([]float64{3, 3, 3, 3}); got != 0.0 {
			t.Errorf("Expected 0 for constant series, got %g", got)
		}
	})

	t.Run("divisor is N not N-1", func(t *testing.T) {
		// Population std of {2, 4} is 1.0; sample std would be sqrt(2)
		if got := PopulationStd([]float64{2, 4}); math.Abs(got-1.0) > 1e-12 {
			t.Errorf("Expected population std 1.0, got %g", got)
		}
	})
}
