package forecast

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/services"
)

func record(t *testing.T, date string, sku entities.SKUID, site entities.SiteID, qty int64) *entities.SalesRecord {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", date, err)
	}
	r, err := entities.NewSalesRecord(parsed, sku, site, entities.Quantity(decimal.NewFromInt(qty)))
	if err != nil {
		t.Fatalf("Failed to create sales record: %v", err)
	}
	return r
}

func TestEstimator_EmptyHistoryFallback(t *testing.T) {
	estimator := NewEstimator()

	points, stats := estimator.Estimate(nil, "SKU1", "STORE1", 28, 14)

	if len(points) != 14 {
		t.Fatalf("Expected exactly 14 forecast points, got %d", len(points))
	}
	for _, p := range points {
		if p.P10 != 0 || p.P50 != 0 || p.P90 != 0 {
			t.Errorf("Day %d: expected all-zero quantiles, got p10=%g p50=%g p90=%g", p.Day, p.P10, p.P50, p.P90)
		}
	}
	if stats.MeanPerDay != 0 || stats.StdPerDay != 0 {
		t.Errorf("Expected zero statistics, got mean=%g std=%g", stats.MeanPerDay, stats.StdPerDay)
	}
}

func TestEstimator_FilterIsExactMatch(t *testing.T) {
	estimator := NewEstimator()
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 10),
		record(t, "2024-01-01", "SKU1", "STORE2", 99),
		record(t, "2024-01-01", "sku1", "STORE1", 99),
		record(t, "2024-01-01", "SKU10", "STORE1", 99),
	}

	_, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 7)

	if stats.MeanPerDay != 10 {
		t.Errorf("Expected only the exact SKU/site match to survive, mean=%g", stats.MeanPerDay)
	}
}

func TestEstimator_ZeroVarianceCollapsesQuantiles(t *testing.T) {
	estimator := NewEstimator()
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 5),
		record(t, "2024-01-02", "SKU1", "STORE1", 5),
		record(t, "2024-01-03", "SKU1", "STORE1", 5),
	}

	points, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 10)

	if stats.StdPerDay != 0 {
		t.Fatalf("Expected zero std for constant history, got %g", stats.StdPerDay)
	}
	for _, p := range points {
		if p.P10 != 5 || p.P50 != 5 || p.P90 != 5 {
			t.Errorf("Day %d: expected p10 == p50 == p90 == 5, got %g/%g/%g", p.Day, p.P10, p.P50, p.P90)
		}
	}
}

func TestEstimator_QuantileBand(t *testing.T) {
	estimator := NewEstimator()
	// Two-day history {2, 4}: mean 3, population std 1
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 2),
		record(t, "2024-01-02", "SKU1", "STORE1", 4),
	}

	points, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 3)

	if stats.MeanPerDay != 3 || math.Abs(stats.StdPerDay-1) > 1e-12 {
		t.Fatalf("Expected mean 3 std 1, got mean=%g std=%g", stats.MeanPerDay, stats.StdPerDay)
	}

	wantP10 := 3 + services.Z10
	wantP90 := 3 + services.Z90
	for _, p := range points {
		if math.Abs(p.P10-wantP10) > 1e-12 {
			t.Errorf("Day %d: p10 = %g, expected %g", p.Day, p.P10, wantP10)
		}
		if p.P50 != 3 {
			t.Errorf("Day %d: p50 = %g, expected 3", p.Day, p.P50)
		}
		if math.Abs(p.P90-wantP90) > 1e-12 {
			t.Errorf("Day %d: p90 = %g, expected %g", p.Day, p.P90, wantP90)
		}
	}
}

func TestEstimator_LowerQuantileClampedAtZero(t *testing.T) {
	estimator := NewEstimator()
	// Mean 5, std 10: mean + z10*std is well below zero
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 15),
		record(t, "2024-01-02", "SKU1", "STORE1", 0),
		record(t, "2024-01-03", "SKU1", "STORE1", 0),
	}

	points, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 1)

	if stats.MeanPerDay+services.Z10*stats.StdPerDay >= 0 {
		t.Fatalf("Test setup error: expected negative raw p10")
	}
	if points[0].P10 != 0 {
		t.Errorf("Expected p10 clamped to 0, got %g", points[0].P10)
	}
}

func TestEstimator_WindowUsesMostRecentDays(t *testing.T) {
	estimator := NewEstimator()
	// 10 days of quantity 1 followed by 2 days of quantity 10; window of 2
	// must see only the recent days.
	var history []*entities.SalesRecord
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		history = append(history, record(t, base.AddDate(0, 0, i).Format("2006-01-02"), "SKU1", "STORE1", 1))
	}
	for i := 10; i < 12; i++ {
		history = append(history, record(t, base.AddDate(0, 0, i).Format("2006-01-02"), "SKU1", "STORE1", 10))
	}

	_, stats := estimator.Estimate(history, "SKU1", "STORE1", 2, 5)

	if stats.MeanPerDay != 10 {
		t.Errorf("Expected window mean 10 from the last 2 days, got %g", stats.MeanPerDay)
	}
	if stats.StdPerDay != 0 {
		t.Errorf("Expected window std 0, got %g", stats.StdPerDay)
	}
}

func TestEstimator_GapDaysLowerTheMean(t *testing.T) {
	estimator := NewEstimator()
	// Sales on day 1 and day 5 only; the three gap days count as zeros.
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 10),
		record(t, "2024-01-05", "SKU1", "STORE1", 10),
	}

	_, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 1)

	if stats.MeanPerDay != 4 {
		t.Errorf("Expected mean 4 over 5 zero-filled days, got %g", stats.MeanPerDay)
	}
}

func TestEstimator_SingleDayHistory(t *testing.T) {
	estimator := NewEstimator()
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 7),
	}

	points, stats := estimator.Estimate(history, "SKU1", "STORE1", 28, 2)

	if stats.MeanPerDay != 7 || stats.StdPerDay != 0 {
		t.Fatalf("Expected mean 7 std 0 for single-day history, got mean=%g std=%g", stats.MeanPerDay, stats.StdPerDay)
	}
	for _, p := range points {
		if p.P10 != 7 || p.P50 != 7 || p.P90 != 7 {
			t.Errorf("Day %d: expected degenerate quantiles at 7, got %g/%g/%g", p.Day, p.P10, p.P50, p.P90)
		}
	}
}

func TestEstimator_HorizonOnlyChangesPointCount(t *testing.T) {
	estimator := NewEstimator()
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 2),
		record(t, "2024-01-02", "SKU1", "STORE1", 4),
	}

	short, _ := estimator.Estimate(history, "SKU1", "STORE1", 28, 3)
	long, _ := estimator.Estimate(history, "SKU1", "STORE1", 28, 9)

	if len(short) != 3 || len(long) != 9 {
		t.Fatalf("Expected 3 and 9 points, got %d and %d", len(short), len(long))
	}
	for i, p := range long {
		if p.Day != i+1 {
			t.Errorf("Expected day index %d, got %d", i+1, p.Day)
		}
		if p.P10 != long[0].P10 || p.P50 != long[0].P50 || p.P90 != long[0].P90 {
			t.Errorf("Day %d: flat projection violated", p.Day)
		}
	}
}

func TestEstimator_Idempotent(t *testing.T) {
	estimator := NewEstimator()
	history := []*entities.SalesRecord{
		record(t, "2024-01-01", "SKU1", "STORE1", 3),
		record(t, "2024-01-03", "SKU1", "STORE1", 8),
	}

	points1, stats1 := estimator.Estimate(history, "SKU1", "STORE1", 28, 14)
	points2, stats2 := estimator.Estimate(history, "SKU1", "STORE1", 28, 14)

	if !reflect.DeepEqual(points1, points2) {
		t.Errorf("Expected bit-identical forecast points across calls")
	}
	if stats1 != stats2 {
		t.Errorf("Expected identical statistics across calls: %+v vs %+v", stats1, stats2)
	}
}
