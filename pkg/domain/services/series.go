package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvohra/replan/pkg/domain/entities"
)

// BuildDailySeries aggregates raw sales records into a continuous daily
// demand series spanning the earliest to the latest record date, inclusive.
// Multiple records on the same day are summed; days with no records carry
// quantity zero. An empty record set yields an empty series.
func BuildDailySeries(records []*entities.SalesRecord) entities.DailySeries {
	if len(records) == 0 {
		return entities.DailySeries{}
	}

	totals := make(map[time.Time]decimal.Decimal, len(records))
	var minDate, maxDate time.Time

	for i, record := range records {
		day := entities.TruncateToDay(record.Date)
		totals[day] = totals[day].Add(record.Quantity.Decimal())
		if i == 0 || day.Before(minDate) {
			minDate = day
		}
		if i == 0 || day.After(maxDate) {
			maxDate = day
		}
	}

	var series entities.DailySeries
	for day := minDate; !day.After(maxDate); day = day.AddDate(0, 0, 1) {
		series = append(series, entities.DailyDemand{
			Date:     day,
			Quantity: totals[day].InexactFloat64(),
		})
	}

	return series
}

// Mean returns the arithmetic mean of the values, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStd returns the population standard deviation (divisor N) of the
// values. Fewer than two values yield 0, matching a degenerate distribution.
func PopulationStd(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
