package forecast

import (
	"math"

	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/services"
)

// Default planning window sizes
const (
	DefaultHistoryWindow   = 28
	DefaultForecastHorizon = 14
)

// Estimator derives probabilistic demand forecasts from historical sales.
// It is stateless; a single Estimator may be shared across goroutines.
type Estimator struct{}

// NewEstimator creates a new demand estimator
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate filters the sales history for the given SKU and site, aggregates
// it into a zero-filled daily series, and computes demand statistics over
// the last windowDays entries. It returns one forecast point per horizon day
// (flat projection: every day carries the same quantiles) together with the
// statistics used to generate them.
//
// An empty filtered history is not an error: the forecast is all zeros and
// both statistics are zero.
func (e *Estimator) Estimate(
	history []*entities.SalesRecord,
	skuID entities.SKUID,
	siteID entities.SiteID,
	windowDays int,
	horizonDays int,
) ([]entities.ForecastPoint, entities.DemandStatistics) {
	filtered := filterHistory(history, skuID, siteID)
	if len(filtered) == 0 {
		return zeroForecast(horizonDays), entities.DemandStatistics{}
	}

	series := services.BuildDailySeries(filtered)
	window := series.Window(windowDays).Values()

	stats := entities.DemandStatistics{
		MeanPerDay: services.Mean(window),
		StdPerDay:  services.PopulationStd(window),
	}

	return project(stats, horizonDays), stats
}

// filterHistory selects records matching the SKU and site exactly
func filterHistory(history []*entities.SalesRecord, skuID entities.SKUID, siteID entities.SiteID) []*entities.SalesRecord {
	var filtered []*entities.SalesRecord
	for _, record := range history {
		if record.SKUID == skuID && record.SiteID == siteID {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// project emits the flat quantile forecast for each horizon day. Days are
// 1-indexed. With zero variance all quantiles collapse onto the mean.
func project(stats entities.DemandStatistics, horizonDays int) []entities.ForecastPoint {
	p50 := stats.MeanPerDay
	p10, p90 := p50, p50
	if stats.StdPerDay > 0 {
		p10 = math.Max(0, stats.MeanPerDay+services.Z10*stats.StdPerDay)
		p90 = math.Max(0, stats.MeanPerDay+services.Z90*stats.StdPerDay)
	}

	points := make([]entities.ForecastPoint, 0, horizonDays)
	for day := 1; day <= horizonDays; day++ {
		points = append(points, entities.ForecastPoint{
			Day: day,
			P10: p10,
			P50: p50,
			P90: p90,
		})
	}
	return points
}

func zeroForecast(horizonDays int) []entities.ForecastPoint {
	points := make([]entities.ForecastPoint, 0, horizonDays)
	for day := 1; day <= horizonDays; day++ {
		points = append(points, entities.ForecastPoint{Day: day})
	}
	return points
}
