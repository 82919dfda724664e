package entities

import "time"

// DailyDemand is a single entry in a zero-filled daily demand series
type DailyDemand struct {
	Date     time.Time
	Quantity float64
}

// DailySeries is an ordered, gap-free daily demand series. Days without
// recorded sales carry quantity zero.
type DailySeries []DailyDemand

// Window returns the last n entries of the series. When n exceeds the series
// length the whole series is returned.
func (s DailySeries) Window(n int) DailySeries {
	if n >= len(s) {
		return s
	}
	if n <= 0 {
		return DailySeries{}
	}
	return s[len(s)-n:]
}

// Values returns the quantities of the series in chronological order
func (s DailySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, d := range s {
		values[i] = d.Quantity
	}
	return values
}

// DemandStatistics holds per-day demand statistics over a trailing window
type DemandStatistics struct {
	MeanPerDay float64 `json:"mean_per_day"`
	StdPerDay  float64 `json:"std_per_day"`
}

// ForecastPoint is a probabilistic demand forecast for a single future day.
// Day is 1-indexed relative to the forecast origin.
type ForecastPoint struct {
	Day int     `json:"day"`
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}
