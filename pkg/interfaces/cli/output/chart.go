package output

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/nvohra/replan/pkg/domain/entities"
)

// RenderForecastChart plots the trailing daily demand next to the forecast
// quantile bands as ASCII charts for terminal use.
func RenderForecastChart(history []float64, predictions []entities.ForecastPoint) string {
	var b strings.Builder

	if len(history) > 0 {
		b.WriteString("Daily demand (trailing window):\n")
		b.WriteString(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Caption(fmt.Sprintf("last %d days", len(history)))))
		b.WriteString("\n\n")
	}

	if len(predictions) > 0 {
		p10 := make([]float64, len(predictions))
		p50 := make([]float64, len(predictions))
		p90 := make([]float64, len(predictions))
		for i, point := range predictions {
			p10[i] = point.P10
			p50[i] = point.P50
			p90[i] = point.P90
		}

		b.WriteString("Forecast quantiles (p10, p50, p90):\n")
		b.WriteString(asciigraph.PlotMany([][]float64{p10, p50, p90},
			asciigraph.Height(10),
			asciigraph.Caption(fmt.Sprintf("next %d days", len(predictions)))))
		b.WriteString("\n")
	}

	return b.String()
}
