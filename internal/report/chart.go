package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/jgoulah/elecalc/pkg/consumption"
	"github.com/jgoulah/elecalc/pkg/models"
)

// DailySeries returns the daily totals, Monday first
func DailySeries(est models.Estimate) []float64 {
	series := make([]float64, 0, models.DaysPerWeek)
	for _, d := range est.Summary.Days {
		series = append(series, d.TotalLoad)
	}
	return series
}

// LineChart plots the daily totals across the week.
func LineChart(est models.Estimate, width, height int) string {
	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(DailySeries(est),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("Daily Electricity Consumption (kWh), Mon to Sun"),
	)
}

// ShareBars renders one horizontal bar per day sized by its share of the week.
func ShareBars(est models.Estimate, width int) string {
	barWidth := width - 20 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	maxShare := 0.0
	for _, day := range models.Weekdays() {
		if s := consumption.Share(est.Summary, day); s > maxShare {
			maxShare = s
		}
	}
	if maxShare == 0 {
		maxShare = 1
	}

	var lines []string
	for _, day := range models.Weekdays() {
		share := consumption.Share(est.Summary, day)
		barLen := int(share / maxShare * float64(barWidth))
		lines = append(lines, fmt.Sprintf("%s │%s %5.1f%%", day.Short(), strings.Repeat("█", barLen), share))
	}

	return strings.Join(lines, "\n")
}

// Chart writes the line chart followed by the weekly distribution bars.
func Chart(w io.Writer, est models.Estimate, width, height int) {
	fmt.Fprintln(w, LineChart(est, width, height))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Weekly Consumption Distribution")
	fmt.Fprintln(w, ShareBars(est, width))
}
