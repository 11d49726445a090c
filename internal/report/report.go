// Package report renders a consumption estimate for the terminal.
// Every function reads from a single models.Estimate and never recomputes it.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/elecalc/pkg/consumption"
	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/olekukonko/tablewriter"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

// KWh formats an energy value with two decimals and a unit
func KWh(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + " kWh"
}

// Money formats a cost with the currency symbol in front
func Money(currency string, v float64) string {
	return currency + humanize.FormatFloat("#,###.##", v)
}

func mark(used bool) string {
	if used {
		return checkMark
	}
	return crossMark
}

// Breakdown writes the per-day table, Monday first, one column per appliance.
func Breakdown(w io.Writer, est models.Estimate) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{
		"Day",
		"Base (kWh)",
		"AC",
		"Fridge",
		"Washing Machine",
		"Appliances (kWh)",
		"Total (kWh)",
	})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, d := range est.Summary.Days {
		table.Append([]string{
			d.Day.String(),
			fmt.Sprintf("%.2f", d.BaseLoad),
			mark(d.Usage.AirConditioner),
			mark(d.Usage.Refrigerator),
			mark(d.Usage.WashingMachine),
			fmt.Sprintf("%.2f", d.ApplianceLoad),
			fmt.Sprintf("%.2f", d.TotalLoad),
		})
	}

	table.SetFooter([]string{"Week", "", "", "", "", "", fmt.Sprintf("%.2f", est.Summary.TotalWeekly)})
	table.Render()
}

// Summary writes the headline figures: totals, base load, costs and extremes.
func Summary(w io.Writer, est models.Estimate, currency string) {
	s := est.Summary
	peak := consumption.Peak(s)
	low := consumption.Lowest(s)

	fmt.Fprintf(w, "Total Weekly Consumption:  %s\n", KWh(s.TotalWeekly))
	fmt.Fprintf(w, "Average Daily Consumption: %s\n", KWh(s.AverageDaily))
	fmt.Fprintf(w, "Base consumption for %d BHK: %s/day\n", est.Profile.Bedrooms, KWh(s.Days[0].BaseLoad))
	fmt.Fprintf(w, "Peak day:   %s (%s)\n", peak.Day, KWh(peak.TotalLoad))
	fmt.Fprintf(w, "Lowest day: %s (%s)\n", low.Day, KWh(low.TotalLoad))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Electricity Rate:        %s/kWh\n", Money(currency, est.Cost.TariffRate))
	fmt.Fprintf(w, "Estimated Weekly Cost:   %s\n", Money(currency, est.Cost.WeeklyCost))
	fmt.Fprintf(w, "Estimated Monthly Cost:  %s\n", Money(currency, est.Cost.MonthlyCost))
}

// Document is the JSON form of an estimate
type Document struct {
	models.Estimate
	Currency  string                    `json:"currency"`
	Peak      string                    `json:"peak_day"`
	Lowest    string                    `json:"lowest_day"`
	Shares    map[string]float64        `json:"share_percent"`
	Appliance consumption.ApplianceDays `json:"appliance_days"`
}

// NewDocument builds the JSON document for an estimate
func NewDocument(est models.Estimate, currency string) Document {
	shares := make(map[string]float64, models.DaysPerWeek)
	var week models.Week
	for i, d := range est.Summary.Days {
		shares[d.Day.Short()] = consumption.Share(est.Summary, d.Day)
		week[i] = d.Usage
	}

	return Document{
		Estimate:  est,
		Currency:  currency,
		Peak:      consumption.Peak(est.Summary).Day.String(),
		Lowest:    consumption.Lowest(est.Summary).Day.String(),
		Shares:    shares,
		Appliance: consumption.CountApplianceDays(week),
	}
}

// JSON writes the estimate as indented JSON
func JSON(w io.Writer, est models.Estimate, currency string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(est, currency)); err != nil {
		return fmt.Errorf("encoding estimate: %w", err)
	}
	return nil
}
