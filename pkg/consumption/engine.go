// Package consumption estimates household electricity consumption and cost
// from apartment size and daily appliance usage.
//
// All functions are pure: they read only their arguments and never fail.
// Input validation is the caller's job (see internal/input).
package consumption

import (
	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/shopspring/decimal"
)

var weeksPerMonth = decimal.NewFromFloat(WeeksPerMonth)

func baseTenths(bedrooms int) int64 {
	return int64(bedrooms+1) * baseTenthsPerRoom
}

func applianceTenthsFor(usage models.ApplianceUsage) int64 {
	return int64(usage.Count()) * applianceTenths
}

func toKWh(tenths int64) float64 {
	return float64(tenths) / tenthsPerKWh
}

// BaseLoad returns the fixed daily load in kWh for an apartment with the given
// number of bedrooms: (bedrooms + 1) * 1.2.
func BaseLoad(bedrooms int) float64 {
	return toKWh(baseTenths(bedrooms))
}

// ApplianceLoad returns 3 kWh for every appliance used.
func ApplianceLoad(usage models.ApplianceUsage) float64 {
	return toKWh(applianceTenthsFor(usage))
}

// DailyTotal returns BaseLoad plus ApplianceLoad.
func DailyTotal(bedrooms int, usage models.ApplianceUsage) float64 {
	return toKWh(baseTenths(bedrooms) + applianceTenthsFor(usage))
}

// Daily builds the consumption record for a single day.
func Daily(day models.Weekday, bedrooms int, usage models.ApplianceUsage) models.DailyConsumption {
	base := baseTenths(bedrooms)
	appliances := applianceTenthsFor(usage)
	return models.DailyConsumption{
		Day:           day,
		DayName:       day.String(),
		Usage:         usage,
		BaseLoad:      toKWh(base),
		ApplianceLoad: toKWh(appliances),
		TotalLoad:     toKWh(base + appliances),
	}
}

// WeeklySummary computes each day of the week in Monday..Sunday order along
// with the weekly total and the daily average. The average is not rounded.
func WeeklySummary(bedrooms int, week models.Week) models.WeeklySummary {
	var summary models.WeeklySummary
	var total int64

	for i, day := range models.Weekdays() {
		summary.Days[i] = Daily(day, bedrooms, week[i])
		total += baseTenths(bedrooms) + applianceTenthsFor(week[i])
	}

	summary.TotalWeekly = toKWh(total)
	summary.AverageDaily = float64(total) / (tenthsPerKWh * models.DaysPerWeek)
	return summary
}

// Cost prices a weekly consumption at the given tariff. The monthly figure
// is the weekly cost times 4.33.
func Cost(totalWeekly, tariffRate float64) models.CostEstimate {
	weekly := decimal.NewFromFloat(totalWeekly).Mul(decimal.NewFromFloat(tariffRate))
	monthly := weekly.Mul(weeksPerMonth)

	return models.CostEstimate{
		TariffRate:  tariffRate,
		WeeklyCost:  weekly.InexactFloat64(),
		MonthlyCost: monthly.InexactFloat64(),
	}
}

// Estimate runs the weekly summary and the cost calculation once for a set
// of inputs. Renderers should share the returned value rather than
// recomputing.
func Estimate(profile models.ApartmentProfile, week models.Week, tariffRate float64) models.Estimate {
	summary := WeeklySummary(profile.Bedrooms, week)
	return models.Estimate{
		Profile: profile,
		Summary: summary,
		Cost:    Cost(summary.TotalWeekly, tariffRate),
	}
}
