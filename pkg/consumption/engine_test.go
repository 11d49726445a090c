package consumption

import (
	"fmt"
	"testing"

	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestBaseLoad(t *testing.T) {
	for bedrooms := 0; bedrooms <= 10; bedrooms++ {
		want := float64(bedrooms+1)*0.4 + float64(bedrooms+1)*0.8
		assert.InDelta(t, want, BaseLoad(bedrooms), tolerance, "bedrooms=%d", bedrooms)
		assert.InDelta(t, float64(bedrooms+1)*1.2, BaseLoad(bedrooms), tolerance, "bedrooms=%d", bedrooms)
	}
}

func TestBaseLoadTwoBedrooms(t *testing.T) {
	assert.Equal(t, 3.6, BaseLoad(2))
}

func TestApplianceLoadAllCombinations(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		usage := models.ApplianceUsage{
			AirConditioner: mask&1 != 0,
			Refrigerator:   mask&2 != 0,
			WashingMachine: mask&4 != 0,
		}
		on := 0
		for b := mask; b > 0; b >>= 1 {
			on += b & 1
		}

		t.Run(fmt.Sprintf("mask=%03b", mask), func(t *testing.T) {
			assert.Equal(t, float64(3*on), ApplianceLoad(usage))
		})
	}
}

func TestApplianceLoadExtremes(t *testing.T) {
	assert.Equal(t, 0.0, ApplianceLoad(models.ApplianceUsage{}))
	assert.Equal(t, 9.0, ApplianceLoad(models.ApplianceUsage{
		AirConditioner: true,
		Refrigerator:   true,
		WashingMachine: true,
	}))
}

func TestDailyTotal(t *testing.T) {
	usage := models.ApplianceUsage{AirConditioner: true, Refrigerator: true}
	assert.InDelta(t, BaseLoad(2)+ApplianceLoad(usage), DailyTotal(2, usage), tolerance)
	assert.Equal(t, 9.6, DailyTotal(2, usage))
}

func TestDaily(t *testing.T) {
	usage := models.ApplianceUsage{WashingMachine: true}
	d := Daily(models.Friday, 1, usage)

	assert.Equal(t, models.Friday, d.Day)
	assert.Equal(t, "Friday", d.DayName)
	assert.Equal(t, usage, d.Usage)
	assert.Equal(t, 2.4, d.BaseLoad)
	assert.Equal(t, 3.0, d.ApplianceLoad)
	assert.Equal(t, 5.4, d.TotalLoad)
}

func TestWeeklySummaryUniformWeek(t *testing.T) {
	usages := []models.ApplianceUsage{
		{},
		{AirConditioner: true},
		{Refrigerator: true, WashingMachine: true},
		{AirConditioner: true, Refrigerator: true, WashingMachine: true},
	}

	for bedrooms := 1; bedrooms <= 10; bedrooms++ {
		for _, usage := range usages {
			summary := WeeklySummary(bedrooms, models.UniformWeek(usage))
			daily := DailyTotal(bedrooms, usage)

			assert.InDelta(t, 7*daily, summary.TotalWeekly, tolerance)
			assert.Equal(t, daily, summary.AverageDaily, "bedrooms=%d usage=%+v", bedrooms, usage)
		}
	}
}

func TestWeeklySummaryAllOff(t *testing.T) {
	summary := WeeklySummary(2, models.Week{})

	for i, d := range summary.Days {
		assert.Equal(t, models.Weekday(i), d.Day)
		assert.Equal(t, 3.6, d.BaseLoad)
		assert.Equal(t, 0.0, d.ApplianceLoad)
		assert.Equal(t, 3.6, d.TotalLoad)
	}
	assert.Equal(t, 25.2, summary.TotalWeekly)
	assert.Equal(t, 3.6, summary.AverageDaily)
}

func TestWeeklySummaryMondayOnly(t *testing.T) {
	var week models.Week
	week[models.Monday] = models.ApplianceUsage{AirConditioner: true, Refrigerator: true}

	summary := WeeklySummary(2, week)

	assert.Equal(t, 9.6, summary.Days[models.Monday].TotalLoad)
	for _, d := range summary.Days[1:] {
		assert.Equal(t, 3.6, d.TotalLoad, d.DayName)
	}
	assert.Equal(t, 31.2, summary.TotalWeekly)
	assert.InDelta(t, 31.2/7, summary.AverageDaily, tolerance)
}

func TestWeeklySummaryPreservesOrder(t *testing.T) {
	var week models.Week
	for i := range week {
		// a distinct pattern per day
		week[i] = models.ApplianceUsage{
			AirConditioner: i&1 != 0,
			Refrigerator:   i&2 != 0,
			WashingMachine: i&4 != 0,
		}
	}

	summary := WeeklySummary(3, week)
	for i, d := range summary.Days {
		assert.Equal(t, models.Weekdays()[i], d.Day)
		assert.Equal(t, week[i], d.Usage)
		assert.Equal(t, DailyTotal(3, week[i]), d.TotalLoad)
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name        string
		totalWeekly float64
		rate        float64
		weekly      float64
		monthly     float64
	}{
		{"zero consumption", 0, 5.0, 0, 0},
		{"zero rate", 31.2, 0, 0, 0},
		{"monday only", 31.2, 5.0, 156.0, 675.48},
		{"all off", 25.2, 5.0, 126.0, 545.58},
		{"fractional rate", 25.2, 7.5, 189.0, 818.37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(tt.totalWeekly, tt.rate)
			assert.Equal(t, tt.rate, got.TariffRate)
			assert.InDelta(t, tt.weekly, got.WeeklyCost, tolerance)
			assert.InDelta(t, tt.monthly, got.MonthlyCost, tolerance)
		})
	}
}

func TestCostZeroIsExact(t *testing.T) {
	got := Cost(0, 5.0)
	assert.Equal(t, 0.0, got.WeeklyCost)
	assert.Equal(t, 0.0, got.MonthlyCost)
}

func TestEstimateMondayScenario(t *testing.T) {
	var week models.Week
	week[models.Monday] = models.ApplianceUsage{AirConditioner: true, Refrigerator: true}

	est := Estimate(models.ApartmentProfile{Bedrooms: 2}, week, 5.0)

	assert.Equal(t, 2, est.Profile.Bedrooms)
	assert.Equal(t, 9.6, est.Summary.Days[models.Monday].TotalLoad)
	assert.Equal(t, 31.2, est.Summary.TotalWeekly)
	assert.InDelta(t, 156.0, est.Cost.WeeklyCost, tolerance)
	assert.InDelta(t, 675.48, est.Cost.MonthlyCost, tolerance)
}

func TestEstimateIsDeterministic(t *testing.T) {
	var week models.Week
	week[models.Tuesday] = models.ApplianceUsage{WashingMachine: true}
	week[models.Saturday] = models.ApplianceUsage{AirConditioner: true, Refrigerator: true, WashingMachine: true}
	profile := models.ApartmentProfile{Bedrooms: 4}

	first := Estimate(profile, week, 6.25)
	second := Estimate(profile, week, 6.25)
	assert.Equal(t, first, second)

	assert.Equal(t, BaseLoad(4), BaseLoad(4))
	assert.Equal(t, WeeklySummary(4, week), WeeklySummary(4, week))
	assert.Equal(t, Cost(12.3, 4.56), Cost(12.3, 4.56))
}
