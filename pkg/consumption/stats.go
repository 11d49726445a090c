package consumption

import "github.com/jgoulah/elecalc/pkg/models"

// ApplianceDays counts on how many days each appliance was used
type ApplianceDays struct {
	AirConditioner int `json:"air_conditioner"`
	Refrigerator   int `json:"refrigerator"`
	WashingMachine int `json:"washing_machine"`
}

// Peak returns the day with the highest total. Ties go to the earlier day.
func Peak(summary models.WeeklySummary) models.DailyConsumption {
	peak := summary.Days[0]
	for _, d := range summary.Days[1:] {
		if d.TotalLoad > peak.TotalLoad {
			peak = d
		}
	}
	return peak
}

// Lowest returns the day with the lowest total. Ties go to the earlier day.
func Lowest(summary models.WeeklySummary) models.DailyConsumption {
	low := summary.Days[0]
	for _, d := range summary.Days[1:] {
		if d.TotalLoad < low.TotalLoad {
			low = d
		}
	}
	return low
}

// Share returns the percentage of the weekly total consumed on day.
func Share(summary models.WeeklySummary, day models.Weekday) float64 {
	if !day.Valid() || summary.TotalWeekly == 0 {
		return 0
	}
	return summary.Days[day].TotalLoad / summary.TotalWeekly * 100
}

// CountApplianceDays tallies appliance usage across the week.
func CountApplianceDays(week models.Week) ApplianceDays {
	var counts ApplianceDays
	for _, u := range week {
		if u.AirConditioner {
			counts.AirConditioner++
		}
		if u.Refrigerator {
			counts.Refrigerator++
		}
		if u.WashingMachine {
			counts.WashingMachine++
		}
	}
	return counts
}
