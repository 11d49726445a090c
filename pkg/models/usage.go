package models

import "time"

// DaysPerWeek is the number of entries in a Week
const DaysPerWeek = 7

// Weekday identifies a day of the week, Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	dayNames  = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	dayShorts = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// Weekdays returns Monday through Sunday in display order
func Weekdays() [DaysPerWeek]Weekday {
	return [DaysPerWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// String returns the full day name (e.g. "Monday")
func (d Weekday) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return dayNames[d]
}

// Short returns the three letter label (e.g. "Mon")
func (d Weekday) Short() string {
	if !d.Valid() {
		return "???"
	}
	return dayShorts[d]
}

// Valid reports whether d is one of the seven days
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ApartmentProfile describes the household size
type ApartmentProfile struct {
	Bedrooms int `json:"bedrooms" yaml:"bedrooms"`
}

// ApplianceUsage records which appliances ran on a single day
type ApplianceUsage struct {
	AirConditioner bool `json:"air_conditioner"`
	Refrigerator   bool `json:"refrigerator"`
	WashingMachine bool `json:"washing_machine"`
}

// Count returns how many appliances are marked as used
func (u ApplianceUsage) Count() int {
	n := 0
	for _, used := range []bool{u.AirConditioner, u.Refrigerator, u.WashingMachine} {
		if used {
			n++
		}
	}
	return n
}

// Week holds one ApplianceUsage per day, indexed by Weekday
type Week [DaysPerWeek]ApplianceUsage

// UniformWeek returns a week where every day has the same usage
func UniformWeek(u ApplianceUsage) Week {
	var w Week
	for i := range w {
		w[i] = u
	}
	return w
}

// DailyConsumption is the derived load for one day (kWh)
type DailyConsumption struct {
	Day           Weekday        `json:"-"`
	DayName       string         `json:"day"`
	Usage         ApplianceUsage `json:"usage"`
	BaseLoad      float64        `json:"base_kwh"`
	ApplianceLoad float64        `json:"appliance_kwh"`
	TotalLoad     float64        `json:"total_kwh"`
}

// WeeklySummary aggregates the seven days of a week
type WeeklySummary struct {
	Days         [DaysPerWeek]DailyConsumption `json:"days"`
	TotalWeekly  float64                       `json:"total_weekly_kwh"`
	AverageDaily float64                       `json:"average_daily_kwh"`
}

// CostEstimate converts weekly consumption into currency
type CostEstimate struct {
	TariffRate  float64 `json:"tariff_rate"`
	WeeklyCost  float64 `json:"weekly_cost"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// Estimate is the full result of one recalculation
type Estimate struct {
	Profile ApartmentProfile `json:"profile"`
	Summary WeeklySummary    `json:"summary"`
	Cost    CostEstimate     `json:"cost"`
}

// Scenario is a named, saved set of calculator inputs
type Scenario struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Bedrooms   int       `json:"bedrooms"`
	TariffRate float64   `json:"tariff_rate"`
	Week       Week      `json:"week"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
