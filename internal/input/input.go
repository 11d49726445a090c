// Package input turns raw command line values into calculator inputs and
// rejects values the consumption engine is not defined for.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jgoulah/elecalc/pkg/models"
)

// Accepted bedroom range
const (
	MinBedrooms = 1
	MaxBedrooms = 10
)

// ErrInvalidInput is wrapped by every validation and parse failure
var ErrInvalidInput = errors.New("invalid input")

var dayAliases = map[string]models.Weekday{
	"mon": models.Monday, "monday": models.Monday,
	"tue": models.Tuesday, "tues": models.Tuesday, "tuesday": models.Tuesday,
	"wed": models.Wednesday, "wednesday": models.Wednesday,
	"thu": models.Thursday, "thur": models.Thursday, "thurs": models.Thursday, "thursday": models.Thursday,
	"fri": models.Friday, "friday": models.Friday,
	"sat": models.Saturday, "saturday": models.Saturday,
	"sun": models.Sunday, "sunday": models.Sunday,
}

type appliance int

const (
	airConditioner appliance = iota
	refrigerator
	washingMachine
)

var applianceAliases = map[string]appliance{
	"ac":              airConditioner,
	"aircon":          airConditioner,
	"air-conditioner": airConditioner,
	"air_conditioner": airConditioner,
	"fridge":          refrigerator,
	"refrigerator":    refrigerator,
	"washer":          washingMachine,
	"washing":         washingMachine,
	"washing-machine": washingMachine,
	"washing_machine": washingMachine,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ParseDay accepts a day name, its abbreviation, or its position 1-7 (Monday is 1).
func ParseDay(s string) (models.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if day, ok := dayAliases[key]; ok {
		return day, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= models.DaysPerWeek {
		return models.Weekday(n - 1), nil
	}
	return 0, invalid("unknown day %q", s)
}

// ParseAppliances parses a comma separated appliance list such as "ac,fridge".
// The words "all" and "none" select every appliance or no appliance.
func ParseAppliances(s string) (models.ApplianceUsage, error) {
	var usage models.ApplianceUsage

	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return usage, nil
	case "all":
		return models.ApplianceUsage{AirConditioner: true, Refrigerator: true, WashingMachine: true}, nil
	}

	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		a, ok := applianceAliases[name]
		if !ok {
			return models.ApplianceUsage{}, invalid("unknown appliance %q (use ac, fridge, washer)", name)
		}
		switch a {
		case airConditioner:
			usage.AirConditioner = true
		case refrigerator:
			usage.Refrigerator = true
		case washingMachine:
			usage.WashingMachine = true
		}
	}

	return usage, nil
}

// ParseWeek starts every day from allDays and then applies each "day=appliances"
// override in order. A later override for the same day replaces the earlier one.
func ParseWeek(allDays string, overrides []string) (models.Week, error) {
	base, err := ParseAppliances(allDays)
	if err != nil {
		return models.Week{}, err
	}
	return ApplyDays(models.UniformWeek(base), overrides)
}

// ApplyDays returns a copy of week with each "day=appliances" override applied.
func ApplyDays(week models.Week, overrides []string) (models.Week, error) {
	for _, o := range overrides {
		dayStr, list, ok := strings.Cut(o, "=")
		if !ok {
			return models.Week{}, invalid("day override %q must look like mon=ac,fridge", o)
		}
		day, err := ParseDay(dayStr)
		if err != nil {
			return models.Week{}, err
		}
		usage, err := ParseAppliances(list)
		if err != nil {
			return models.Week{}, fmt.Errorf("%s: %w", day, err)
		}
		week[day] = usage
	}
	return week, nil
}

// FromSlice converts an ordered Monday..Sunday slice into a Week.
func FromSlice(days []models.ApplianceUsage) (models.Week, error) {
	if len(days) != models.DaysPerWeek {
		return models.Week{}, invalid("expected %d days of usage, got %d", models.DaysPerWeek, len(days))
	}
	var week models.Week
	copy(week[:], days)
	return week, nil
}

// Validate checks the bedroom count and the tariff rate.
func Validate(bedrooms int, tariffRate float64) error {
	if bedrooms < MinBedrooms || bedrooms > MaxBedrooms {
		return invalid("bedrooms must be between %d and %d, got %d", MinBedrooms, MaxBedrooms, bedrooms)
	}
	if math.IsNaN(tariffRate) || math.IsInf(tariffRate, 0) {
		return invalid("tariff rate must be a finite number")
	}
	if tariffRate < 0 {
		return invalid("tariff rate must not be negative, got %g", tariffRate)
	}
	return nil
}

// FormatAppliances is the inverse of ParseAppliances.
func FormatAppliances(u models.ApplianceUsage) string {
	var parts []string
	if u.AirConditioner {
		parts = append(parts, "ac")
	}
	if u.Refrigerator {
		parts = append(parts, "fridge")
	}
	if u.WashingMachine {
		parts = append(parts, "washer")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
