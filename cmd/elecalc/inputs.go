package main

import (
	"context"
	"fmt"

	"github.com/jgoulah/elecalc/internal/config"
	"github.com/jgoulah/elecalc/internal/input"
	"github.com/jgoulah/elecalc/internal/logger"
	"github.com/jgoulah/elecalc/pkg/consumption"
	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/spf13/cobra"
)

// inputFlags are the calculator inputs shared by estimate, publish and scenario save
type inputFlags struct {
	bedrooms int
	rate     float64
	allDays  string
	days     []string
	scenario string
}

// calcInputs is a fully validated set of engine inputs
type calcInputs struct {
	profile models.ApartmentProfile
	week    models.Week
	rate    float64
}

func (in calcInputs) estimate() models.Estimate {
	return consumption.Estimate(in.profile, in.week, in.rate)
}

func addInputFlags(cmd *cobra.Command, f *inputFlags, withScenario bool) {
	cmd.Flags().IntVarP(&f.bedrooms, "bedrooms", "b", config.DefaultBedrooms, fmt.Sprintf("number of bedrooms (BHK), %d-%d", input.MinBedrooms, input.MaxBedrooms))
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", config.DefaultTariffRate, "electricity rate per kWh")
	cmd.Flags().StringVar(&f.allDays, "all-days", "", "appliances used every day (e.g. fridge or ac,fridge)")
	cmd.Flags().StringArrayVarP(&f.days, "day", "d", nil, "appliances for one day, repeatable (e.g. mon=ac,fridge or sun=none)")
	if withScenario {
		cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "start from a saved scenario")
	}
}

// resolve builds the engine inputs. Precedence, lowest first: config defaults,
// saved scenario, explicit flags.
func (f *inputFlags) resolve(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (calcInputs, error) {
	in := calcInputs{
		profile: models.ApartmentProfile{Bedrooms: cfg.GetBedrooms()},
		rate:    cfg.GetTariffRate(),
	}

	if f.scenario != "" {
		db, err := openDB()
		if err != nil {
			return calcInputs{}, fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		s, err := db.GetScenario(ctx, f.scenario)
		if err != nil {
			return calcInputs{}, err
		}
		logger.Debug("using scenario", "name", s.Name, "id", s.ID)
		in.profile.Bedrooms = s.Bedrooms
		in.rate = s.TariffRate
		in.week = s.Week
	}

	if cmd.Flags().Changed("bedrooms") {
		in.profile.Bedrooms = f.bedrooms
	}
	if cmd.Flags().Changed("rate") {
		in.rate = f.rate
	}
	if cmd.Flags().Changed("all-days") {
		usage, err := input.ParseAppliances(f.allDays)
		if err != nil {
			return calcInputs{}, err
		}
		in.week = models.UniformWeek(usage)
	}

	week, err := input.ApplyDays(in.week, f.days)
	if err != nil {
		return calcInputs{}, err
	}
	in.week = week

	if err := input.Validate(in.profile.Bedrooms, in.rate); err != nil {
		return calcInputs{}, err
	}
	return in, nil
}
