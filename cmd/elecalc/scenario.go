package main

import (
	"fmt"

	"github.com/jgoulah/elecalc/internal/input"
	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/spf13/cobra"
)

var scenarioInputs inputFlags

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved input scenarios",
	Long: `Scenarios are named sets of inputs (bedrooms, rate and appliance usage per day)
stored in the local SQLite database. Computed figures are never stored; use
'elecalc estimate --scenario NAME' to calculate them.`,
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save or replace a scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the inputs of a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	addInputFlags(scenarioSaveCmd, &scenarioInputs, false)
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarioSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	in, err := scenarioInputs.resolve(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	s := &models.Scenario{
		Name:       args[0],
		Bedrooms:   in.profile.Bedrooms,
		TariffRate: in.rate,
		Week:       in.week,
	}
	if err := db.SaveScenario(cmd.Context(), s); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved scenario %q (%s)\n", s.Name, s.ID)
	return nil
}

func runScenarioList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	scenarios, err := db.ListScenarios(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing scenarios: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(scenarios) == 0 {
		fmt.Fprintln(out, "No scenarios saved")
		return nil
	}

	fmt.Fprintln(out, "----------------------------------------------------")
	fmt.Fprintf(out, "%-20s  %8s  %8s  %-12s\n", "Name", "BHK", "Rate", "Updated")
	fmt.Fprintln(out, "----------------------------------------------------")
	for _, s := range scenarios {
		fmt.Fprintf(out, "%-20s  %8d  %8.2f  %-12s\n", s.Name, s.Bedrooms, s.TariffRate, s.UpdatedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(out, "----------------------------------------------------")
	fmt.Fprintf(out, "Total: %d scenarios\n", len(scenarios))

	return nil
}

func runScenarioShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	s, err := db.GetScenario(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario: %s\n", s.Name)
	fmt.Fprintf(out, "Bedrooms: %d\n", s.Bedrooms)
	fmt.Fprintf(out, "Rate:     %.2f/kWh\n", s.TariffRate)
	for _, day := range models.Weekdays() {
		fmt.Fprintf(out, "  %-10s %s\n", day, input.FormatAppliances(s.Week[day]))
	}
	return nil
}

func runScenarioDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.DeleteScenario(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted scenario %q\n", args[0])
	return nil
}
