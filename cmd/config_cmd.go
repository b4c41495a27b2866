package cmd

import (
	"fmt"

	"github.com/prajeet74/fire-calculator/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration and file locations",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	planPath := config.PlanPath(flagPlan, cfg)

	fmt.Println()
	fmt.Printf("  Config file:   %s\n", config.ConfigPath())
	fmt.Printf("  Plan file:     %s", planPath)
	if !config.PlanExists(planPath) {
		fmt.Print("  (missing — run `fire-calculator setup`)")
	}
	fmt.Println()
	fmt.Printf("  Scenario db:   %s\n", config.ScenarioDBPath())
	fmt.Println()
	fmt.Printf("  Theme:         %s\n", cfg.Appearance.Theme)
	fmt.Printf("  Currency:      %s\n", cfg.General.CurrencySymbol)
	fmt.Println()

	return nil
}
