package cmd

import (
	"fmt"
	"os"

	"github.com/prajeet74/fire-calculator/internal/config"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPlan  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "fire-calculator",
	Short: "FIRE projection calculator",
	Long:  "Project your path to Financial Independence / Early Retirement: expenses, savings growth, and the year your FIRE number is within reach.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "f", "", "Path to plan file (default: config dir plan.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadPlan is the shared plan loading path used by all commands. When
// no plan file exists yet it falls back to the built-in example plan
// so every command stays demoable before setup has run.
func loadPlan() (model.Plan, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Plan{}, cfg, err
	}

	path := config.PlanPath(flagPlan, cfg)
	if !config.PlanExists(path) {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  No plan at %s — using the built-in example plan.\n", path)
			fmt.Fprintf(os.Stderr, "  Run `fire-calculator setup` to create yours.\n")
		}
		return config.DefaultPlan(), cfg, nil
	}

	plan, err := config.LoadPlan(path)
	if err != nil {
		return model.Plan{}, cfg, err
	}
	return plan, cfg, nil
}

// projectPlan validates and projects, reporting validation failures
// with the offending field.
func projectPlan(plan model.Plan) (model.ProjectionResult, error) {
	result, err := engine.Project(plan)
	if err != nil {
		return result, fmt.Errorf("plan rejected: %w", err)
	}
	return result, nil
}
