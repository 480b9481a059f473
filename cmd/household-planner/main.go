package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hplan/household-planner/internal/calculation"
	"github.com/hplan/household-planner/internal/config"
	"github.com/hplan/household-planner/internal/domain"
	"github.com/hplan/household-planner/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	inputsFile   string
	ratesFile    string
	outputFormat string
	logLevel     string
	debug        bool
)

// initializeLogger creates a zap logger for the CLI. Debug mode implies
// console encoding at debug level.
func initializeLogger(level string, debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

var rootCmd = &cobra.Command{
	Use:   "household-planner",
	Short: "Project a household's multi-decade financial trajectory",
	Long: `household-planner simulates wages, benefits, subsidies, expenses, and
three account balances one year at a time, from a starting age to an end
age, and reports when pre-retirement cash and taxable accounts run dry.`,
	RunE: runProjection,
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write example inputs and rates YAML files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteExampleFiles("inputs.yaml", "rates.yaml"); err != nil {
			return err
		}
		fmt.Println("Wrote inputs.yaml and rates.yaml")
		return nil
	},
}

func runProjection(cmd *cobra.Command, args []string) error {
	logger, err := initializeLogger(logLevel, debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inputs, err := config.LoadPlannerInputs(inputsFile)
	if err != nil {
		return err
	}

	rates, err := config.LoadRateTablesWithFallback(ratesFile)
	if err != nil {
		return err
	}

	logger.Info("running projection",
		zap.Int("current_age", inputs.CurrentAge),
		zap.Int("end_age", inputs.EndAge),
	)

	engine := calculation.NewEngine()
	engine.SetLogger(calculation.NewZapLogger(logger))

	rows, summary, err := engine.RunProjection(context.Background(), inputs, rates)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	result := &domain.ProjectionResult{Rows: rows, Summary: *summary}
	return output.GenerateReport(result, outputFormat)
}

func main() {
	rootCmd.Flags().StringVarP(&inputsFile, "inputs", "i", "inputs.yaml", "path to planner inputs YAML")
	rootCmd.Flags().StringVarP(&ratesFile, "rates", "r", "rates.yaml", "path to rate tables YAML (built-in defaults if absent)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format: console, csv, detailed-csv, json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable per-year debug output")
	rootCmd.AddCommand(exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
