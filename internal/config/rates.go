package config

import (
	"fmt"
	"os"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRateTables loads and validates the rate tables from a YAML file.
// Validation happens here, at the boundary: the formulas downstream assume
// every lookup key is present and never substitute fallback values.
func LoadRateTables(filename string) (*domain.RateTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}

	var rates domain.RateTables
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse rates YAML: %w", err)
	}

	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("rates validation failed: %w", err)
	}

	return &rates, nil
}

// LoadRateTablesWithFallback tries each path in order and returns the first
// rate tables that loads and validates; with no usable path it falls back
// to the built-in defaults. This replaces the original's shared-singleton
// upgrade chain with an explicit, caller-owned fallback.
func LoadRateTablesWithFallback(paths ...string) (*domain.RateTables, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		rates, err := LoadRateTables(path)
		if err == nil {
			return rates, nil
		}
		if _, statErr := os.Stat(path); statErr == nil {
			// The file exists but is unusable; surface that rather than
			// silently moving on.
			return nil, err
		}
	}
	return DefaultRateTables(), nil
}

// DefaultRateTables returns the built-in rate tables: a 13-step pay scale
// with a sentinel top threshold, 2024-era ACA and unemployment parameters,
// and the standard business constants.
func DefaultRateTables() *domain.RateTables {
	return &domain.RateTables{
		StepThresholds: []decimal.Decimal{
			decimal.NewFromInt(699),
			decimal.NewFromInt(1399),
			decimal.NewFromInt(2399),
			decimal.NewFromInt(3499),
			decimal.NewFromInt(4699),
			decimal.NewFromInt(5999),
			decimal.NewFromInt(7399),
			decimal.NewFromInt(8899),
			decimal.NewFromInt(10499),
			decimal.NewFromInt(12199),
			decimal.NewFromInt(13999),
			decimal.NewFromInt(14699),
			decimal.NewFromInt(99999999), // top step, effectively unbounded
		},
		StepRates: []decimal.Decimal{
			decimal.NewFromFloat(21.00),
			decimal.NewFromFloat(22.25),
			decimal.NewFromFloat(23.50),
			decimal.NewFromFloat(24.75),
			decimal.NewFromFloat(26.00),
			decimal.NewFromFloat(27.30),
			decimal.NewFromFloat(28.65),
			decimal.NewFromFloat(30.05),
			decimal.NewFromFloat(31.50),
			decimal.NewFromFloat(33.00),
			decimal.NewFromFloat(34.60),
			decimal.NewFromFloat(36.25),
			decimal.NewFromFloat(38.00),
		},
		AnnualRaiseRate: decimal.NewFromFloat(0.04),
		ACA: domain.ACARules{
			FederalPovertyLevel:     decimal.NewFromInt(15060),
			BenchmarkPremiumMonthly: decimal.NewFromInt(450),
			SubsidyRates: map[int]decimal.Decimal{
				150: decimal.NewFromFloat(0.0),
				200: decimal.NewFromFloat(0.02),
				250: decimal.NewFromFloat(0.04),
				300: decimal.NewFromFloat(0.06),
			},
			IncomeThresholds: domain.IncomeThresholds{
				MinimumPercent: decimal.NewFromInt(100),
				MaximumPercent: decimal.NewFromInt(400),
			},
		},
		Unemployment: domain.UnemploymentRules{
			MinimumEarnings:        decimal.NewFromInt(2500),
			QuarterMultiplier:      decimal.NewFromFloat(1.25),
			WeeklyBenefitDeduction: decimal.NewFromInt(5),
			WeeksPerQuarter:        decimal.NewFromInt(25),
			MaxWeeklyBenefit:       decimal.NewFromInt(790),
			DurationMultiplier:     decimal.NewFromFloat(0.3),
			MinDurationWeeks:       12,
			MaxDurationWeeks:       26,
		},
		PTO: domain.PTORules{
			HoursPerPTOHour: decimal.NewFromInt(30),
		},
		Retirement: domain.RetirementRules{
			ContributionRate: decimal.NewFromFloat(0.10),
		},
		Calculations: domain.CalculationRules{
			MaxCareerHours:  decimal.NewFromInt(14699),
			DisplayOverflow: "MAX",
		},
	}
}
