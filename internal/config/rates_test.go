package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRatesYAML = `
stepThresholds: [699, 1399, 2099, 2799, 3499, 4199, 4899, 5599, 6299, 6999, 7699, 8399, 9999999]
stepRates: [20.00, 21.50, 23.00, 24.50, 26.00, 27.50, 29.00, 30.50, 32.00, 33.50, 35.00, 36.50, 38.00]
annualRaiseRate: 0.04
aca:
  federalPovertyLevel: 15060
  benchmarkPremiumMonthly: 450
  subsidyRates:
    150: 0.0
    200: 0.02
    250: 0.04
    300: 0.06
  incomeThresholds:
    minimumPercent: 100
    maximumPercent: 400
unemployment:
  minimumEarnings: 2500
  quarterMultiplier: 1.25
  weeklyBenefitDeduction: 5
  weeksPerQuarter: 25
  maxWeeklyBenefit: 790
  durationMultiplier: 0.3
  minDurationWeeks: 12
  maxDurationWeeks: 26
pto:
  hoursPerPTOHour: 30
retirement:
  contributionRate: 0.10
calculations:
  maxCareerHours: 14699
  displayOverflow: MAX
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRateTables(t *testing.T) {
	path := writeTempFile(t, "rates.yaml", testRatesYAML)

	rates, err := LoadRateTables(path)
	require.NoError(t, err)

	assert.Len(t, rates.StepThresholds, domain.NumPaySteps)
	assert.True(t, rates.StepRates[8].Equal(decimal.NewFromFloat(32.00)))
	assert.True(t, rates.AnnualRaiseRate.Equal(decimal.NewFromFloat(0.04)))
	assert.True(t, rates.ACA.SubsidyRates[200].Equal(decimal.NewFromFloat(0.02)))
	assert.Equal(t, 26, rates.Unemployment.MaxDurationWeeks)
	assert.Equal(t, "MAX", rates.Calculations.DisplayOverflow)
}

func TestLoadRateTables_MissingFile(t *testing.T) {
	_, err := LoadRateTables(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRateTables_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RateTables)
	}{
		{
			name:   "missing subsidy tier",
			mutate: func(rt *domain.RateTables) { delete(rt.ACA.SubsidyRates, 300) },
		},
		{
			name:   "non-ascending thresholds",
			mutate: func(rt *domain.RateTables) { rt.StepThresholds[5] = rt.StepThresholds[4] },
		},
		{
			name:   "short step rates",
			mutate: func(rt *domain.RateTables) { rt.StepRates = rt.StepRates[:10] },
		},
		{
			name:   "zero poverty level",
			mutate: func(rt *domain.RateTables) { rt.ACA.FederalPovertyLevel = decimal.Zero },
		},
		{
			name:   "missing overflow sentinel",
			mutate: func(rt *domain.RateTables) { rt.Calculations.DisplayOverflow = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := DefaultRateTables()
			tt.mutate(rates)
			err := rates.Validate()
			require.Error(t, err)
			var confErr *domain.ConfigError
			assert.ErrorAs(t, err, &confErr)
		})
	}
}

func TestLoadRateTablesWithFallback(t *testing.T) {
	t.Run("falls back to defaults when no path exists", func(t *testing.T) {
		rates, err := LoadRateTablesWithFallback(filepath.Join(t.TempDir(), "absent.yaml"), "")
		require.NoError(t, err)
		assert.True(t, rates.AnnualRaiseRate.Equal(DefaultRateTables().AnnualRaiseRate))
	})

	t.Run("prefers an existing valid file", func(t *testing.T) {
		path := writeTempFile(t, "rates.yaml", testRatesYAML)
		rates, err := LoadRateTablesWithFallback(path)
		require.NoError(t, err)
		assert.True(t, rates.ACA.FederalPovertyLevel.Equal(decimal.NewFromInt(15060)))
	})

	t.Run("surfaces errors from an existing broken file", func(t *testing.T) {
		path := writeTempFile(t, "rates.yaml", "stepThresholds: [1]")
		_, err := LoadRateTablesWithFallback(path)
		assert.Error(t, err)
	})
}

func TestDefaultRateTablesAreValid(t *testing.T) {
	assert.NoError(t, DefaultRateTables().Validate())
}
