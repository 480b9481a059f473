package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRateTables() *RateTables {
	thresholds := make([]decimal.Decimal, NumPaySteps)
	rates := make([]decimal.Decimal, NumPaySteps)
	for i := 0; i < NumPaySteps; i++ {
		thresholds[i] = decimal.NewFromInt(int64(699 + 700*i))
		rates[i] = decimal.NewFromInt(int64(20 + i))
	}
	return &RateTables{
		StepThresholds:  thresholds,
		StepRates:       rates,
		AnnualRaiseRate: decimal.NewFromFloat(0.04),
		ACA: ACARules{
			FederalPovertyLevel:     decimal.NewFromInt(15060),
			BenchmarkPremiumMonthly: decimal.NewFromInt(450),
			SubsidyRates: map[int]decimal.Decimal{
				150: decimal.Zero,
				200: decimal.NewFromFloat(0.02),
				250: decimal.NewFromFloat(0.04),
				300: decimal.NewFromFloat(0.06),
			},
			IncomeThresholds: IncomeThresholds{
				MinimumPercent: decimal.NewFromInt(100),
				MaximumPercent: decimal.NewFromInt(400),
			},
		},
		Unemployment: UnemploymentRules{
			MinimumEarnings:        decimal.NewFromInt(2500),
			QuarterMultiplier:      decimal.NewFromFloat(1.25),
			WeeklyBenefitDeduction: decimal.NewFromInt(5),
			WeeksPerQuarter:        decimal.NewFromInt(25),
			MaxWeeklyBenefit:       decimal.NewFromInt(790),
			DurationMultiplier:     decimal.NewFromFloat(0.3),
			MinDurationWeeks:       12,
			MaxDurationWeeks:       26,
		},
		PTO:        PTORules{HoursPerPTOHour: decimal.NewFromInt(30)},
		Retirement: RetirementRules{ContributionRate: decimal.NewFromFloat(0.10)},
		Calculations: CalculationRules{
			MaxCareerHours:  decimal.NewFromInt(14699),
			DisplayOverflow: "MAX",
		},
	}
}

func TestRateTablesValidate(t *testing.T) {
	assert.NoError(t, validRateTables().Validate())

	tests := []struct {
		name   string
		mutate func(*RateTables)
		field  string
	}{
		{
			name:   "wrong threshold count",
			mutate: func(rt *RateTables) { rt.StepThresholds = rt.StepThresholds[:5] },
			field:  "stepThresholds",
		},
		{
			name:   "duplicate threshold",
			mutate: func(rt *RateTables) { rt.StepThresholds[3] = rt.StepThresholds[2] },
			field:  "stepThresholds",
		},
		{
			name:   "missing 200 tier",
			mutate: func(rt *RateTables) { delete(rt.ACA.SubsidyRates, 200) },
			field:  "aca.subsidyRates[200]",
		},
		{
			name: "inverted income thresholds",
			mutate: func(rt *RateTables) {
				rt.ACA.IncomeThresholds.MaximumPercent = decimal.NewFromInt(50)
			},
			field: "aca.incomeThresholds",
		},
		{
			name:   "zero weeks per quarter",
			mutate: func(rt *RateTables) { rt.Unemployment.WeeksPerQuarter = decimal.Zero },
			field:  "unemployment.weeksPerQuarter",
		},
		{
			name: "inverted duration bounds",
			mutate: func(rt *RateTables) {
				rt.Unemployment.MaxDurationWeeks = rt.Unemployment.MinDurationWeeks - 1
			},
			field: "unemployment.maxDurationWeeks",
		},
		{
			name:   "zero PTO ratio",
			mutate: func(rt *RateTables) { rt.PTO.HoursPerPTOHour = decimal.Zero },
			field:  "pto.hoursPerPTOHour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := validRateTables()
			tt.mutate(rt)
			err := rt.Validate()
			require.Error(t, err)
			var confErr *ConfigError
			require.ErrorAs(t, err, &confErr)
			assert.Equal(t, tt.field, confErr.Field)
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "aca.subsidyRates[250]", Reason: "tier is required"}
	assert.Equal(t, "rate tables: aca.subsidyRates[250]: tier is required", err.Error())
}
