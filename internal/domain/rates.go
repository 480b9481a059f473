package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NumPaySteps is the number of rungs on the pay scale.
const NumPaySteps = 13

// ACA subsidy tier keys (percent of the Federal Poverty Level).
var SubsidyTiers = []int{150, 200, 250, 300}

// RateTables holds the pay-scale, government-rate, and business-rule tables
// for a projection run. Loaded once by the configuration layer, validated,
// and shared read-only by reference; the engine never mutates it.
type RateTables struct {
	// StepThresholds are ascending cumulative-hours cutoffs for steps 1..13;
	// the last entry is effectively infinite. Trusted as already sorted.
	StepThresholds []decimal.Decimal `yaml:"stepThresholds" json:"step_thresholds"`
	// StepRates are base hourly rates for steps 1..13.
	StepRates []decimal.Decimal `yaml:"stepRates" json:"step_rates"`
	// AnnualRaiseRate is the fractional compounding raise rate (e.g. 0.04).
	AnnualRaiseRate decimal.Decimal `yaml:"annualRaiseRate" json:"annual_raise_rate"`

	ACA          ACARules          `yaml:"aca" json:"aca"`
	Unemployment UnemploymentRules `yaml:"unemployment" json:"unemployment"`
	PTO          PTORules          `yaml:"pto" json:"pto"`
	Retirement   RetirementRules   `yaml:"retirement" json:"retirement"`
	Calculations CalculationRules  `yaml:"calculations" json:"calculations"`
}

// ACARules holds the subsidy formula parameters.
type ACARules struct {
	FederalPovertyLevel     decimal.Decimal `yaml:"federalPovertyLevel" json:"federal_poverty_level"`
	BenchmarkPremiumMonthly decimal.Decimal `yaml:"benchmarkPremiumMonthly" json:"benchmark_premium_monthly"`
	// SubsidyRates is keyed by FPL-percent tier (150, 200, 250, 300).
	SubsidyRates     map[int]decimal.Decimal `yaml:"subsidyRates" json:"subsidy_rates"`
	IncomeThresholds IncomeThresholds        `yaml:"incomeThresholds" json:"income_thresholds"`
}

// IncomeThresholds bound subsidy eligibility as a percent of FPL.
type IncomeThresholds struct {
	MinimumPercent decimal.Decimal `yaml:"minimumPercent" json:"minimum_percent"`
	MaximumPercent decimal.Decimal `yaml:"maximumPercent" json:"maximum_percent"`
}

// UnemploymentRules holds the unemployment-benefit formula parameters.
type UnemploymentRules struct {
	MinimumEarnings        decimal.Decimal `yaml:"minimumEarnings" json:"minimum_earnings"`
	QuarterMultiplier      decimal.Decimal `yaml:"quarterMultiplier" json:"quarter_multiplier"`
	WeeklyBenefitDeduction decimal.Decimal `yaml:"weeklyBenefitDeduction" json:"weekly_benefit_deduction"`
	WeeksPerQuarter        decimal.Decimal `yaml:"weeksPerQuarter" json:"weeks_per_quarter"`
	MaxWeeklyBenefit       decimal.Decimal `yaml:"maxWeeklyBenefit" json:"max_weekly_benefit"`
	DurationMultiplier     decimal.Decimal `yaml:"durationMultiplier" json:"duration_multiplier"`
	MinDurationWeeks       int             `yaml:"minDurationWeeks" json:"min_duration_weeks"`
	MaxDurationWeeks       int             `yaml:"maxDurationWeeks" json:"max_duration_weeks"`
}

// PTORules holds the PTO accrual ratio.
type PTORules struct {
	// HoursPerPTOHour is the number of worked hours that accrue one PTO hour.
	HoursPerPTOHour decimal.Decimal `yaml:"hoursPerPTOHour" json:"hours_per_pto_hour"`
}

// RetirementRules holds the employer retirement contribution rate.
type RetirementRules struct {
	ContributionRate decimal.Decimal `yaml:"contributionRate" json:"contribution_rate"`
}

// CalculationRules holds business constants for display and capping.
type CalculationRules struct {
	MaxCareerHours decimal.Decimal `yaml:"maxCareerHours" json:"max_career_hours"`
	// DisplayOverflow is the sentinel label shown when cumulative hours
	// exceed MaxCareerHours.
	DisplayOverflow string `yaml:"displayOverflow" json:"display_overflow"`
}

// ConfigError reports a missing or malformed RateTables entry. Formula code
// assumes a validated table, so validation failures surface here, at the
// boundary, rather than as silent substitutions inside the formulas.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rate tables: %s: %s", e.Field, e.Reason)
}

// Validate checks that every lookup the formulas perform will succeed.
func (rt *RateTables) Validate() error {
	if len(rt.StepThresholds) != NumPaySteps {
		return &ConfigError{Field: "stepThresholds", Reason: fmt.Sprintf("expected %d entries, got %d", NumPaySteps, len(rt.StepThresholds))}
	}
	if len(rt.StepRates) != NumPaySteps {
		return &ConfigError{Field: "stepRates", Reason: fmt.Sprintf("expected %d entries, got %d", NumPaySteps, len(rt.StepRates))}
	}
	for i := 1; i < len(rt.StepThresholds); i++ {
		if !rt.StepThresholds[i].GreaterThan(rt.StepThresholds[i-1]) {
			return &ConfigError{Field: "stepThresholds", Reason: fmt.Sprintf("entries must be strictly increasing (index %d)", i)}
		}
	}
	if rt.ACA.FederalPovertyLevel.LessThanOrEqual(decimal.Zero) {
		return &ConfigError{Field: "aca.federalPovertyLevel", Reason: "must be positive"}
	}
	for _, tier := range SubsidyTiers {
		if _, ok := rt.ACA.SubsidyRates[tier]; !ok {
			return &ConfigError{Field: fmt.Sprintf("aca.subsidyRates[%d]", tier), Reason: "tier is required"}
		}
	}
	if rt.ACA.IncomeThresholds.MaximumPercent.LessThanOrEqual(rt.ACA.IncomeThresholds.MinimumPercent) {
		return &ConfigError{Field: "aca.incomeThresholds", Reason: "maximumPercent must exceed minimumPercent"}
	}
	if rt.Unemployment.WeeksPerQuarter.LessThanOrEqual(decimal.Zero) {
		return &ConfigError{Field: "unemployment.weeksPerQuarter", Reason: "must be positive"}
	}
	if rt.Unemployment.MaxDurationWeeks < rt.Unemployment.MinDurationWeeks {
		return &ConfigError{Field: "unemployment.maxDurationWeeks", Reason: "cannot be less than minDurationWeeks"}
	}
	if rt.PTO.HoursPerPTOHour.LessThanOrEqual(decimal.Zero) {
		return &ConfigError{Field: "pto.hoursPerPTOHour", Reason: "must be positive"}
	}
	if rt.Calculations.MaxCareerHours.LessThanOrEqual(decimal.Zero) {
		return &ConfigError{Field: "calculations.maxCareerHours", Reason: "must be positive"}
	}
	if rt.Calculations.DisplayOverflow == "" {
		return &ConfigError{Field: "calculations.displayOverflow", Reason: "sentinel label is required"}
	}
	return nil
}
