package calculation

import (
	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// slope applied to the 300% tier rate for incomes above 300% FPL; this is a
// fixed constant of the subsidy formula, not table-driven.
var acaRateReductionPer100Pct = decimal.NewFromFloat(0.019)

// BenefitCalculator holds the pure benefit formulas: ACA subsidy,
// unemployment benefits, and PTO payout.
type BenefitCalculator struct {
	ACA          domain.ACARules
	Unemployment domain.UnemploymentRules
	PTO          domain.PTORules
}

// NewBenefitCalculator creates a benefit calculator from validated rate tables.
func NewBenefitCalculator(rates *domain.RateTables) *BenefitCalculator {
	return &BenefitCalculator{
		ACA:          rates.ACA,
		Unemployment: rates.Unemployment,
		PTO:          rates.PTO,
	}
}

// ACASubsidy computes the annual premium subsidy for the given income,
// which by convention is the prior simulated year's after-tax income.
// Incomes outside the [minimum, maximum] FPL-percent window (inclusive
// bounds) are ineligible. The applicable contribution rate comes from the
// tier table up to 300% FPL; above that the 300% rate is reduced linearly.
func (bc *BenefitCalculator) ACASubsidy(income decimal.Decimal) decimal.Decimal {
	pctFPL := income.Div(bc.ACA.FederalPovertyLevel).Mul(hundred)
	if pctFPL.LessThan(bc.ACA.IncomeThresholds.MinimumPercent) ||
		pctFPL.GreaterThan(bc.ACA.IncomeThresholds.MaximumPercent) {
		return decimal.Zero
	}

	var applicableRate decimal.Decimal
	switch {
	case pctFPL.LessThanOrEqual(decimal.NewFromInt(150)):
		applicableRate = bc.ACA.SubsidyRates[150]
	case pctFPL.LessThanOrEqual(decimal.NewFromInt(200)):
		applicableRate = bc.ACA.SubsidyRates[200]
	case pctFPL.LessThanOrEqual(decimal.NewFromInt(250)):
		applicableRate = bc.ACA.SubsidyRates[250]
	case pctFPL.LessThanOrEqual(decimal.NewFromInt(300)):
		applicableRate = bc.ACA.SubsidyRates[300]
	default:
		over := pctFPL.Sub(decimal.NewFromInt(300)).Div(hundred)
		applicableRate = bc.ACA.SubsidyRates[300].Sub(acaRateReductionPer100Pct.Mul(over))
	}

	subsidy := bc.ACA.BenchmarkPremiumMonthly.Mul(decimal.NewFromInt(12)).Sub(income.Mul(applicableRate))
	if subsidy.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return subsidy
}

// UnemploymentBenefits computes the total annual benefit from the current
// and prior year's seasonal earnings. Quarterly earnings are approximated
// as one quarter of annual earnings rather than tracked per quarter.
func (bc *BenefitCalculator) UnemploymentBenefits(currentYearEarnings, priorYearEarnings decimal.Decimal) decimal.Decimal {
	u := bc.Unemployment
	four := decimal.NewFromInt(4)

	basePeriod := currentYearEarnings.Add(priorYearEarnings)
	highestQuarter := decimal.Max(currentYearEarnings.Div(four), priorYearEarnings.Div(four))

	// Eligibility: enough base-period earnings, spread across both years.
	if basePeriod.LessThan(u.MinimumEarnings) {
		return decimal.Zero
	}
	if basePeriod.LessThan(highestQuarter.Mul(u.QuarterMultiplier)) {
		return decimal.Zero
	}

	weekly := highestQuarter.Div(u.WeeksPerQuarter).Sub(u.WeeklyBenefitDeduction).Round(0)
	if weekly.GreaterThan(u.MaxWeeklyBenefit) {
		weekly = u.MaxWeeklyBenefit
	}
	if weekly.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	duration := basePeriod.Mul(u.DurationMultiplier).Div(weekly).Floor()
	minWeeks := decimal.NewFromInt(int64(u.MinDurationWeeks))
	maxWeeks := decimal.NewFromInt(int64(u.MaxDurationWeeks))
	if duration.LessThan(minWeeks) {
		duration = minWeeks
	}
	if duration.GreaterThan(maxWeeks) {
		duration = maxWeeks
	}

	return weekly.Mul(duration)
}

// PTOPayout values the year's accrued PTO at the given hourly rate. Accrued
// PTO hours are whole numbers; partial accrual is dropped.
func (bc *BenefitCalculator) PTOPayout(annualHours, hourlyRate decimal.Decimal) decimal.Decimal {
	accruedHours := annualHours.Div(bc.PTO.HoursPerPTOHour).Floor()
	return accruedHours.Mul(hourlyRate)
}
