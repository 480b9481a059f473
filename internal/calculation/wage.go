package calculation

import (
	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// WageCalculator computes pay step and hourly rate from cumulative credited
// hours and years elapsed since the start of the simulation.
type WageCalculator struct {
	Thresholds []decimal.Decimal
	Rates      []decimal.Decimal
	RaiseRate  decimal.Decimal
}

// NewWageCalculator creates a wage calculator from validated rate tables.
func NewWageCalculator(rates *domain.RateTables) *WageCalculator {
	return &WageCalculator{
		Thresholds: rates.StepThresholds,
		Rates:      rates.StepRates,
		RaiseRate:  rates.AnnualRaiseRate,
	}
}

// DetermineStep returns the pay step for the given cumulative hours: the
// first step whose threshold is >= the hours (inclusive upper bound). Hours
// beyond the highest finite threshold land on the top step. Thresholds are
// trusted as ascending; they are validated at load and never re-sorted here.
func (wc *WageCalculator) DetermineStep(cumulativeHours decimal.Decimal) int {
	for i, threshold := range wc.Thresholds {
		if threshold.GreaterThanOrEqual(cumulativeHours) {
			return i + 1
		}
	}
	return len(wc.Thresholds)
}

// HourlyRate returns the step base rate compounded by the annual raise for
// the given number of years since the simulation's start age. A step
// promotion does not reset raise compounding.
func (wc *WageCalculator) HourlyRate(cumulativeHours decimal.Decimal, yearsFromStart int) decimal.Decimal {
	step := wc.DetermineStep(cumulativeHours)
	base := wc.Rates[step-1]
	raiseFactor := decimal.NewFromInt(1).Add(wc.RaiseRate).Pow(decimal.NewFromInt(int64(yearsFromStart)))
	return base.Mul(raiseFactor)
}
