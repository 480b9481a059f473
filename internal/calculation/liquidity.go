package calculation

import (
	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// LiquidityState tracks which account currently absorbs shortfalls.
// Transitions are one-directional and sticky: once a bucket is depleted it
// never refills, even if a later year runs a surplus.
type LiquidityState int

const (
	// CashActive: shortfalls draw on cash; surpluses accumulate in cash.
	CashActive LiquidityState = iota
	// CashDepletedTaxableActive: cash is gone, shortfalls draw on taxable.
	CashDepletedTaxableActive
	// BothDepleted: terminal; no bucket absorbs anything further.
	BothDepleted
)

func (s LiquidityState) String() string {
	switch s {
	case CashActive:
		return "cash-active"
	case CashDepletedTaxableActive:
		return "cash-depleted"
	case BothDepleted:
		return "both-depleted"
	default:
		return "unknown"
	}
}

// LiquidityEngine applies each year's shortfall or surplus against the
// three account balances in waterfall order: cash first, then taxable,
// with retirement unaffected by shortfalls.
type LiquidityEngine struct {
	Cash       decimal.Decimal
	Taxable    decimal.Decimal
	Retirement decimal.Decimal
	State      LiquidityState

	cashGrowth       decimal.Decimal // 1 + cash return rate
	investmentGrowth decimal.Decimal // 1 + investment return rate
}

// NewLiquidityEngine seeds the engine with the starting balances and
// return rates from the planner inputs.
func NewLiquidityEngine(inputs *domain.PlannerInputs) *LiquidityEngine {
	one := decimal.NewFromInt(1)
	return &LiquidityEngine{
		Cash:             inputs.CashBalance,
		Taxable:          inputs.TaxableBalance,
		Retirement:       inputs.RetirementBalance,
		State:            CashActive,
		cashGrowth:       one.Add(inputs.CashReturnRate()),
		investmentGrowth: one.Add(inputs.InvestmentReturnRate()),
	}
}

// ApplyYear advances all three balances by one year: growth first, then the
// shortfall draw on the active bucket, then the retirement contribution.
//
// Two deliberate quirks of the waterfall are preserved from the original
// engine: when cash cannot fully cover a shortfall, the uncovered remainder
// is not forwarded to taxable within the same year; and once cash is
// depleted, surplus years are not banked anywhere.
func (le *LiquidityEngine) ApplyYear(shortfall, retirementContribution decimal.Decimal) {
	le.Cash = le.Cash.Mul(le.cashGrowth)
	// Taxable grows every year regardless of state; growth of a depleted
	// (zero) balance is a no-op.
	le.Taxable = le.Taxable.Mul(le.investmentGrowth)

	switch le.State {
	case CashActive:
		if shortfall.GreaterThan(decimal.Zero) {
			if le.Cash.GreaterThanOrEqual(shortfall) {
				le.Cash = le.Cash.Sub(shortfall)
			} else {
				le.Cash = decimal.Zero
				le.State = CashDepletedTaxableActive
			}
		} else {
			le.Cash = le.Cash.Sub(shortfall)
		}
	case CashDepletedTaxableActive:
		if shortfall.GreaterThan(decimal.Zero) {
			if le.Taxable.GreaterThanOrEqual(shortfall) {
				le.Taxable = le.Taxable.Sub(shortfall)
			} else {
				le.Taxable = decimal.Zero
				le.State = BothDepleted
			}
		}
	case BothDepleted:
		// Terminal; nothing absorbs shortfalls or surpluses.
	}

	le.Retirement = le.Retirement.Mul(le.investmentGrowth).Add(retirementContribution)
}

// NetWorth returns the combined ending balance of all three accounts.
func (le *LiquidityEngine) NetWorth() decimal.Decimal {
	return le.Cash.Add(le.Taxable).Add(le.Retirement)
}
