package calculation

import (
	"context"
	"fmt"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine drives the year-by-year projection loop. An Engine holds no
// per-run state; concurrent RunProjection calls are independent.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunProjection simulates every year from the current age to the end age
// inclusive and returns the ordered yearly rows plus a summary. Inputs and
// rates are read-only; the rows and summary are fresh on every call, so
// identical inputs always produce identical sequences.
func (e *Engine) RunProjection(ctx context.Context, inputs *domain.PlannerInputs, rates *domain.RateTables) ([]domain.ProjectionRow, *domain.ProjectionSummary, error) {
	if inputs.EndAge < inputs.CurrentAge {
		return nil, nil, fmt.Errorf("end age (%d) cannot be before current age (%d)", inputs.EndAge, inputs.CurrentAge)
	}
	if err := rates.Validate(); err != nil {
		return nil, nil, err
	}

	incomeCalc := NewYearlyIncomeCalculator(rates, e.Logger)
	liquidity := NewLiquidityEngine(inputs)

	years := inputs.ProjectionYears()
	rows := make([]domain.ProjectionRow, 0, years)

	priorYearW2 := decimal.Zero
	priorYearAfterTax := decimal.Zero

	for year := 0; year < years; year++ {
		income := incomeCalc.Calculate(inputs, year, priorYearW2, priorYearAfterTax)
		liquidity.ApplyYear(income.Shortfall, income.RetirementContribution)

		rows = append(rows, domain.ProjectionRow{
			Age:                    inputs.CurrentAge + year,
			CareerHours:            income.CareerHours,
			CareerHoursDisplay:     income.CareerHoursDisplay,
			PayStep:                income.PayStep,
			HourlyRate:             income.HourlyRate,
			SeasonalWorkEarnings:   income.SeasonalWorkEarnings,
			OtherIncome:            inputs.OtherIncomeAnnual,
			ProfitShare:            income.ProfitShare,
			PTOPayout:              income.PTOPayout,
			TotalWorkIncome:        income.TotalWorkIncome,
			UnemploymentBenefits:   income.UnemploymentBenefits,
			RetirementContribution: income.RetirementContribution,
			TotalGrossIncome:       income.TotalGrossIncome,
			AfterTaxIncome:         income.AfterTaxIncome,
			ACASubsidy:             income.ACASubsidy,
			PartnerAnnualIncome:    income.PartnerAnnualIncome,
			AnnualExpenses:         income.AnnualExpenses,
			Shortfall:              income.Shortfall,
			EndingCash:             liquidity.Cash,
			EndingTaxable:          liquidity.Taxable,
			EndingRetirement:       liquidity.Retirement,
			TotalNetWorth:          liquidity.NetWorth(),
		})

		priorYearW2 = income.SeasonalWorkEarnings
		priorYearAfterTax = income.AfterTaxIncome
	}

	summary := summarize(rows)
	return rows, summary, nil
}

// summarize derives the projection summary from a completed row sequence.
func summarize(rows []domain.ProjectionRow) *domain.ProjectionSummary {
	first := rows[0]
	last := rows[len(rows)-1]

	summary := &domain.ProjectionSummary{
		FirstHourlyRate: first.HourlyRate,
		FinalHourlyRate: last.HourlyRate,
		FinalAge:        last.Age,
		FinalNetWorth:   last.TotalNetWorth,
		FinalShortfall:  last.Shortfall,
	}
	if !first.HourlyRate.IsZero() {
		summary.WageGrowthPercent = last.HourlyRate.Sub(first.HourlyRate).Div(first.HourlyRate).Mul(hundred)
	}

	for _, row := range rows {
		if summary.CashDepletedAge == nil && row.EndingCash.LessThanOrEqual(decimal.Zero) {
			age := row.Age
			summary.CashDepletedAge = &age
		}
		if summary.TaxableDepletedAge == nil && row.EndingTaxable.LessThanOrEqual(decimal.Zero) {
			age := row.Age
			summary.TaxableDepletedAge = &age
		}
	}

	return summary
}
