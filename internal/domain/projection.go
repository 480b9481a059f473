package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow is the complete picture of a single simulated year. Rows are
// immutable once appended; re-running a projection produces a fresh sequence.
type ProjectionRow struct {
	Age int `json:"age"`

	// Career progression
	CareerHours        decimal.Decimal `json:"career_hours"`
	CareerHoursDisplay string          `json:"career_hours_display"` // numeric, or the overflow sentinel
	PayStep            int             `json:"pay_step"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`

	// Income sources
	SeasonalWorkEarnings   decimal.Decimal `json:"seasonal_work_earnings"`
	OtherIncome            decimal.Decimal `json:"other_income"`
	ProfitShare            decimal.Decimal `json:"profit_share"`
	PTOPayout              decimal.Decimal `json:"pto_payout"`
	TotalWorkIncome        decimal.Decimal `json:"total_work_income"`
	UnemploymentBenefits   decimal.Decimal `json:"unemployment_benefits"`
	RetirementContribution decimal.Decimal `json:"retirement_contribution"`
	TotalGrossIncome       decimal.Decimal `json:"total_gross_income"`
	AfterTaxIncome         decimal.Decimal `json:"after_tax_income"`
	ACASubsidy             decimal.Decimal `json:"aca_subsidy"`
	PartnerAnnualIncome    decimal.Decimal `json:"partner_annual_income"`

	// Expenses and balance effects
	AnnualExpenses decimal.Decimal `json:"annual_expenses"`
	// Shortfall is positive for a deficit, negative for a surplus.
	Shortfall        decimal.Decimal `json:"shortfall"`
	EndingCash       decimal.Decimal `json:"ending_cash"`
	EndingTaxable    decimal.Decimal `json:"ending_taxable"`
	EndingRetirement decimal.Decimal `json:"ending_retirement"`
	TotalNetWorth    decimal.Decimal `json:"total_net_worth"`
}

// TotalHouseholdIncome returns the income figure the shortfall is measured
// against: after-tax income plus partner income plus the ACA subsidy.
func (pr *ProjectionRow) TotalHouseholdIncome() decimal.Decimal {
	return pr.AfterTaxIncome.Add(pr.PartnerAnnualIncome).Add(pr.ACASubsidy)
}

// IsDeficitYear reports whether expenses exceeded household income.
func (pr *ProjectionRow) IsDeficitYear() bool {
	return pr.Shortfall.GreaterThan(decimal.Zero)
}

// ProjectionSummary is derived once from a completed row sequence.
type ProjectionSummary struct {
	FirstHourlyRate   decimal.Decimal `json:"first_hourly_rate"`
	FinalHourlyRate   decimal.Decimal `json:"final_hourly_rate"`
	WageGrowthPercent decimal.Decimal `json:"wage_growth_percent"`

	// CashDepletedAge and TaxableDepletedAge are nil when the balance never
	// reached zero during the projection.
	CashDepletedAge    *int `json:"cash_depleted_age,omitempty"`
	TaxableDepletedAge *int `json:"taxable_depleted_age,omitempty"`

	FinalAge       int             `json:"final_age"`
	FinalNetWorth  decimal.Decimal `json:"final_net_worth"`
	FinalShortfall decimal.Decimal `json:"final_shortfall"`
}

// CashLasts reports whether cash never ran out during the projection.
func (ps *ProjectionSummary) CashLasts() bool { return ps.CashDepletedAge == nil }

// TaxableLasts reports whether the taxable account never ran out.
func (ps *ProjectionSummary) TaxableLasts() bool { return ps.TaxableDepletedAge == nil }

// ProjectionResult pairs the ordered yearly rows with their summary for
// consumption by output formatters.
type ProjectionResult struct {
	Rows    []ProjectionRow   `json:"rows"`
	Summary ProjectionSummary `json:"summary"`
}
