package domain

import (
	"github.com/shopspring/decimal"
)

// PlannerInputs is the user-editable record driving one projection run.
// All *Percent fields are whole percentages (6 means 6%) and are divided
// by 100 before use; the helper methods below return the fractional rates.
// The engine treats a PlannerInputs as a read-only snapshot.
type PlannerInputs struct {
	CurrentAge int `yaml:"currentAge" json:"current_age"`
	EndAge     int `yaml:"endAge" json:"end_age"`

	StartingCareerHours   decimal.Decimal `yaml:"startingCareerHours" json:"starting_career_hours"`
	AnnualHours           decimal.Decimal `yaml:"annualHours" json:"annual_hours"`
	StartingProfitSharing decimal.Decimal `yaml:"startingProfitSharing" json:"starting_profit_sharing"`

	// AnnualRaisePercent is informational for display layers; wage raise
	// compounding is driven by RateTables.AnnualRaiseRate, never this field.
	AnnualRaisePercent   decimal.Decimal `yaml:"annualRaisePercent" json:"annual_raise_percent"`
	ProfitSharingPercent decimal.Decimal `yaml:"profitSharingPercent" json:"profit_sharing_percent"`
	OtherIncomeAnnual    decimal.Decimal `yaml:"otherIncomeAnnual" json:"other_income_annual"`
	PartnerIncomeMonthly decimal.Decimal `yaml:"partnerIncomeMonthly" json:"partner_income_monthly"`
	TaxRatePercent       decimal.Decimal `yaml:"taxRatePercent" json:"tax_rate_percent"`

	CurrentExpensesAnnual   decimal.Decimal `yaml:"currentExpensesAnnual" json:"current_expenses_annual"`
	ExpenseInflationPercent decimal.Decimal `yaml:"expenseInflationPercent" json:"expense_inflation_percent"`

	RetirementBalance decimal.Decimal `yaml:"retirementBalance" json:"retirement_balance"`
	TaxableBalance    decimal.Decimal `yaml:"taxableBalance" json:"taxable_balance"`
	CashBalance       decimal.Decimal `yaml:"cashBalance" json:"cash_balance"`

	InvestmentReturnPercent decimal.Decimal `yaml:"investmentReturnPercent" json:"investment_return_percent"`
	CashReturnPercent       decimal.Decimal `yaml:"cashReturnPercent" json:"cash_return_percent"`
}

var hundred = decimal.NewFromInt(100)

// ProjectionYears returns the number of simulated years (inclusive bounds).
func (pi *PlannerInputs) ProjectionYears() int {
	return pi.EndAge - pi.CurrentAge + 1
}

// TaxRate returns the fractional tax rate.
func (pi *PlannerInputs) TaxRate() decimal.Decimal {
	return pi.TaxRatePercent.Div(hundred)
}

// ProfitSharingRate returns the fractional profit-sharing rate.
func (pi *PlannerInputs) ProfitSharingRate() decimal.Decimal {
	return pi.ProfitSharingPercent.Div(hundred)
}

// ExpenseInflationRate returns the fractional expense inflation rate.
func (pi *PlannerInputs) ExpenseInflationRate() decimal.Decimal {
	return pi.ExpenseInflationPercent.Div(hundred)
}

// InvestmentReturnRate returns the fractional return applied to the taxable
// and retirement balances.
func (pi *PlannerInputs) InvestmentReturnRate() decimal.Decimal {
	return pi.InvestmentReturnPercent.Div(hundred)
}

// CashReturnRate returns the fractional return applied to the cash balance.
func (pi *PlannerInputs) CashReturnRate() decimal.Decimal {
	return pi.CashReturnPercent.Div(hundred)
}

// PartnerAnnualIncome returns the partner's annualized income.
func (pi *PlannerInputs) PartnerAnnualIncome() decimal.Decimal {
	return pi.PartnerIncomeMonthly.Mul(decimal.NewFromInt(12))
}
