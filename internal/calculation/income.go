package calculation

import (
	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// YearIncome carries one simulated year's assembled income figures from the
// income calculator to the liquidity engine and the projection row.
type YearIncome struct {
	CareerHours        decimal.Decimal
	CareerHoursDisplay string
	PayStep            int
	HourlyRate         decimal.Decimal

	SeasonalWorkEarnings   decimal.Decimal
	PTOPayout              decimal.Decimal
	UnemploymentBenefits   decimal.Decimal
	ProfitShare            decimal.Decimal
	RetirementContribution decimal.Decimal
	TotalWorkIncome        decimal.Decimal
	TotalGrossIncome       decimal.Decimal
	AfterTaxIncome         decimal.Decimal
	ACASubsidy             decimal.Decimal
	PartnerAnnualIncome    decimal.Decimal
	AnnualExpenses         decimal.Decimal
	Shortfall              decimal.Decimal
}

// YearlyIncomeCalculator assembles one year's gross and after-tax income
// from the wage model, the benefit formulas, and the lagged prior-year
// figures threaded in by the projection loop.
type YearlyIncomeCalculator struct {
	Wage         *WageCalculator
	Benefits     *BenefitCalculator
	Retirement   domain.RetirementRules
	Calculations domain.CalculationRules
	Logger       Logger
}

// NewYearlyIncomeCalculator creates an income calculator from validated
// rate tables.
func NewYearlyIncomeCalculator(rates *domain.RateTables, logger Logger) *YearlyIncomeCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &YearlyIncomeCalculator{
		Wage:         NewWageCalculator(rates),
		Benefits:     NewBenefitCalculator(rates),
		Retirement:   rates.Retirement,
		Calculations: rates.Calculations,
		Logger:       logger,
	}
}

// Calculate assembles the income figures for simulated year index year
// (0-based from the start age). priorYearW2 and priorYearAfterTax are zero
// for year 0; both lag exactly one year thereafter.
func (yic *YearlyIncomeCalculator) Calculate(inputs *domain.PlannerInputs, year int, priorYearW2, priorYearAfterTax decimal.Decimal) YearIncome {
	cumulativeHours := inputs.StartingCareerHours.Add(inputs.AnnualHours.Mul(decimal.NewFromInt(int64(year))))
	hourlyRate := yic.Wage.HourlyRate(cumulativeHours, year)
	seasonalEarnings := hourlyRate.Mul(inputs.AnnualHours)

	ptoPayout := yic.Benefits.PTOPayout(inputs.AnnualHours, hourlyRate)
	unemployment := yic.Benefits.UnemploymentBenefits(seasonalEarnings, priorYearW2)

	// Profit sharing lags prior-year W2 earnings by one year; year 0 uses
	// the caller-supplied override.
	profitShare := inputs.StartingProfitSharing
	if year > 0 {
		profitShare = priorYearW2.Mul(inputs.ProfitSharingRate())
	}
	retirementContribution := profitShare.Mul(yic.Retirement.ContributionRate)

	totalWorkIncome := seasonalEarnings.Add(profitShare).Add(ptoPayout)
	totalGrossIncome := totalWorkIncome.Add(inputs.OtherIncomeAnnual).Add(unemployment)
	afterTaxIncome := totalGrossIncome.Mul(decimal.NewFromInt(1).Sub(inputs.TaxRate()))

	// The subsidy is evaluated against the prior year's after-tax income;
	// the first simulated year has no prior year and always yields zero.
	acaSubsidy := decimal.Zero
	if year > 0 {
		acaSubsidy = yic.Benefits.ACASubsidy(priorYearAfterTax)
	}

	partnerIncome := inputs.PartnerAnnualIncome()

	// Expenses compound from the year-0 baseline, never from the previous
	// year's inflated figure, so rounding cannot drift across years.
	inflationFactor := decimal.NewFromInt(1).Add(inputs.ExpenseInflationRate()).Pow(decimal.NewFromInt(int64(year)))
	annualExpenses := inputs.CurrentExpensesAnnual.Mul(inflationFactor)

	totalHouseholdIncome := afterTaxIncome.Add(partnerIncome).Add(acaSubsidy)
	shortfall := annualExpenses.Sub(totalHouseholdIncome)

	display := cumulativeHours.String()
	if cumulativeHours.GreaterThan(yic.Calculations.MaxCareerHours) {
		display = yic.Calculations.DisplayOverflow
	}

	yic.Logger.Debugf("year %d: step=%d rate=%s work=%s gross=%s afterTax=%s shortfall=%s",
		year, yic.Wage.DetermineStep(cumulativeHours), hourlyRate.StringFixed(2),
		totalWorkIncome.StringFixed(2), totalGrossIncome.StringFixed(2),
		afterTaxIncome.StringFixed(2), shortfall.StringFixed(2))

	return YearIncome{
		CareerHours:            cumulativeHours,
		CareerHoursDisplay:     display,
		PayStep:                yic.Wage.DetermineStep(cumulativeHours),
		HourlyRate:             hourlyRate,
		SeasonalWorkEarnings:   seasonalEarnings,
		PTOPayout:              ptoPayout,
		UnemploymentBenefits:   unemployment,
		ProfitShare:            profitShare,
		RetirementContribution: retirementContribution,
		TotalWorkIncome:        totalWorkIncome,
		TotalGrossIncome:       totalGrossIncome,
		AfterTaxIncome:         afterTaxIncome,
		ACASubsidy:             acaSubsidy,
		PartnerAnnualIncome:    partnerIncome,
		AnnualExpenses:         annualExpenses,
		Shortfall:              shortfall,
	}
}
