package output

import (
	"bytes"
	"fmt"

	"github.com/hplan/household-planner/internal/domain"
)

// ConsoleFormatter renders a per-year table plus the summary for terminal
// consumption.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HOUSEHOLD PROJECTION")
	fmt.Fprintln(&buf, "====================")
	fmt.Fprintf(&buf, "%-4s %-8s %-4s %-9s %-12s %-12s %-12s %-11s %-12s %-12s %-12s %-12s\n",
		"Age", "Hours", "Step", "Rate", "WorkIncome", "Unemployment", "AfterTax", "ACASubsidy", "Expenses", "Shortfall", "Cash", "NetWorth")
	for _, row := range result.Rows {
		fmt.Fprintf(&buf, "%-4d %-8s %-4d %-9s %-12s %-12s %-12s %-11s %-12s %-12s %-12s %-12s\n",
			row.Age,
			row.CareerHoursDisplay,
			row.PayStep,
			FormatCurrency(row.HourlyRate),
			FormatCurrency(row.TotalWorkIncome),
			FormatCurrency(row.UnemploymentBenefits),
			FormatCurrency(row.AfterTaxIncome),
			FormatCurrency(row.ACASubsidy),
			FormatCurrency(row.AnnualExpenses),
			FormatCurrency(row.Shortfall),
			FormatCurrency(row.EndingCash),
			FormatCurrency(row.TotalNetWorth),
		)
	}

	s := result.Summary
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintf(&buf, "  Hourly rate: %s -> %s (%s growth)\n",
		FormatCurrency(s.FirstHourlyRate), FormatCurrency(s.FinalHourlyRate), FormatPercentage(s.WageGrowthPercent))
	fmt.Fprintf(&buf, "  Cash depleted at age: %s\n", FormatDepletionAge(s.CashDepletedAge))
	fmt.Fprintf(&buf, "  Taxable depleted at age: %s\n", FormatDepletionAge(s.TaxableDepletedAge))
	fmt.Fprintf(&buf, "  Final net worth at age %d: %s\n", s.FinalAge, FormatCurrency(s.FinalNetWorth))
	if s.FinalShortfall.IsNegative() {
		fmt.Fprintf(&buf, "  Final year surplus: %s\n", FormatCurrency(s.FinalShortfall.Neg()))
	} else {
		fmt.Fprintf(&buf, "  Final year shortfall: %s\n", FormatCurrency(s.FinalShortfall))
	}
	return buf.Bytes(), nil
}
