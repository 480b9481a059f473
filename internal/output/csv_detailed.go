package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hplan/household-planner/internal/domain"
)

// CSVDetailedExporter writes one CSV row per simulated year with every
// income, expense, and balance column.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Age", "CareerHours", "PayStep", "HourlyRate",
		"SeasonalWorkEarnings", "OtherIncome", "ProfitShare", "PTOPayout",
		"TotalWorkIncome", "UnemploymentBenefits", "RetirementContribution",
		"TotalGrossIncome", "AfterTaxIncome", "ACASubsidy", "PartnerAnnualIncome",
		"AnnualExpenses", "Shortfall",
		"EndingCash", "EndingTaxable", "EndingRetirement", "TotalNetWorth",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.Rows {
		record := []string{
			intToString(row.Age),
			row.CareerHoursDisplay,
			intToString(row.PayStep),
			row.HourlyRate.StringFixed(2),
			row.SeasonalWorkEarnings.StringFixed(2),
			row.OtherIncome.StringFixed(2),
			row.ProfitShare.StringFixed(2),
			row.PTOPayout.StringFixed(2),
			row.TotalWorkIncome.StringFixed(2),
			row.UnemploymentBenefits.StringFixed(2),
			row.RetirementContribution.StringFixed(2),
			row.TotalGrossIncome.StringFixed(2),
			row.AfterTaxIncome.StringFixed(2),
			row.ACASubsidy.StringFixed(2),
			row.PartnerAnnualIncome.StringFixed(2),
			row.AnnualExpenses.StringFixed(2),
			row.Shortfall.StringFixed(2),
			row.EndingCash.StringFixed(2),
			row.EndingTaxable.StringFixed(2),
			row.EndingRetirement.StringFixed(2),
			row.TotalNetWorth.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
