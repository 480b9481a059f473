package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hplan/household-planner/internal/domain"
)

// CSVSummarizer implements the one-row summary CSV output.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"FirstHourlyRate", "FinalHourlyRate", "WageGrowthPercent", "CashDepletedAge", "TaxableDepletedAge", "FinalAge", "FinalNetWorth", "FinalShortfall"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	s := result.Summary
	row := []string{
		s.FirstHourlyRate.StringFixed(2),
		s.FinalHourlyRate.StringFixed(2),
		s.WageGrowthPercent.StringFixed(2),
		FormatDepletionAge(s.CashDepletedAge),
		FormatDepletionAge(s.TaxableDepletedAge),
		intToString(s.FinalAge),
		s.FinalNetWorth.StringFixed(2),
		s.FinalShortfall.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
