package config

import (
	"fmt"
	"os"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ExampleInputs returns a realistic planner-inputs record for a mid-career
// seasonal worker, used by tests and the `example` CLI command.
func ExampleInputs() *domain.PlannerInputs {
	return &domain.PlannerInputs{
		CurrentAge:              44,
		EndAge:                  70,
		StartingCareerHours:     decimal.NewFromInt(9695),
		AnnualHours:             decimal.NewFromInt(800),
		StartingProfitSharing:   decimal.NewFromInt(3000),
		AnnualRaisePercent:      decimal.NewFromInt(4),
		ProfitSharingPercent:    decimal.NewFromInt(10),
		OtherIncomeAnnual:       decimal.NewFromInt(2400),
		PartnerIncomeMonthly:    decimal.NewFromInt(3200),
		TaxRatePercent:          decimal.NewFromInt(18),
		CurrentExpensesAnnual:   decimal.NewFromInt(72000),
		ExpenseInflationPercent: decimal.NewFromInt(3),
		RetirementBalance:       decimal.NewFromInt(185000),
		TaxableBalance:          decimal.NewFromInt(90000),
		CashBalance:             decimal.NewFromInt(40000),
		InvestmentReturnPercent: decimal.NewFromInt(6),
		CashReturnPercent:       decimal.NewFromInt(2),
	}
}

// WriteExampleFiles writes example inputs and rates YAML files to the given
// paths so a new user has a working starting point.
func WriteExampleFiles(inputsPath, ratesPath string) error {
	inputsData, err := yaml.Marshal(ExampleInputs())
	if err != nil {
		return fmt.Errorf("failed to marshal example inputs: %w", err)
	}
	if err := os.WriteFile(inputsPath, inputsData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", inputsPath, err)
	}

	ratesData, err := yaml.Marshal(DefaultRateTables())
	if err != nil {
		return fmt.Errorf("failed to marshal default rates: %w", err)
	}
	if err := os.WriteFile(ratesPath, ratesData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ratesPath, err)
	}
	return nil
}
