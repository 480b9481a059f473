package config

import (
	"testing"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInputsYAML = `
currentAge: 44
endAge: 70
startingCareerHours: 9695
annualHours: 800
startingProfitSharing: 3000
annualRaisePercent: 4
profitSharingPercent: 10
otherIncomeAnnual: 2400
partnerIncomeMonthly: 3200
taxRatePercent: 18
currentExpensesAnnual: 72000
expenseInflationPercent: 3
retirementBalance: 185000
taxableBalance: 90000
cashBalance: 40000
investmentReturnPercent: 6
cashReturnPercent: 2
`

func TestLoadPlannerInputs(t *testing.T) {
	path := writeTempFile(t, "inputs.yaml", testInputsYAML)

	inputs, err := LoadPlannerInputs(path)
	require.NoError(t, err)

	assert.Equal(t, 44, inputs.CurrentAge)
	assert.Equal(t, 70, inputs.EndAge)
	assert.True(t, inputs.StartingCareerHours.Equal(decimal.NewFromInt(9695)), "career hours = %s", inputs.StartingCareerHours)
	assert.True(t, inputs.TaxRatePercent.Equal(decimal.NewFromInt(18)))
	assert.True(t, inputs.CashBalance.Equal(decimal.NewFromInt(40000)))
	assert.Equal(t, 27, inputs.ProjectionYears())
}

func TestLoadPlannerInputs_MissingFieldsDecodeToZero(t *testing.T) {
	path := writeTempFile(t, "inputs.yaml", "currentAge: 50\nendAge: 60\n")

	inputs, err := LoadPlannerInputs(path)
	require.NoError(t, err)
	assert.True(t, inputs.CashBalance.IsZero())
	assert.True(t, inputs.TaxRatePercent.IsZero())
}

func TestLoadPlannerInputs_MissingFile(t *testing.T) {
	_, err := LoadPlannerInputs("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidatePlannerInputs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.PlannerInputs)
		wantErr bool
	}{
		{
			name:    "example inputs are valid",
			mutate:  func(pi *domain.PlannerInputs) {},
			wantErr: false,
		},
		{
			name:    "end age before current age",
			mutate:  func(pi *domain.PlannerInputs) { pi.EndAge = pi.CurrentAge - 1 },
			wantErr: true,
		},
		{
			name:    "equal ages are allowed",
			mutate:  func(pi *domain.PlannerInputs) { pi.EndAge = pi.CurrentAge },
			wantErr: false,
		},
		{
			name:    "negative career hours",
			mutate:  func(pi *domain.PlannerInputs) { pi.StartingCareerHours = decimal.NewFromInt(-1) },
			wantErr: true,
		},
		{
			name:    "tax rate over 100",
			mutate:  func(pi *domain.PlannerInputs) { pi.TaxRatePercent = decimal.NewFromInt(101) },
			wantErr: true,
		},
		{
			name:    "negative balance",
			mutate:  func(pi *domain.PlannerInputs) { pi.TaxableBalance = decimal.NewFromInt(-500) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := ExampleInputs()
			tt.mutate(inputs)
			err := ValidatePlannerInputs(inputs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteExampleFiles(t *testing.T) {
	dir := t.TempDir()
	inputsPath := dir + "/inputs.yaml"
	ratesPath := dir + "/rates.yaml"

	require.NoError(t, WriteExampleFiles(inputsPath, ratesPath))

	inputs, err := LoadPlannerInputs(inputsPath)
	require.NoError(t, err)
	assert.Equal(t, ExampleInputs().CurrentAge, inputs.CurrentAge)

	rates, err := LoadRateTables(ratesPath)
	require.NoError(t, err)
	assert.NoError(t, rates.Validate())
}
