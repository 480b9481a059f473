package config

import (
	"fmt"
	"reflect"

	"github.com/hplan/household-planner/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// LoadPlannerInputs loads the planner inputs from a YAML file, with
// HPLAN_-prefixed environment variables taking precedence over file values.
// Missing numeric fields decode to zero; coercion of incomplete input is
// this layer's job, never the engine's.
func LoadPlannerInputs(filename string) (*domain.PlannerInputs, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("HPLAN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read inputs file %s: %w", filename, err)
	}

	var inputs domain.PlannerInputs
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(decimalDecodeHook))
	if err := v.Unmarshal(&inputs, hook); err != nil {
		return nil, fmt.Errorf("unable to decode inputs: %w", err)
	}

	if err := ValidatePlannerInputs(&inputs); err != nil {
		return nil, fmt.Errorf("inputs validation failed: %w", err)
	}

	return &inputs, nil
}

// decimalDecodeHook converts YAML scalars into decimal.Decimal fields.
func decimalDecodeHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch value := data.(type) {
	case string:
		return decimal.NewFromString(value)
	case int:
		return decimal.NewFromInt(int64(value)), nil
	case int64:
		return decimal.NewFromInt(value), nil
	case float64:
		return decimal.NewFromFloat(value), nil
	default:
		return data, nil
	}
}

// ValidatePlannerInputs checks the user-supplied record before it reaches
// the engine.
func ValidatePlannerInputs(inputs *domain.PlannerInputs) error {
	if inputs.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive")
	}
	if inputs.EndAge < inputs.CurrentAge {
		return fmt.Errorf("end age cannot be before current age")
	}
	if inputs.StartingCareerHours.LessThan(decimal.Zero) {
		return fmt.Errorf("starting career hours cannot be negative")
	}
	if inputs.AnnualHours.LessThan(decimal.Zero) {
		return fmt.Errorf("annual hours cannot be negative")
	}
	if inputs.TaxRatePercent.LessThan(decimal.Zero) || inputs.TaxRatePercent.GreaterThan(hundred) {
		return fmt.Errorf("tax rate percent must be between 0 and 100")
	}
	if inputs.CurrentExpensesAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("current expenses cannot be negative")
	}
	for name, balance := range map[string]decimal.Decimal{
		"cash":       inputs.CashBalance,
		"taxable":    inputs.TaxableBalance,
		"retirement": inputs.RetirementBalance,
	} {
		if balance.LessThan(decimal.Zero) {
			return fmt.Errorf("%s balance cannot be negative", name)
		}
	}
	return nil
}

var hundred = decimal.NewFromInt(100)
