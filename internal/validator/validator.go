// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"sort"

	"fintrack/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validations = map[string]validator.Func{
	"period_type":       validatePeriodType,
	"savings_goal_type": validateSavingsGoalType,
	"positive_decimal":  validatePositiveDecimal,
	"nonneg_decimal":    validateNonNegativeDecimal,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		for tag, fn := range validations {
			_ = v.RegisterValidation(tag, fn)
		}
	}
}

// Tags returns the names of the custom validation tags, sorted.
func Tags() []string {
	tags := make([]string, 0, len(validations))
	for tag := range validations {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// decimalValue exposes decimals to the engine as their string form so the
// decimal tags below can parse them back without float rounding.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && d.IsPositive()
}

func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative()
}

func validatePeriodType(fl validator.FieldLevel) bool {
	return models.PeriodType(fl.Field().String()).IsValid()
}

func validateSavingsGoalType(fl validator.FieldLevel) bool {
	return models.SavingsGoalType(fl.Field().String()).IsValid()
}
