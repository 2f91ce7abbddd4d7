package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// SalaryStructure is the salary form. Percentages are of basic salary; PF and
// ESI rates only apply when the matching contribution is explicitly enabled.
type SalaryStructure struct {
	EmployeeID      string   `json:"employee_id" validate:"required"`
	BasicSalary     float64  `json:"basic_salary" validate:"gt=0"`
	HRAPercent      float64  `json:"hra_percent" validate:"gte=0,lte=100"`
	DAPercent       float64  `json:"da_percent" validate:"gte=0,lte=100"`
	OtherAllowances float64  `json:"other_allowances" validate:"gte=0"`
	PFContribution  TriState `json:"pf_contribution"`
	PFRate          *float64 `json:"pf_rate" validate:"omitempty,gte=0,lte=100"`
	ESIContribution TriState `json:"esi_contribution"`
	ESIRate         *float64 `json:"esi_rate" validate:"omitempty,gte=0,lte=100"`
	EffectiveFrom   *Date    `json:"effective_from" validate:"required"`
}

// SalaryBreakdown is derived from a valid SalaryStructure.
type SalaryBreakdown struct {
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	DA         float64 `json:"da"`
	Other      float64 `json:"other"`
	Gross      float64 `json:"gross"`
	PF         float64 `json:"pf"`
	ESI        float64 `json:"esi"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

func getFormValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		formValidator = validator.New(validator.WithRequiredStructEnabled())
		formValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return formValidator
}

// Validate reports every offending field as a ValidationFailure so the form
// can show all inline errors at once.
func (s SalaryStructure) Validate() error {
	failure := &apperrors.ValidationFailure{}

	if err := getFormValidator().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate salary structure: %w", err)
		}
		for _, fe := range verrs {
			failure.Add(fe.Field(), describeConstraint(fe))
		}
	}

	if s.PFContribution.IsEnabled() && s.PFRate == nil {
		failure.Add("pf_rate", "is required when PF contribution is enabled")
	}
	if s.ESIContribution.IsEnabled() && s.ESIRate == nil {
		failure.Add("esi_rate", "is required when ESI contribution is enabled")
	}
	if !s.PFContribution.IsSet() {
		failure.Add("pf_contribution", "must be enabled or disabled")
	}
	if !s.ESIContribution.IsSet() {
		failure.Add("esi_contribution", "must be enabled or disabled")
	}
	return failure.OrNil()
}

func describeConstraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %s constraint", fe.Tag())
}

// Breakdown validates s and computes the derived amounts, rounded to paise.
func (s SalaryStructure) Breakdown() (SalaryBreakdown, error) {
	if err := s.Validate(); err != nil {
		return SalaryBreakdown{}, err
	}
	b := SalaryBreakdown{
		Basic: round2(s.BasicSalary),
		HRA:   round2(s.BasicSalary * s.HRAPercent / 100),
		DA:    round2(s.BasicSalary * s.DAPercent / 100),
		Other: round2(s.OtherAllowances),
	}
	b.Gross = round2(b.Basic + b.HRA + b.DA + b.Other)
	if s.PFContribution.IsEnabled() {
		b.PF = round2(b.Basic * *s.PFRate / 100)
	}
	if s.ESIContribution.IsEnabled() {
		b.ESI = round2(b.Gross * *s.ESIRate / 100)
	}
	b.Deductions = round2(b.PF + b.ESI)
	b.Net = round2(b.Gross - b.Deductions)
	return b, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
