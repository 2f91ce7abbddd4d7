package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aerohr/console/pkg/errors"
)

func rate(v float64) *float64 { return &v }

func validSalary() SalaryStructure {
	from := NewDate(2024, 4, 1)
	return SalaryStructure{
		EmployeeID:      "u-1",
		BasicSalary:     30000,
		HRAPercent:      40,
		DAPercent:       10,
		OtherAllowances: 2500,
		PFContribution:  Enabled,
		PFRate:          rate(12),
		ESIContribution: Disabled,
		EffectiveFrom:   &from,
	}
}

func TestSalaryStructure_Breakdown(t *testing.T) {
	b, err := validSalary().Breakdown()
	require.NoError(t, err)

	assert.Equal(t, 12000.0, b.HRA)
	assert.Equal(t, 3000.0, b.DA)
	assert.Equal(t, 47500.0, b.Gross)
	assert.Equal(t, 3600.0, b.PF)
	assert.Zero(t, b.ESI)
	assert.Equal(t, 43900.0, b.Net)
}

func TestSalaryStructure_ESIOnGross(t *testing.T) {
	s := validSalary()
	s.ESIContribution = Enabled
	s.ESIRate = rate(0.75)

	b, err := s.Breakdown()
	require.NoError(t, err)
	assert.Equal(t, 356.25, b.ESI)
	assert.Equal(t, 3956.25, b.Deductions)
}

func TestSalaryStructure_ValidateCollectsEveryField(t *testing.T) {
	s := SalaryStructure{
		BasicSalary:     0,
		HRAPercent:      140,
		PFContribution:  Enabled,
		ESIContribution: Unset,
	}

	err := s.Validate()
	require.Error(t, err)

	var vf *apperrors.ValidationFailure
	require.ErrorAs(t, err, &vf)
	assert.ElementsMatch(t,
		[]string{"employee_id", "basic_salary", "hra_percent", "effective_from", "pf_rate", "esi_contribution"},
		vf.FieldNames())
	assert.Equal(t, "must be greater than 0", vf.Fields["basic_salary"])
	assert.Equal(t, "must be at most 100", vf.Fields["hra_percent"])
}

func TestSalaryStructure_DisabledNeedsNoRate(t *testing.T) {
	s := validSalary()
	s.PFContribution = Disabled
	s.PFRate = nil

	assert.NoError(t, s.Validate())
}
