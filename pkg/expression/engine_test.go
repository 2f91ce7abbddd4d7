package expression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 15, 30, 0, 0, time.UTC)
}

func TestEngine_Evaluate(t *testing.T) {
	e := NewEngine().WithClock(fixedClock)

	tests := []struct {
		name     string
		expr     string
		env      map[string]interface{}
		expected interface{}
		wantErr  bool
	}{
		{
			name:     "Simple Math",
			expr:     "1 + 1",
			expected: 2,
		},
		{
			name:     "Variable Access",
			expr:     `status == "active"`,
			env:      map[string]interface{}{"status": "active"},
			expected: true,
		},
		{
			name:     "Today",
			expr:     "TODAY()",
			expected: "2024-06-01",
		},
		{
			name:     "Lower",
			expr:     `LOWER(department)`,
			env:      map[string]interface{}{"department": "HR Ops"},
			expected: "hr ops",
		},
		{
			name:     "Upper",
			expr:     `UPPER("sop")`,
			expected: "SOP",
		},
		{
			name:     "Date Add Across Month",
			expr:     `DATE_ADD("2024-01-30", 2)`,
			expected: "2024-02-01",
		},
		{
			name:     "Days Until",
			expr:     `DAYS_UNTIL(next_review_date)`,
			env:      map[string]interface{}{"next_review_date": "2024-06-11"},
			expected: 10,
		},
		{
			name:     "Days Until Past",
			expr:     `DAYS_UNTIL("2024-05-30")`,
			expected: -2,
		},
		{
			name:    "Bad Date",
			expr:    `DAYS_UNTIL("June 1st")`,
			wantErr: true,
		},
		{
			name:    "Syntax Error",
			expr:    "status ==",
			env:     map[string]interface{}{"status": "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEngine_EvaluateBool(t *testing.T) {
	e := NewEngine().WithClock(fixedClock)
	env := map[string]interface{}{"status": "active", "next_review_date": "2024-06-20"}

	ok, err := e.EvaluateBool(`status == "active" && DAYS_UNTIL(next_review_date) <= 30`, env)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = e.EvaluateBool(`UPPER(status)`, env)
	assert.Error(t, err, "non-bool result must be rejected")
}

func TestEngine_DaysUntilEmptyDateFailsComparison(t *testing.T) {
	e := NewEngine().WithClock(fixedClock)
	env := map[string]interface{}{"next_review_date": ""}

	_, err := e.EvaluateBool(`DAYS_UNTIL(next_review_date) <= 30`, env)
	assert.Error(t, err)
}

func TestEngine_Validate(t *testing.T) {
	e := NewEngine()
	env := map[string]interface{}{"status": ""}

	assert.NoError(t, e.Validate(`status in ["draft", "active"]`, env))
	assert.Error(t, e.Validate(`status ==`, env))
	assert.Error(t, e.Validate(`unknown_field == 1`, env))
}

func TestEngine_CachesPrograms(t *testing.T) {
	e := NewEngine()
	env := map[string]interface{}{"n": 1}

	_, err := e.Evaluate("n + 1", env)
	require.NoError(t, err)
	_, err = e.Evaluate("n + 1", env)
	require.NoError(t, err)

	e.mu.RLock()
	defer e.mu.RUnlock()
	assert.Len(t, e.programCache, 1)
}
