package derive

import (
	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/expression"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// ExprFilter is an advanced predicate written in the expression language and
// evaluated against a record's search, filter and date fields. Dates are
// exposed as "2006-01-02" strings, missing values as "".
type ExprFilter struct {
	Expression string
	engine     *expression.Engine
}

// NewExprFilter compiles expression against the fields of sample. A compile
// error is a ValidationFailure on the "expression" field.
func NewExprFilter(engine *expression.Engine, expression string, sample models.Record) (*ExprFilter, error) {
	if engine == nil {
		return nil, apperrors.NewValidationError("expression", "no expression engine configured")
	}
	if err := engine.Validate(expression, RecordEnv(sample)); err != nil {
		return nil, apperrors.NewValidationError("expression", err.Error())
	}
	return &ExprFilter{Expression: expression, engine: engine}, nil
}

// Match evaluates the predicate. Evaluation errors count as no match.
func (f *ExprFilter) Match(r models.Record) bool {
	if f == nil || f.Expression == "" {
		return true
	}
	ok, err := f.engine.EvaluateBool(f.Expression, RecordEnv(r))
	return err == nil && ok
}

// FilterExpr keeps the records for which f matches.
func FilterExpr[T models.Record](records []T, f *ExprFilter) []T {
	if f == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// RecordEnv flattens a record into the expression environment.
func RecordEnv(r models.Record) map[string]interface{} {
	env := map[string]interface{}{models.FieldID: r.RecordID()}
	for k, v := range r.SearchFields() {
		if v == nil {
			env[k] = ""
			continue
		}
		env[k] = *v
	}
	for k, v := range r.FilterFields() {
		env[k] = v
	}
	for k, v := range r.DateFields() {
		if v == nil {
			env[k] = ""
			continue
		}
		env[k] = v.Format(constants.DateLayout)
	}
	return env
}
