// Package expression evaluates the advanced filter language used by list views,
// e.g. `status == "active" && DAYS_UNTIL(next_review_date) <= 30`.
package expression

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/aerohr/console/pkg/constants"
)

// Engine is a wrapper around expr-lang/expr with a compiled program cache.
type Engine struct {
	programCache map[string]*vm.Program
	now          func() time.Time
	mu           sync.RWMutex
}

// NewEngine creates a new expression engine
func NewEngine() *Engine {
	return &Engine{
		programCache: make(map[string]*vm.Program),
		now:          time.Now,
	}
}

// WithClock replaces the clock used by TODAY and DAYS_UNTIL.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
	e.programCache = make(map[string]*vm.Program)
	return e
}

// Evaluate compiles (if needed) and runs an expression against the given environment
func (e *Engine) Evaluate(expression string, env map[string]interface{}) (interface{}, error) {
	program, err := e.getProgram(expression, env)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, env)
}

// EvaluateBool runs a predicate expression.
func (e *Engine) EvaluateBool(expression string, env map[string]interface{}) (bool, error) {
	out, err := e.Evaluate(expression, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, want bool", expression, out)
	}
	return b, nil
}

// Validate compiles expression against env without running it.
func (e *Engine) Validate(expression string, env map[string]interface{}) error {
	_, err := e.getProgram(expression, env)
	return err
}

func (e *Engine) getProgram(expression string, env map[string]interface{}) (*vm.Program, error) {
	e.mu.RLock()
	if prog, ok := e.programCache[expression]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Double check
	if prog, ok := e.programCache[expression]; ok {
		return prog, nil
	}

	now := e.now
	options := []expr.Option{
		expr.Env(env),
		expr.Function("TODAY", func(params ...interface{}) (interface{}, error) {
			return now().Format(constants.DateLayout), nil
		}),
		expr.Function("LOWER", func(params ...interface{}) (interface{}, error) {
			s, err := oneString("LOWER", params)
			if err != nil {
				return nil, err
			}
			return strings.ToLower(s), nil
		}),
		expr.Function("UPPER", func(params ...interface{}) (interface{}, error) {
			s, err := oneString("UPPER", params)
			if err != nil {
				return nil, err
			}
			return strings.ToUpper(s), nil
		}),
		expr.Function("DATE_ADD", func(params ...interface{}) (interface{}, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("DATE_ADD requires 2 arguments (date, days)")
			}
			dateStr, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("DATE_ADD date must be string")
			}
			days, err := toInt(params[1])
			if err != nil {
				return nil, fmt.Errorf("DATE_ADD days must be integer")
			}
			t, err := time.Parse(constants.DateLayout, dateStr)
			if err != nil {
				return nil, fmt.Errorf("DATE_ADD date format invalid")
			}
			return t.AddDate(0, 0, days).Format(constants.DateLayout), nil
		}),
		// DAYS_UNTIL returns whole days from today to the date. An empty date
		// yields nil, so any comparison against it fails at run time.
		expr.Function("DAYS_UNTIL", func(params ...interface{}) (interface{}, error) {
			s, err := oneString("DAYS_UNTIL", params)
			if err != nil {
				return nil, err
			}
			if s == "" {
				return nil, nil
			}
			t, err := time.Parse(constants.DateLayout, s)
			if err != nil {
				return nil, fmt.Errorf("DAYS_UNTIL date format invalid")
			}
			y, m, d := now().Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			return int(t.Sub(today).Hours() / 24), nil
		}),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}

func oneString(name string, params []interface{}) (string, error) {
	if len(params) != 1 {
		return "", fmt.Errorf("%s requires 1 argument", name)
	}
	s, ok := params[0].(string)
	if !ok {
		return "", fmt.Errorf("%s argument must be string", name)
	}
	return s, nil
}

func toInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case float64:
		return int(val), nil
	case int64:
		return int(val), nil
	case float32:
		return int(val), nil
	case string:
		var i int
		_, err := fmt.Sscanf(val, "%d", &i)
		return i, err
	}
	return 0, fmt.Errorf("cannot convert %T to int", v)
}
