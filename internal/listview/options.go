package listview

import (
	"context"
	"time"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/derive"
)

// Confirmer asks the user to confirm a destructive action. It must never
// auto-confirm on behalf of the user.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// ExportValidator checks a downloaded export before it is saved.
type ExportValidator func(data []byte) error

// Option configures a Controller.
type Option func(*options)

type options struct {
	perPage         int
	timeout         time.Duration
	searchKeys      []string
	statusField     string
	dateField       string
	horizonDays     int
	now             func() time.Time
	exportValidator ExportValidator
	initialFilters  map[string]string
	initialSearch   string
	exprFilter      *derive.ExprFilter
}

func defaultOptions() options {
	return options{
		perPage:         constants.DefaultPerPage,
		timeout:         constants.DefaultTimeout,
		statusField:     constants.DefaultStatusField,
		horizonDays:     constants.DefaultHorizonDays,
		now:             time.Now,
		exportValidator: ValidateWorkbook,
	}
}

// WithPerPage sets the initial page size.
func WithPerPage(n int) Option {
	return func(o *options) { o.perPage = n }
}

// WithTimeout bounds every network call of the controller.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSearchKeys configures the text fields used by client-side search.
func WithSearchKeys(keys ...string) Option {
	return func(o *options) { o.searchKeys = keys }
}

// WithStatusField names the categorical field counted in derived statistics.
func WithStatusField(field string) Option {
	return func(o *options) { o.statusField = field }
}

// WithDateWindow enables review/expiry classification of dateField.
func WithDateWindow(dateField string, horizonDays int) Option {
	return func(o *options) {
		o.dateField = dateField
		o.horizonDays = horizonDays
	}
}

// WithClock replaces time.Now for classification.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithExportValidator replaces the workbook check run before saving exports.
func WithExportValidator(v ExportValidator) Option {
	return func(o *options) { o.exportValidator = v }
}

// WithFilters seeds the initial field filters without triggering a fetch.
func WithFilters(filters map[string]string) Option {
	return func(o *options) { o.initialFilters = filters }
}

// WithSearch seeds the initial search text without triggering a fetch.
func WithSearch(text string) Option {
	return func(o *options) { o.initialSearch = text }
}

// WithExprFilter applies an advanced expression on top of the visible rows.
func WithExprFilter(f *derive.ExprFilter) Option {
	return func(o *options) { o.exprFilter = f }
}
