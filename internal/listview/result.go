package listview

import (
	apperrors "github.com/aerohr/console/pkg/errors"
)

// Action names reported in Results.
const (
	ActionLoad         = "load"
	ActionRefresh      = "refresh"
	ActionStatistics   = "statistics"
	ActionFilter       = "filter"
	ActionSearch       = "search"
	ActionPage         = "page"
	ActionPerPage      = "per_page"
	ActionUpdateStatus = "update_status"
	ActionApprove      = "approve"
	ActionDelete       = "delete"
	ActionExport       = "export"
)

// Result is what every controller action returns instead of raising
// notifications itself. A presentation adapter turns it into user feedback.
type Result struct {
	Action  string
	OK      bool
	Message string
	Err     error
	// Superseded is set when a newer request or a teardown made this
	// response irrelevant; nothing was applied and nothing should be shown.
	Superseded bool
	// Declined is set when the user refused a confirmation step.
	Declined bool
	// Followup is the error of a secondary refresh after a successful
	// mutation. The mutation itself still succeeded.
	Followup error
	// Path is the saved file of an export.
	Path string
}

func ok(action, message string) Result {
	return Result{Action: action, OK: true, Message: message}
}

func failed(action string, err error) Result {
	return Result{Action: action, Err: err}
}

func superseded(action string) Result {
	return Result{Action: action, Superseded: true}
}

// Kind names the error taxonomy bucket of r.Err for display.
func (r Result) Kind() string {
	switch {
	case r.Err == nil:
		return ""
	case apperrors.IsValidation(r.Err):
		return "validation"
	case apperrors.IsFetchFailure(r.Err):
		return "fetch"
	case apperrors.IsMutationFailure(r.Err):
		return "mutation"
	case apperrors.IsExportFailure(r.Err):
		return "export"
	}
	return "error"
}
