package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Operation names used in failure messages.
const (
	OpList         = "list"
	OpStatistics   = "statistics"
	OpUpdateStatus = "update status"
	OpApprove      = "approve"
	OpDelete       = "delete"
	OpExport       = "export"
	OpLogin        = "login"
)

// RemoteFailure carries the details shared by every failure talking to the
// remote API. Status is zero for transport failures (including timeouts).
type RemoteFailure struct {
	Op       string
	Resource string
	Status   int
	Message  string
	Cause    error
}

func (e *RemoteFailure) describe(kind string) string {
	target := e.Op
	if e.Resource != "" {
		target = fmt.Sprintf("%s %s", e.Op, e.Resource)
	}
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: %s failed (%d): %s", kind, target, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s failed (%d)", kind, target, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s failed: %v", kind, target, e.Cause)
	}
	return fmt.Sprintf("%s: %s failed", kind, target)
}

// Timeout reports whether the failure was caused by a deadline.
func (e *RemoteFailure) Timeout() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}

// Canceled reports whether the request was cancelled (superseded or torn down).
func (e *RemoteFailure) Canceled() bool {
	return errors.Is(e.Cause, context.Canceled)
}

func (e *RemoteFailure) httpStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return http.StatusBadGateway
}

// FetchFailure is a failed list or statistics request.
type FetchFailure struct{ RemoteFailure }

func (e *FetchFailure) Error() string   { return e.describe("fetch failure") }
func (e *FetchFailure) HTTPStatus() int { return e.httpStatus() }
func (e *FetchFailure) Code() string    { return "FETCH_FAILURE" }
func (e *FetchFailure) Unwrap() error   { return e.Cause }

// MutationFailure is a failed status update, approve or delete.
type MutationFailure struct{ RemoteFailure }

func (e *MutationFailure) Error() string   { return e.describe("mutation failure") }
func (e *MutationFailure) HTTPStatus() int { return e.httpStatus() }
func (e *MutationFailure) Code() string    { return "MUTATION_FAILURE" }
func (e *MutationFailure) Unwrap() error   { return e.Cause }

// ExportFailure is a failed export generation or download.
type ExportFailure struct{ RemoteFailure }

func (e *ExportFailure) Error() string   { return e.describe("export failure") }
func (e *ExportFailure) HTTPStatus() int { return e.httpStatus() }
func (e *ExportFailure) Code() string    { return "EXPORT_FAILURE" }
func (e *ExportFailure) Unwrap() error   { return e.Cause }

// NewFetchFailure creates a FetchFailure
func NewFetchFailure(op, resource string, status int, message string, cause error) *FetchFailure {
	return &FetchFailure{RemoteFailure{Op: op, Resource: resource, Status: status, Message: message, Cause: cause}}
}

// NewMutationFailure creates a MutationFailure
func NewMutationFailure(op, resource string, status int, message string, cause error) *MutationFailure {
	return &MutationFailure{RemoteFailure{Op: op, Resource: resource, Status: status, Message: message, Cause: cause}}
}

// NewExportFailure creates an ExportFailure
func NewExportFailure(resource string, status int, message string, cause error) *ExportFailure {
	return &ExportFailure{RemoteFailure{Op: OpExport, Resource: resource, Status: status, Message: message, Cause: cause}}
}

// IsFetchFailure checks if an error is a FetchFailure
func IsFetchFailure(err error) bool {
	var f *FetchFailure
	return errors.As(err, &f)
}

// IsMutationFailure checks if an error is a MutationFailure
func IsMutationFailure(err error) bool {
	var f *MutationFailure
	return errors.As(err, &f)
}

// IsExportFailure checks if an error is an ExportFailure
func IsExportFailure(err error) bool {
	var f *ExportFailure
	return errors.As(err, &f)
}

// IsCanceled reports whether err came from a cancelled request.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
