package models

import (
	"fmt"

	"github.com/aerohr/console/pkg/constants"
)

// workflowTransitions is the normal lifecycle:
// draft -> pending_approval -> active|published -> archived|expired.
var workflowTransitions = map[constants.Status][]constants.Status{
	constants.StatusDraft:           {constants.StatusPendingApproval, constants.StatusArchived},
	constants.StatusPendingApproval: {constants.StatusActive, constants.StatusPublished, constants.StatusDraft},
	constants.StatusActive:          {constants.StatusArchived, constants.StatusExpired, constants.StatusClosed},
	constants.StatusPublished:       {constants.StatusArchived, constants.StatusExpired, constants.StatusClosed},
}

// CanTransition reports whether from -> to is a normal workflow step.
// Terminal statuses have no outgoing normal transitions.
func CanTransition(from, to constants.Status) bool {
	if from == to {
		return false
	}
	for _, next := range workflowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanReactivate reports whether an explicit reactivation from s is allowed.
func CanReactivate(s constants.Status) bool {
	return s == constants.StatusArchived || s == constants.StatusExpired
}

// CheckTransition validates a requested status change. reactivate must be set
// explicitly to bring a terminal record back to active.
func CheckTransition(from, to constants.Status, reactivate bool) error {
	if reactivate {
		if to == constants.StatusActive && CanReactivate(from) {
			return nil
		}
		return fmt.Errorf("cannot reactivate a %s record", from)
	}
	if CanTransition(from, to) {
		return nil
	}
	if from.IsTerminal() {
		return fmt.Errorf("%s is terminal; reactivation must be requested explicitly", from)
	}
	return fmt.Errorf("cannot move from %s to %s", from, to)
}

// IsWorkflowStatus reports whether s belongs to the document workflow vocabulary.
func IsWorkflowStatus(s string) bool {
	for _, st := range constants.GetAllStatuses() {
		if st == s {
			return true
		}
	}
	return false
}
