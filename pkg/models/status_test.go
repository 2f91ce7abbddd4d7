package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerohr/console/pkg/constants"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name       string
		from, to   constants.Status
		reactivate bool
		wantErr    bool
	}{
		{"submit draft", constants.StatusDraft, constants.StatusPendingApproval, false, false},
		{"approve", constants.StatusPendingApproval, constants.StatusActive, false, false},
		{"publish", constants.StatusPendingApproval, constants.StatusPublished, false, false},
		{"archive active", constants.StatusActive, constants.StatusArchived, false, false},
		{"skip approval", constants.StatusDraft, constants.StatusActive, false, true},
		{"same status", constants.StatusActive, constants.StatusActive, false, true},
		{"archived needs reactivation", constants.StatusArchived, constants.StatusActive, false, true},
		{"reactivate archived", constants.StatusArchived, constants.StatusActive, true, false},
		{"reactivate expired", constants.StatusExpired, constants.StatusActive, true, false},
		{"closed cannot reactivate", constants.StatusClosed, constants.StatusActive, true, true},
		{"reactivate only to active", constants.StatusArchived, constants.StatusDraft, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to, tt.reactivate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminalStatusesHaveNoNormalTransitions(t *testing.T) {
	for _, s := range constants.GetAllStatuses() {
		from := constants.Status(s)
		if !from.IsTerminal() {
			continue
		}
		for _, to := range constants.GetAllStatuses() {
			assert.False(t, CanTransition(from, constants.Status(to)), "%s -> %s", from, to)
		}
	}
}

func TestIsWorkflowStatus(t *testing.T) {
	assert.True(t, IsWorkflowStatus("pending_approval"))
	assert.False(t, IsWorkflowStatus(constants.AttendancePresent))
	assert.False(t, IsWorkflowStatus(""))
}
