package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/internal/listview"

	apperrors "github.com/aerohr/console/pkg/errors"
)

func TestTranslate(t *testing.T) {
	vf := apperrors.NewValidationError("basic", "must be greater than 0")

	tests := []struct {
		name   string
		result listview.Result
		want   []Notification
	}{
		{"superseded is silent", listview.Result{Action: "refresh", Superseded: true, Err: errors.New("late")}, nil},
		{"silent success", listview.Result{Action: "refresh", OK: true}, nil},
		{"success message", listview.Result{Action: "delete", OK: true, Message: "Deleted"},
			[]Notification{{Level: LevelSuccess, Message: "Deleted"}}},
		{"declined", listview.Result{Action: "delete", Declined: true},
			[]Notification{{Level: LevelInfo, Message: "delete cancelled"}}},
		{"failure", listview.Result{Action: "export", Err: errors.New("boom")},
			[]Notification{{Level: LevelError, Message: "boom"}}},
		{"validation carries fields", listview.Result{Action: "salary", Err: vf},
			[]Notification{{Level: LevelError, Message: "Please fix the highlighted fields", Fields: vf.Fields}}},
		{"followup warns", listview.Result{Action: "delete", OK: true, Message: "Deleted", Followup: errors.New("stats down")},
			[]Notification{
				{Level: LevelSuccess, Message: "Deleted"},
				{Level: LevelWarning, Message: "list may be out of date: stats down"},
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.result))
		})
	}
}

func TestNotifier_PrintsAndRecords(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)

	n.Notify(listview.Result{Action: "refresh", Superseded: true})
	n.Notify(listview.Result{Action: "delete", OK: true, Message: "Deleted"})

	vf := apperrors.NewValidationError("pf", "must not be negative")
	vf.Add("basic", "is required")
	n.ValidationError("salary", vf)

	out := buf.String()
	assert.Contains(t, out, "✅ Deleted")
	assert.Contains(t, out, "❌ Please fix the highlighted fields")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("• basic")), bytes.Index(buf.Bytes(), []byte("• pf")), "fields sorted")

	history := n.History()
	require.Len(t, history, 2)
	assert.Equal(t, LevelSuccess, history[0].Level)
	assert.Equal(t, LevelError, history[1].Level)
}

func TestNotifier_NilWriterKeepsHistory(t *testing.T) {
	n := New(nil)
	n.Notify(listview.Result{Action: "export", Err: errors.New("boom")})
	assert.Len(t, n.History(), 1)
}
