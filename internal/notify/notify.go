// Package notify is the presentation-layer adapter that turns controller
// Results into user-visible notifications.
package notify

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/aerohr/console/internal/listview"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// Level of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one toast-like message.
type Notification struct {
	Level   Level
	Message string
	// Fields carries inline validation messages keyed by form field.
	Fields map[string]string
}

// Notifier writes notifications to out and keeps a history.
type Notifier struct {
	out     io.Writer
	mu      sync.Mutex
	history []Notification
}

// New creates a Notifier writing to out. A nil out only records history.
func New(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Translate maps a Result to the notifications it should produce. Superseded
// results produce none; silent successes produce none.
func Translate(r listview.Result) []Notification {
	switch {
	case r.Superseded:
		return nil
	case r.Declined:
		return []Notification{{Level: LevelInfo, Message: fmt.Sprintf("%s cancelled", r.Action)}}
	case r.Err != nil:
		n := Notification{Level: LevelError, Message: r.Err.Error()}
		var vf *apperrors.ValidationFailure
		if errors.As(r.Err, &vf) {
			n.Fields = vf.Fields
			n.Message = "Please fix the highlighted fields"
		}
		return []Notification{n}
	}
	var out []Notification
	if r.Message != "" {
		out = append(out, Notification{Level: LevelSuccess, Message: r.Message})
	}
	if r.Followup != nil {
		out = append(out, Notification{Level: LevelWarning, Message: fmt.Sprintf("list may be out of date: %v", r.Followup)})
	}
	return out
}

// Notify records and prints the notifications for r. It never fails; a
// broken writer only loses the printed copy.
func (n *Notifier) Notify(r listview.Result) []Notification {
	notes := Translate(r)
	if len(notes) == 0 {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, note := range notes {
		n.history = append(n.history, note)
		if note.Level == LevelError {
			log.Printf("❌ %s: %s", r.Action, note.Message)
		}
		if n.out == nil {
			continue
		}
		fmt.Fprintf(n.out, "%s %s\n", icon(note.Level), note.Message)
		for _, f := range sortedKeys(note.Fields) {
			fmt.Fprintf(n.out, "   • %s %s\n", f, note.Fields[f])
		}
	}
	return notes
}

// ValidationError reports a form validation failure outside the controller.
func (n *Notifier) ValidationError(action string, err error) []Notification {
	return n.Notify(listview.Result{Action: action, Err: err})
}

// History returns every notification emitted so far.
func (n *Notifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.history))
	copy(out, n.history)
	return out
}

func icon(l Level) string {
	switch l {
	case LevelSuccess:
		return "✅"
	case LevelWarning:
		return "⚠️ "
	case LevelError:
		return "❌"
	}
	return "ℹ️ "
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
