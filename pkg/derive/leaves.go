package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/aerohr/console/pkg/models"
)

// LeaveWindow is an inclusive range of days with a display label.
type LeaveWindow struct {
	Label string
	From  models.Date
	To    models.Date
}

// Today is the window covering the anchor day.
func Today(anchor time.Time) LeaveWindow {
	d := models.DateOf(anchor)
	return LeaveWindow{Label: "today", From: d, To: d}
}

// Tomorrow is the window covering the day after the anchor.
func Tomorrow(anchor time.Time) LeaveWindow {
	d := models.DateOf(anchor).AddDays(1)
	return LeaveWindow{Label: "tomorrow", From: d, To: d}
}

// NextDays covers the n days following the anchor, [anchor+1, anchor+n].
func NextDays(anchor time.Time, n int) LeaveWindow {
	if n < 1 {
		n = 1
	}
	d := models.DateOf(anchor)
	return LeaveWindow{
		Label: fmt.Sprintf("in the next %d days", n),
		From:  d.AddDays(1),
		To:    d.AddDays(n),
	}
}

// Contains reports whether leave l is active on any day of the window.
func (w LeaveWindow) Contains(l models.Leave) bool {
	if w.From.Equal(w.To.Time) {
		return l.ActiveOn(w.From)
	}
	return l.Overlaps(w.From, w.To)
}

// LeaveGroup is the remaining leave-takers of one leave type.
type LeaveGroup struct {
	LeaveType string
	// Count is the number of distinct employees on this leave type.
	Count  int
	Leaves []models.Leave
}

// LeaveWindowSummary is what the updates view shows for one window.
type LeaveWindowSummary struct {
	Window   LeaveWindow
	Messages []string
	Groups   []LeaveGroup
}

// Total is the number of distinct colleagues on leave in the window.
func (s LeaveWindowSummary) Total() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Count
	}
	return n
}

// SummarizeLeaves builds the summary of window for viewerID. Only approved
// leaves count; pending and rejected ones are skipped. When the viewer is on a
// leave type, exactly one personalised message is produced for that
// type and the viewer is dropped from its aggregate.
func SummarizeLeaves(window LeaveWindow, viewerID string, leaves []models.Leave) LeaveWindowSummary {
	byType := make(map[string][]models.Leave)
	for _, l := range leaves {
		if !l.IsApproved() || !window.Contains(l) {
			continue
		}
		byType[l.LeaveType] = append(byType[l.LeaveType], l)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	summary := LeaveWindowSummary{Window: window, Messages: []string{}, Groups: []LeaveGroup{}}
	for _, t := range types {
		viewerOnLeave := false
		rest := make([]models.Leave, 0, len(byType[t]))
		users := make(map[string]struct{})
		for _, l := range byType[t] {
			if viewerID != "" && l.UserID == viewerID {
				viewerOnLeave = true
				continue
			}
			rest = append(rest, l)
			users[l.UserID] = struct{}{}
		}
		if viewerOnLeave {
			summary.Messages = append(summary.Messages, fmt.Sprintf("You are on %s %s", t, window.Label))
		}
		if len(rest) == 0 {
			continue
		}
		sort.SliceStable(rest, func(i, j int) bool {
			if !rest[i].FromDate.Equal(rest[j].FromDate.Time) {
				return rest[i].FromDate.Before(rest[j].FromDate.Time)
			}
			return rest[i].EmployeeName < rest[j].EmployeeName
		})
		summary.Groups = append(summary.Groups, LeaveGroup{LeaveType: t, Count: len(users), Leaves: rest})
	}
	return summary
}

// SummarizeUpdates returns the today, tomorrow and next-n-days summaries in
// display order.
func SummarizeUpdates(anchor time.Time, upcomingDays int, viewerID string, leaves []models.Leave) []LeaveWindowSummary {
	return []LeaveWindowSummary{
		SummarizeLeaves(Today(anchor), viewerID, leaves),
		SummarizeLeaves(Tomorrow(anchor), viewerID, leaves),
		SummarizeLeaves(NextDays(anchor, upcomingDays), viewerID, leaves),
	}
}
