package derive

import "time"

// DateClass is the status colouring bucket of a review or expiry date.
type DateClass string

const (
	ClassNone    DateClass = "none"
	ClassOverdue DateClass = "overdue"
	ClassWarning DateClass = "warning"
	ClassOK      DateClass = "ok"
)

// Classify buckets date relative to now. A nil date is ClassNone, a date
// strictly before now is ClassOverdue, a date no later than now+horizonDays is
// ClassWarning, anything later is ClassOK. It is a pure function.
func Classify(date *time.Time, now time.Time, horizonDays int) DateClass {
	if date == nil || date.IsZero() {
		return ClassNone
	}
	if date.Before(now) {
		return ClassOverdue
	}
	if horizonDays < 0 {
		horizonDays = 0
	}
	if !date.After(now.AddDate(0, 0, horizonDays)) {
		return ClassWarning
	}
	return ClassOK
}

// ClassifyDay is Classify at calendar-day granularity: a date equal to today
// is not overdue.
func ClassifyDay(date *time.Time, now time.Time, horizonDays int) DateClass {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date == nil || date.IsZero() {
		return ClassNone
	}
	dy, dm, dd := date.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return Classify(&day, today, horizonDays)
}
