package derive

import (
	"math"
	"time"

	"github.com/aerohr/console/pkg/models"
)

// Statistic keys derived locally when the server omits them.
const (
	StatTotal       = "total"
	StatOverdue     = "overdue"
	StatDueSoon     = "due_soon"
	StatNoDate      = "no_date"
	StatPercentSafe = "percent_ok"
)

// CountBy counts records per value of the categorical field key.
func CountBy[T models.Record](records []T, key string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.FilterFields()[key]]++
	}
	return counts
}

// Percent returns part/whole as a percentage rounded to one decimal, or 0 when
// whole is 0.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(whole)) / 10
}

// ClassCounts classifies dateField of every record.
func ClassCounts[T models.Record](records []T, dateField string, now time.Time, horizonDays int) map[DateClass]int {
	counts := map[DateClass]int{
		ClassNone:    0,
		ClassOverdue: 0,
		ClassWarning: 0,
		ClassOK:      0,
	}
	for _, r := range records {
		counts[ClassifyDay(r.DateFields()[dateField], now, horizonDays)]++
	}
	return counts
}

// PageStatistics derives the statistic cards for a page: a total, one count
// per status value ("status_<value>"), and the review-window counts of
// dateField when it is non-empty.
func PageStatistics[T models.Record](records []T, statusField, dateField string, now time.Time, horizonDays int) models.Statistics {
	stats := models.Statistics{StatTotal: float64(len(records))}
	if statusField != "" {
		for v, n := range CountBy(records, statusField) {
			if v == "" {
				continue
			}
			stats[statusField+"_"+v] = float64(n)
		}
	}
	if dateField != "" {
		classes := ClassCounts(records, dateField, now, horizonDays)
		stats[StatOverdue] = float64(classes[ClassOverdue])
		stats[StatDueSoon] = float64(classes[ClassWarning])
		stats[StatNoDate] = float64(classes[ClassNone])
		stats[StatPercentSafe] = Percent(classes[ClassOK], len(records))
	}
	return stats
}

// MergeStatistics overlays server statistics on derived ones; server values win.
func MergeStatistics(derived, server models.Statistics) models.Statistics {
	out := derived.Clone()
	if out == nil {
		out = models.Statistics{}
	}
	for k, v := range server {
		out[k] = v
	}
	return out
}
