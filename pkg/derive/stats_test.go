package derive

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/aerohr/console/pkg/models"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(5, 5))
}

func TestPageStatistics(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	past := models.NewDate(2024, time.May, 1)
	soon := models.NewDate(2024, time.June, 10)
	later := models.NewDate(2024, time.December, 1)
	docs := []models.ControlledDocument{
		{ID: "1", Status: "active", NextReviewDate: &past},
		{ID: "2", Status: "active", NextReviewDate: &soon},
		{ID: "3", Status: "draft", NextReviewDate: &later},
		{ID: "4", Status: "draft"},
	}

	got := PageStatistics(docs, models.FieldStatus, models.FieldNextReviewDate, now, 30)
	want := models.Statistics{
		StatTotal:       4.0,
		"status_active": 2.0,
		"status_draft":  2.0,
		StatOverdue:     1.0,
		StatDueSoon:     1.0,
		StatNoDate:      1.0,
		StatPercentSafe: 25.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PageStatistics mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeStatistics_ServerWins(t *testing.T) {
	derived := models.Statistics{"total": 4.0, "overdue": 1.0}
	server := models.Statistics{"total": 42.0, "active_percent": 61.9}

	got := MergeStatistics(derived, server)
	assert.Equal(t, 42.0, got.Float("total"))
	assert.Equal(t, 1.0, got.Float("overdue"))
	assert.Equal(t, 61.9, got.Float("active_percent"))
	assert.Equal(t, 4.0, derived.Float("total"), "inputs are not mutated")
}
