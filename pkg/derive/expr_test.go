package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/pkg/expression"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

func TestExprFilter(t *testing.T) {
	engine := expression.NewEngine().WithClock(func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
	soon := models.NewDate(2024, time.June, 20)
	docs := []models.ControlledDocument{
		{ID: "1", Title: "A", Department: "HR", Status: "active", NextReviewDate: &soon},
		{ID: "2", Title: "B", Department: "HR", Status: "draft", NextReviewDate: &soon},
		{ID: "3", Title: "C", Department: "HR", Status: "active"},
	}

	f, err := NewExprFilter(engine, `status == "active" && DAYS_UNTIL(next_review_date) <= 30`, models.ControlledDocument{})
	require.NoError(t, err)

	got := FilterExpr(docs, f)
	require.Len(t, got, 1, "a missing date fails evaluation and does not match")
	assert.Equal(t, "1", got[0].ID)
}

func TestExprFilter_CompileErrorIsValidation(t *testing.T) {
	_, err := NewExprFilter(expression.NewEngine(), `status ==`, models.Employee{})

	var vf *apperrors.ValidationFailure
	require.ErrorAs(t, err, &vf)
	assert.Contains(t, vf.Fields, "expression")
}

func TestFilterExpr_NilKeepsAll(t *testing.T) {
	docs := sampleDocs()
	assert.Len(t, FilterExpr(docs, nil), len(docs))
}

func TestRecordEnv(t *testing.T) {
	env := RecordEnv(models.ControlledDocument{ID: "d1", Title: "T", Status: "draft"})

	assert.Equal(t, "d1", env["id"])
	assert.Equal(t, "T", env["title"])
	assert.Equal(t, "", env["owner_name"])
	assert.Equal(t, "draft", env["status"])
	assert.Equal(t, "", env["next_review_date"])
}
