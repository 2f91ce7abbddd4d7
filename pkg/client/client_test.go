package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

func TestListOf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/controlled-documents", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "15", q.Get("per_page"))
		assert.Equal(t, "HR", q.Get("department"))
		assert.Equal(t, "fire", q.Get("search"))
		assert.False(t, q.Has("status"), "\"all\" is not sent")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": "d1", "title": "Fire Safety", "status": "active", "next_review_date": "2024-07-01"},
				{"id": "d2", "title": "Fire Drill", "status": "draft", "next_review_date": nil},
			},
			"total":      42,
			"statistics": map[string]interface{}{"active": 30},
		})
	}))
	defer server.Close()

	c := NewHRClient(server.URL, WithToken("test-token"))
	fs := models.NewFilterState(15)
	fs.SetFieldFilter("department", "HR")
	fs.SetFieldFilter("status", constants.FilterAll)
	fs.SetSearch("fire")
	fs.SetPage(2, 42)

	page, err := ListOf[models.ControlledDocument](context.Background(), c, constants.ResourceControlledDocuments, fs)

	require.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "2024-07-01", page.Records[0].NextReviewDate.String())
	assert.Nil(t, page.Records[1].NextReviewDate)
	assert.Equal(t, 30.0, page.Statistics.Float("active"))
}

func TestList_ServerErrorIsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"maintenance","message":"down for maintenance"}`))
	}))
	defer server.Close()

	c := NewHRClient(server.URL)
	_, err := ListOf[models.Employee](context.Background(), c, constants.ResourceEmployees, models.NewFilterState(15))

	var ff *apperrors.FetchFailure
	require.ErrorAs(t, err, &ff)
	assert.Equal(t, http.StatusServiceUnavailable, ff.Status)
	assert.Equal(t, "down for maintenance", ff.Message)
}

func TestList_TimeoutIsFetchFailure(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewHRClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := ListOf[models.Employee](ctx, c, constants.ResourceEmployees, models.NewFilterState(15))

	var ff *apperrors.FetchFailure
	require.ErrorAs(t, err, &ff)
	assert.True(t, ff.Timeout())
}

func TestStatistics_AcceptsEnvelopeAndBareObject(t *testing.T) {
	for name, body := range map[string]string{
		"envelope": `{"statistics":{"total":42,"overdue":3}}`,
		"bare":     `{"total":42,"overdue":3}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/training-records/statistics", r.URL.Path)
				w.Write([]byte(body))
			}))
			defer server.Close()

			stats, err := NewHRClient(server.URL).Statistics(context.Background(), constants.ResourceTrainingRecords)
			require.NoError(t, err)
			assert.Equal(t, 42, stats.Int("total"))
			assert.Equal(t, 3, stats.Int("overdue"))
		})
	}
}

func TestMutations(t *testing.T) {
	var got []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "archived", body["status"])
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	c := NewHRClient(server.URL)
	ctx := context.Background()
	require.NoError(t, c.UpdateStatus(ctx, constants.ResourceControlledDocuments, "d1", "archived"))
	require.NoError(t, c.Approve(ctx, constants.ResourceControlledDocuments, "d2"))
	require.NoError(t, c.Delete(ctx, constants.ResourceEmployees, "e 1"))

	assert.Equal(t, []string{
		"PATCH /api/controlled-documents/d1",
		"POST /api/controlled-documents/d2/approve",
		"DELETE /api/employees/e 1",
	}, got)
}

func TestDelete_ConflictIsMutationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"record is referenced"}`))
	}))
	defer server.Close()

	err := NewHRClient(server.URL).Delete(context.Background(), constants.ResourceEmployees, "e1")

	var mf *apperrors.MutationFailure
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, http.StatusConflict, mf.Status)
	assert.Equal(t, "record is referenced", mf.Message)
}

func TestExport_SendsFiltersWithoutPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/export", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "HR", q.Get("department"))
		assert.Equal(t, "asha", q.Get("search"))
		assert.False(t, q.Has("page"))
		assert.False(t, q.Has("per_page"))

		w.Header().Set("Content-Type", constants.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="employees-20240601.xlsx"`)
		w.Write([]byte("PK\x03\x04payload"))
	}))
	defer server.Close()

	fs := models.NewFilterState(15)
	fs.SetFieldFilter("department", "HR")
	fs.SetSearch("asha")
	fs.SetPage(3, 100)

	data, name, err := NewHRClient(server.URL).Export(context.Background(), constants.ResourceEmployees, fs)
	require.NoError(t, err)
	assert.Equal(t, "employees-20240601.xlsx", name)
	assert.Equal(t, []byte("PK\x03\x04payload"), data)
}

func TestExport_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"json error body", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"export failed"}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", constants.ContentTypeXLSX)
		}},
		{"truncated body", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", constants.ContentTypeXLSX)
			w.Header().Set("Content-Length", "100")
			w.Write([]byte("PK"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			data, _, err := NewHRClient(server.URL).Export(context.Background(), constants.ResourceEmployees, models.NewFilterState(15))
			assert.Nil(t, data)
			assert.True(t, apperrors.IsExportFailure(err), "got %v", err)
		})
	}
}

func TestExportFilename_DefaultsAndStripsPaths(t *testing.T) {
	assert.Equal(t, "attendance.xlsx", exportFilename("", constants.ResourceAttendance))
	assert.Equal(t, "evil.xlsx", exportFilename(`attachment; filename="../../evil.xlsx"`, constants.ResourceAttendance))
	assert.Equal(t, "attendance.xlsx", exportFilename("garbage;;", constants.ResourceAttendance))
}

func TestListLeaves(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leaves", r.URL.Path)
		assert.Equal(t, "2024-03-11", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-03-18", r.URL.Query().Get("to"))
		w.Write([]byte(`{"data":[{"id":"l1","user_id":"u1","leave_type":"Sick Leave","from_date":"2024-03-11","to_date":"2024-03-12"}],"total":1}`))
	}))
	defer server.Close()

	from := models.NewDate(2024, time.March, 11)
	leaves, err := NewHRClient(server.URL).ListLeaves(context.Background(), from, from.AddDays(7))
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "2024-03-12", leaves[0].ToDate.String())
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid email or password"}`))
			return
		}
		w.Write([]byte(`{"token":"jwt-token"}`))
	}))
	defer server.Close()

	c := NewHRClient(server.URL)
	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	var unauthorized *apperrors.UnauthorizedError
	require.True(t, errors.As(err, &unauthorized))
	assert.Empty(t, c.Token)

	token, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "jwt-token", c.Token)
}
