package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/models"
)

func employeeView() listview.View[models.Employee] {
	state := models.NewFilterState(15)
	state.SetFieldFilter(models.FieldDepartment, "HR")
	state.SetSearch("asha")
	records := []models.Employee{{ID: "e1", EmployeeCode: "E-001", Name: "Asha Rao", Department: "HR", Status: "active"}}
	return listview.View[models.Employee]{
		State:      state,
		Records:    records,
		Visible:    records,
		Total:      31,
		LastPage:   3,
		Statistics: models.Statistics{"total": 31.0, "active_percent": 87.5},
		Loaded:     true,
	}
}

func TestFooter(t *testing.T) {
	view := employeeView()
	got := Footer(view.State, view.Total, 1)
	assert.Equal(t, `Page 1 of 3 · 31 records · 1 shown · filters: department=HR · search: "asha"`, got)

	assert.Equal(t, "Page 1 of 1 · 0 records", Footer(models.NewFilterState(15), 0, -1))
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	view := employeeView()
	view.LastErr = errors.New("fetch failure: list employees failed (502)")

	List(&buf, view, EmployeeColumns(), nil)

	out := buf.String()
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "E-001")
	assert.Contains(t, strings.ToLower(out), "active percent")
	assert.Contains(t, out, "87.5")
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "showing last loaded data")
}

func TestList_Empty(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, listview.View[models.Employee]{State: models.NewFilterState(15)}, EmployeeColumns(), nil)
	assert.Contains(t, buf.String(), "No records found")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, employeeView()))

	var got struct {
		Page     int               `json:"page"`
		LastPage int               `json:"last_page"`
		Total    int               `json:"total"`
		Filters  map[string]string `json:"filters"`
		Search   string            `json:"search"`
		Data     []models.Employee `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 3, got.LastPage)
	assert.Equal(t, 31, got.Total)
	assert.Equal(t, map[string]string{"department": "HR"}, got.Filters)
	assert.Equal(t, "asha", got.Search)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "e1", got.Data[0].ID)
}

func TestJSON_EmptyDataIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, listview.View[models.Employee]{State: models.NewFilterState(15)}))
	assert.Contains(t, buf.String(), `"data": []`)
}

func TestLeaves(t *testing.T) {
	anchor := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	today := models.DateOf(anchor)
	leaves := []models.Leave{
		{ID: "l1", UserID: "u1", EmployeeName: "Me", LeaveType: "Sick Leave", FromDate: today, ToDate: today},
		{ID: "l2", UserID: "u2", EmployeeName: "Ravi", LeaveType: "Sick Leave", FromDate: today, ToDate: today.AddDays(1)},
	}

	var buf bytes.Buffer
	Leaves(&buf, derive.SummarizeUpdates(anchor, 7, "u1", leaves))

	out := buf.String()
	assert.Contains(t, out, "On leave today (2024-03-11)")
	assert.Contains(t, out, "You are on Sick Leave today")
	assert.Contains(t, out, "Ravi (2024-03-11 → 2024-03-12)")
	assert.Contains(t, out, "On leave in the next 7 days (2024-03-12 – 2024-03-18)")
	assert.Equal(t, 1, strings.Count(out, "You are on"))
}

func TestSalary(t *testing.T) {
	var buf bytes.Buffer
	Salary(&buf, models.SalaryBreakdown{Basic: 30000, HRA: 12000, Gross: 42000, PF: 3600, Net: 38400})

	out := buf.String()
	assert.Contains(t, out, "42000.00")
	assert.Contains(t, out, "-3600.00")
	assert.Contains(t, out, "38400.00")
	assert.NotContains(t, out, "-0.00")
}
