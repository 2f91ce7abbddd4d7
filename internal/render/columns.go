package render

import (
	"fmt"

	"github.com/aerohr/console/pkg/models"
)

// DocumentColumns lists controlled documents.
func DocumentColumns() []Column[models.ControlledDocument] {
	return []Column[models.ControlledDocument]{
		{Header: "Number", Value: func(d models.ControlledDocument) string { return d.DocumentNumber }},
		{Header: "Title", Value: func(d models.ControlledDocument) string { return d.Title }},
		{Header: "Type", Value: func(d models.ControlledDocument) string { return d.DocumentType }},
		{Header: "Department", Value: func(d models.ControlledDocument) string { return d.Department }},
		{Header: "Status", Value: func(d models.ControlledDocument) string { return d.Status }},
		{Header: "Next Review", Value: func(d models.ControlledDocument) string { return dateCell(d.NextReviewDate) }},
	}
}

// TrainingColumns lists training records.
func TrainingColumns() []Column[models.TrainingRecord] {
	return []Column[models.TrainingRecord]{
		{Header: "Employee", Value: func(t models.TrainingRecord) string { return t.EmployeeName }},
		{Header: "Course", Value: func(t models.TrainingRecord) string { return t.CourseTitle }},
		{Header: "Type", Value: func(t models.TrainingRecord) string { return t.TrainingType }},
		{Header: "Status", Value: func(t models.TrainingRecord) string { return t.Status }},
		{Header: "Completed", Value: func(t models.TrainingRecord) string { return dateCell(t.CompletionDate) }},
		{Header: "Cert Expiry", Value: func(t models.TrainingRecord) string { return dateCell(t.CertificationExpiryDate) }},
	}
}

// EmployeeColumns lists employees.
func EmployeeColumns() []Column[models.Employee] {
	return []Column[models.Employee]{
		{Header: "Code", Value: func(e models.Employee) string { return e.EmployeeCode }},
		{Header: "Name", Value: func(e models.Employee) string { return e.Name }},
		{Header: "Email", Value: func(e models.Employee) string { return e.Email }},
		{Header: "Department", Value: func(e models.Employee) string { return e.Department }},
		{Header: "Type", Value: func(e models.Employee) string { return e.EmploymentType }},
		{Header: "Status", Value: func(e models.Employee) string { return e.Status }},
		{Header: "Probation Ends", Value: func(e models.Employee) string { return dateCell(e.ProbationEndDate) }},
	}
}

// AttendanceColumns lists attendance rows.
func AttendanceColumns() []Column[models.AttendanceRow] {
	return []Column[models.AttendanceRow]{
		{Header: "Date", Value: func(a models.AttendanceRow) string { return a.Date.String() }},
		{Header: "Employee", Value: func(a models.AttendanceRow) string { return a.EmployeeName }},
		{Header: "Department", Value: func(a models.AttendanceRow) string { return a.Department }},
		{Header: "In", Value: func(a models.AttendanceRow) string { return a.PunchIn }},
		{Header: "Out", Value: func(a models.AttendanceRow) string { return a.PunchOut }},
		{Header: "Hours", Value: func(a models.AttendanceRow) string { return fmt.Sprintf("%.1f", a.WorkHours) }},
		{Header: "Status", Value: func(a models.AttendanceRow) string { return a.Status }},
	}
}
