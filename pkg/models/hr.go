package models

import (
	"time"

	"github.com/aerohr/console/pkg/constants"
)

// Field names shared by filters, search keys and the API payloads.
const (
	FieldID               = "id"
	FieldStatus           = "status"
	FieldDepartment       = "department"
	FieldDocumentType     = "document_type"
	FieldCategory         = "category"
	FieldDocumentNumber   = "document_number"
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldOwnerName        = "owner_name"
	FieldNextReviewDate   = "next_review_date"
	FieldEffectiveDate    = "effective_date"
	FieldEmployeeName     = "employee_name"
	FieldEmployeeCode     = "employee_code"
	FieldCourseTitle      = "course_title"
	FieldProvider         = "provider"
	FieldTrainingType     = "training_type"
	FieldCompletionDate   = "completion_date"
	FieldCertExpiryDate   = "certification_expiry_date"
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldDesignation      = "designation"
	FieldEmploymentType   = "employment_type"
	FieldDateOfJoining    = "date_of_joining"
	FieldProbationEndDate = "probation_end_date"
	FieldUserID           = "user_id"
	FieldDate             = "date"
	FieldLeaveType        = "leave_type"
	FieldFromDate         = "from_date"
	FieldToDate           = "to_date"
)

// ControlledDocument is a compliance document under review control.
type ControlledDocument struct {
	ID             string `json:"id"`
	DocumentNumber string `json:"document_number"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DocumentType   string `json:"document_type"`
	Category       string `json:"category"`
	Department     string `json:"department"`
	Status         string `json:"status"`
	Version        string `json:"version,omitempty"`
	OwnerName      string `json:"owner_name,omitempty"`
	EffectiveDate  *Date  `json:"effective_date,omitempty"`
	NextReviewDate *Date  `json:"next_review_date"`
}

func (d ControlledDocument) RecordID() string       { return d.ID }
func (d ControlledDocument) WorkflowStatus() string { return d.Status }

func (d ControlledDocument) SearchFields() map[string]*string {
	return map[string]*string{
		FieldTitle:          strPtr(d.Title),
		FieldDescription:    strPtr(d.Description),
		FieldDocumentNumber: strPtr(d.DocumentNumber),
		FieldOwnerName:      strPtr(d.OwnerName),
	}
}

func (d ControlledDocument) FilterFields() map[string]string {
	return map[string]string{
		FieldStatus:       d.Status,
		FieldDocumentType: d.DocumentType,
		FieldCategory:     d.Category,
		FieldDepartment:   d.Department,
	}
}

func (d ControlledDocument) DateFields() map[string]*time.Time {
	return map[string]*time.Time{
		FieldEffectiveDate:  d.EffectiveDate.TimePtr(),
		FieldNextReviewDate: d.NextReviewDate.TimePtr(),
	}
}

// TrainingRecord is an employee's attendance of a course or certification.
type TrainingRecord struct {
	ID                      string `json:"id"`
	EmployeeName            string `json:"employee_name"`
	EmployeeCode            string `json:"employee_code,omitempty"`
	CourseTitle             string `json:"course_title"`
	Provider                string `json:"provider,omitempty"`
	TrainingType            string `json:"training_type"`
	Department              string `json:"department"`
	Status                  string `json:"status"`
	CompletionDate          *Date  `json:"completion_date,omitempty"`
	CertificationExpiryDate *Date  `json:"certification_expiry_date"`
}

func (t TrainingRecord) RecordID() string       { return t.ID }
func (t TrainingRecord) WorkflowStatus() string { return t.Status }

func (t TrainingRecord) SearchFields() map[string]*string {
	return map[string]*string{
		FieldEmployeeName: strPtr(t.EmployeeName),
		FieldEmployeeCode: strPtr(t.EmployeeCode),
		FieldCourseTitle:  strPtr(t.CourseTitle),
		FieldProvider:     strPtr(t.Provider),
	}
}

func (t TrainingRecord) FilterFields() map[string]string {
	return map[string]string{
		FieldStatus:       t.Status,
		FieldTrainingType: t.TrainingType,
		FieldDepartment:   t.Department,
	}
}

func (t TrainingRecord) DateFields() map[string]*time.Time {
	return map[string]*time.Time{
		FieldCompletionDate: t.CompletionDate.TimePtr(),
		FieldCertExpiryDate: t.CertificationExpiryDate.TimePtr(),
	}
}

// Employee is a row of the employee directory.
type Employee struct {
	ID               string `json:"id"`
	EmployeeCode     string `json:"employee_code"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Designation      string `json:"designation,omitempty"`
	Department       string `json:"department"`
	EmploymentType   string `json:"employment_type"`
	Status           string `json:"status"`
	DateOfJoining    *Date  `json:"date_of_joining,omitempty"`
	ProbationEndDate *Date  `json:"probation_end_date"`
}

func (e Employee) RecordID() string { return e.ID }

func (e Employee) SearchFields() map[string]*string {
	return map[string]*string{
		FieldName:         strPtr(e.Name),
		FieldEmail:        strPtr(e.Email),
		FieldEmployeeCode: strPtr(e.EmployeeCode),
		FieldPhone:        strPtr(e.Phone),
		FieldDesignation:  strPtr(e.Designation),
	}
}

func (e Employee) FilterFields() map[string]string {
	return map[string]string{
		FieldStatus:         e.Status,
		FieldDepartment:     e.Department,
		FieldEmploymentType: e.EmploymentType,
	}
}

func (e Employee) DateFields() map[string]*time.Time {
	return map[string]*time.Time{
		FieldDateOfJoining:    e.DateOfJoining.TimePtr(),
		FieldProbationEndDate: e.ProbationEndDate.TimePtr(),
	}
}

// AttendanceRow is one employee's attendance on one day.
type AttendanceRow struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Date         Date    `json:"date"`
	Status       string  `json:"status"`
	PunchIn      string  `json:"punch_in,omitempty"`
	PunchOut     string  `json:"punch_out,omitempty"`
	WorkHours    float64 `json:"work_hours"`
}

func (a AttendanceRow) RecordID() string { return a.ID }

func (a AttendanceRow) SearchFields() map[string]*string {
	return map[string]*string{
		FieldEmployeeName: strPtr(a.EmployeeName),
		FieldUserID:       strPtr(a.UserID),
	}
}

func (a AttendanceRow) FilterFields() map[string]string {
	return map[string]string{
		FieldStatus:     a.Status,
		FieldDepartment: a.Department,
		FieldDate:       a.Date.String(),
	}
}

func (a AttendanceRow) DateFields() map[string]*time.Time {
	return map[string]*time.Time{
		FieldDate: a.Date.TimePtr(),
	}
}

// Leave is an approved or pending absence interval, inclusive on both ends.
type Leave struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	FromDate     Date   `json:"from_date"`
	ToDate       Date   `json:"to_date"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

func (l Leave) RecordID() string { return l.ID }

func (l Leave) SearchFields() map[string]*string {
	return map[string]*string{
		FieldEmployeeName: strPtr(l.EmployeeName),
		FieldLeaveType:    strPtr(l.LeaveType),
	}
}

func (l Leave) FilterFields() map[string]string {
	return map[string]string{
		FieldStatus:    l.Status,
		FieldLeaveType: l.LeaveType,
		FieldUserID:    l.UserID,
	}
}

func (l Leave) DateFields() map[string]*time.Time {
	return map[string]*time.Time{
		FieldFromDate: l.FromDate.TimePtr(),
		FieldToDate:   l.ToDate.TimePtr(),
	}
}

// ActiveOn reports whether the leave covers day d (inclusive on both ends).
func (l Leave) ActiveOn(d Date) bool {
	return !d.Before(l.FromDate.Time) && !d.After(l.ToDate.Time)
}

// Overlaps reports whether the leave intersects [from, to].
func (l Leave) Overlaps(from, to Date) bool {
	return !l.ToDate.Before(from.Time) && !l.FromDate.After(to.Time)
}

// IsApproved reports whether the leave counts towards availability summaries.
func (l Leave) IsApproved() bool {
	return l.Status == "" || l.Status == constants.LeaveApproved
}
