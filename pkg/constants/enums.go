package constants

// Status is the visible workflow status of a document, training record or job.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusPublished       Status = "published"
	StatusArchived        Status = "archived"
	StatusExpired         Status = "expired"
	StatusClosed          Status = "closed"
)

// GetAllStatuses returns all valid workflow statuses as a slice of strings
func GetAllStatuses() []string {
	return []string{
		string(StatusDraft),
		string(StatusPendingApproval),
		string(StatusActive),
		string(StatusPublished),
		string(StatusArchived),
		string(StatusExpired),
		string(StatusClosed),
	}
}

// IsTerminal reports whether normal workflow stops at s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusArchived, StatusExpired, StatusClosed:
		return true
	}
	return false
}

// Employee statuses
const (
	EmployeeActive      = "active"
	EmployeeInactive    = "inactive"
	EmployeeOnProbation = "probation"
	EmployeeTerminated  = "terminated"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceOnLeave = "on_leave"
	AttendanceHalfDay = "half_day"
)

// Leave statuses
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// Training statuses
const (
	TrainingScheduled  = "scheduled"
	TrainingInProgress = "in_progress"
	TrainingCompleted  = "completed"
)
