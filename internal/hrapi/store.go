package hrapi

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/models"
	"github.com/aerohr/console/pkg/utils"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// Collection is the in-memory table of one list resource. Records keep
// insertion order, which is the order the list endpoint returns.
type Collection[T models.Record] struct {
	resource constants.Resource
	// Columns are the JSON field names exported to spreadsheets, in order.
	Columns []string
	// DateField is classified into review-window statistics.
	DateField string
	setStatus func(T, string) T
	setID     func(T, string) T

	mu      sync.RWMutex
	records []T
	now     func() time.Time
}

// NewCollection creates an empty collection. setStatus returns a copy of a
// record with its status replaced; setID assigns a generated id on insert.
func NewCollection[T models.Record](resource constants.Resource, columns []string, dateField string,
	setStatus func(T, string) T, setID func(T, string) T) *Collection[T] {
	return &Collection[T]{
		resource:  resource,
		Columns:   columns,
		DateField: dateField,
		setStatus: setStatus,
		setID:     setID,
		now:       time.Now,
	}
}

// Resource returns the resource name.
func (c *Collection[T]) Resource() constants.Resource { return c.resource }

// Insert appends records, assigning ids to those without one.
func (c *Collection[T]) Insert(records ...T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() == "" && c.setID != nil {
			r = c.setID(r, utils.GenerateID())
		}
		c.records = append(c.records, r)
		out = append(out, r)
	}
	return out
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// all returns every record matching fs (pagination ignored).
func (c *Collection[T]) all(fs models.FilterState) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.records) == 0 {
		return []T{}
	}
	return derive.Filter(c.records, fs, derive.SearchKeys(c.records[0]))
}

// List returns one page of the records matching fs plus the filtered total.
func (c *Collection[T]) List(fs models.FilterState) models.ListResponse[T] {
	matching := c.all(fs)
	perPage := fs.PerPage
	if perPage <= 0 {
		perPage = constants.DefaultPerPage
	}
	page := fs.Page
	if page < 1 {
		page = 1
	}
	// Past-the-end pages are empty; compare before multiplying so a huge page
	// number cannot overflow.
	start := len(matching)
	if page-1 <= len(matching)/perPage {
		start = min((page-1)*perPage, len(matching))
	}
	end := start + min(perPage, len(matching)-start)
	data := make([]T, end-start)
	copy(data, matching[start:end])
	return models.ListResponse[T]{
		Data:       data,
		Total:      len(matching),
		Statistics: c.Statistics(),
	}
}

// Export returns every record matching fs.
func (c *Collection[T]) Export(fs models.FilterState) []T {
	return c.all(fs)
}

// Get returns the record with id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.records {
		if r.RecordID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, apperrors.NewNotFoundError(string(c.resource), id)
}

// UpdateStatus replaces a record's status, enforcing the workflow lifecycle
// for workflow statuses.
func (c *Collection[T]) UpdateStatus(id, status string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if status == "" {
		return zero, apperrors.NewValidationError(constants.DefaultStatusField, "is required")
	}
	for i, r := range c.records {
		if r.RecordID() != id {
			continue
		}
		from := r.FilterFields()[constants.DefaultStatusField]
		if models.IsWorkflowStatus(from) && models.IsWorkflowStatus(status) {
			reactivate := constants.Status(from).IsTerminal() && status == string(constants.StatusActive)
			if err := models.CheckTransition(constants.Status(from), constants.Status(status), reactivate); err != nil {
				return zero, apperrors.NewConflictError(string(c.resource), err.Error())
			}
		}
		c.records[i] = c.setStatus(r, status)
		return c.records[i], nil
	}
	return zero, apperrors.NewNotFoundError(string(c.resource), id)
}

// Approve moves a pending_approval record to active.
func (c *Collection[T]) Approve(id string) (T, error) {
	rec, err := c.Get(id)
	if err != nil {
		return rec, err
	}
	if rec.FilterFields()[constants.DefaultStatusField] != string(constants.StatusPendingApproval) {
		var zero T
		return zero, apperrors.NewConflictError(string(c.resource), "only pending_approval records can be approved")
	}
	return c.UpdateStatus(id, string(constants.StatusActive))
}

// Delete removes the record with id.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(string(c.resource), id)
}

// Statistics computes the aggregate cards over the whole collection.
func (c *Collection[T]) Statistics() models.Statistics {
	c.mu.RLock()
	records := make([]T, len(c.records))
	copy(records, c.records)
	c.mu.RUnlock()

	stats := derive.PageStatistics(records, constants.DefaultStatusField, c.DateField, c.now(), constants.DefaultHorizonDays)
	active := 0
	for _, r := range records {
		switch r.FilterFields()[constants.DefaultStatusField] {
		case string(constants.StatusActive), string(constants.StatusPublished), constants.AttendancePresent:
			active++
		}
	}
	stats["active"] = float64(active)
	stats["active_percent"] = derive.Percent(active, len(records))
	return stats
}

// Row flattens a record into export cells following Columns.
func (c *Collection[T]) Row(r T) ([]interface{}, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	cols := c.Columns
	if len(cols) == 0 {
		for k := range m {
			cols = append(cols, k)
		}
		sort.Strings(cols)
	}
	row := make([]interface{}, len(cols))
	for i, k := range cols {
		if v, ok := m[k]; ok && v != nil {
			row[i] = v
		} else {
			row[i] = ""
		}
	}
	return row, nil
}

// Store holds every collection of one tenant.
type Store struct {
	Documents  *Collection[models.ControlledDocument]
	Training   *Collection[models.TrainingRecord]
	Employees  *Collection[models.Employee]
	Attendance *Collection[models.AttendanceRow]
	Leaves     *Collection[models.Leave]
	Users      *UserDirectory
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Documents: NewCollection(constants.ResourceControlledDocuments,
			[]string{"document_number", "title", "document_type", "category", "department", "status", "version", "owner_name", "effective_date", "next_review_date"},
			models.FieldNextReviewDate,
			func(d models.ControlledDocument, s string) models.ControlledDocument { d.Status = s; return d },
			func(d models.ControlledDocument, id string) models.ControlledDocument { d.ID = id; return d }),
		Training: NewCollection(constants.ResourceTrainingRecords,
			[]string{"employee_code", "employee_name", "course_title", "provider", "training_type", "department", "status", "completion_date", "certification_expiry_date"},
			models.FieldCertExpiryDate,
			func(t models.TrainingRecord, s string) models.TrainingRecord { t.Status = s; return t },
			func(t models.TrainingRecord, id string) models.TrainingRecord { t.ID = id; return t }),
		Employees: NewCollection(constants.ResourceEmployees,
			[]string{"employee_code", "name", "email", "phone", "designation", "department", "employment_type", "status", "date_of_joining", "probation_end_date"},
			models.FieldProbationEndDate,
			func(e models.Employee, s string) models.Employee { e.Status = s; return e },
			func(e models.Employee, id string) models.Employee { e.ID = id; return e }),
		Attendance: NewCollection(constants.ResourceAttendance,
			[]string{"date", "user_id", "employee_name", "department", "status", "punch_in", "punch_out", "work_hours"},
			"",
			func(a models.AttendanceRow, s string) models.AttendanceRow { a.Status = s; return a },
			func(a models.AttendanceRow, id string) models.AttendanceRow { a.ID = id; return a }),
		Leaves: NewCollection(constants.ResourceLeaves,
			[]string{"user_id", "employee_name", "leave_type", "from_date", "to_date", "status", "reason"},
			"",
			func(l models.Leave, s string) models.Leave { l.Status = s; return l },
			func(l models.Leave, id string) models.Leave { l.ID = id; return l }),
		Users: NewUserDirectory(),
	}
}

// LeavesBetween returns approved leaves overlapping [from, to].
func (s *Store) LeavesBetween(from, to models.Date) []models.Leave {
	s.Leaves.mu.RLock()
	defer s.Leaves.mu.RUnlock()
	out := []models.Leave{}
	for _, l := range s.Leaves.records {
		if l.IsApproved() && l.Overlaps(from, to) {
			out = append(out, l)
		}
	}
	return out
}
