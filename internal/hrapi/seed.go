package hrapi

import (
	"fmt"
	"log"
	"time"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"
)

// Fixture credentials created by Seed.
const (
	SeedAdminEmail    = "admin@aerohr.local"
	SeedAdminPassword = "Admin@123"
	SeedAdminID       = "u-admin"
)

var (
	seedDepartments = []string{"HR", "Quality", "Engineering", "Finance"}
	seedNames       = []string{"Asha Rao", "Vikram Nair", "Meera Iyer", "Rohan Das", "Priya Menon", "Karan Shah"}
	seedLeaveTypes  = []string{"Casual Leave", "Sick Leave", "Earned Leave"}
)

// Seed fills the store with fixture data anchored on today so review
// windows and leave updates have something to show.
func Seed(s *Store, today time.Time) error {
	anchor := models.DateOf(today)
	if err := s.Users.Add(UserSession{ID: SeedAdminID, Name: "Admin", Email: SeedAdminEmail, Role: "hr_admin"}, SeedAdminPassword); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	statuses := constants.GetAllStatuses()
	for i := 0; i < 42; i++ {
		review := anchor.AddDays(i*3 - 20)
		effective := anchor.AddDays(-365 + i)
		doc := models.ControlledDocument{
			DocumentNumber: fmt.Sprintf("QD-%04d", i+1),
			Title:          fmt.Sprintf("Procedure %d", i+1),
			DocumentType:   []string{"SOP", "Policy", "Form"}[i%3],
			Category:       []string{"Quality", "Safety", "HR"}[i%3],
			Department:     seedDepartments[i%len(seedDepartments)],
			Status:         statuses[i%len(statuses)],
			Version:        fmt.Sprintf("%d.0", i%4+1),
			OwnerName:      seedNames[i%len(seedNames)],
			EffectiveDate:  &effective,
		}
		if i%7 != 6 {
			doc.NextReviewDate = &review
		}
		s.Documents.Insert(doc)
	}

	for i := 0; i < 24; i++ {
		expiry := anchor.AddDays(i*5 - 30)
		done := anchor.AddDays(-200 + i)
		s.Training.Insert(models.TrainingRecord{
			EmployeeCode:            fmt.Sprintf("EMP%03d", i%len(seedNames)+1),
			EmployeeName:            seedNames[i%len(seedNames)],
			CourseTitle:             []string{"GMP Basics", "Fire Safety", "Data Privacy"}[i%3],
			Provider:                "Internal",
			TrainingType:            []string{"induction", "refresher", "certification"}[i%3],
			Department:              seedDepartments[i%len(seedDepartments)],
			Status:                  statuses[i%len(statuses)],
			CompletionDate:          &done,
			CertificationExpiryDate: &expiry,
		})
	}

	for i, name := range seedNames {
		joined := anchor.AddDays(-400 + i*60)
		probation := joined.AddDays(180)
		status := constants.EmployeeActive
		if probation.After(anchor.Time) {
			status = constants.EmployeeOnProbation
		}
		s.Employees.Insert(models.Employee{
			ID:               fmt.Sprintf("u-%d", i+1),
			EmployeeCode:     fmt.Sprintf("EMP%03d", i+1),
			Name:             name,
			Email:            fmt.Sprintf("employee%d@aerohr.local", i+1),
			Designation:      "Associate",
			Department:       seedDepartments[i%len(seedDepartments)],
			EmploymentType:   []string{"full_time", "contract"}[i%2],
			Status:           status,
			DateOfJoining:    &joined,
			ProbationEndDate: &probation,
		})
	}

	attendance := []string{constants.AttendancePresent, constants.AttendanceLate, constants.AttendanceAbsent, constants.AttendanceHalfDay}
	for d := 0; d < 3; d++ {
		for i, name := range seedNames {
			row := models.AttendanceRow{
				UserID:       fmt.Sprintf("u-%d", i+1),
				EmployeeName: name,
				Department:   seedDepartments[i%len(seedDepartments)],
				Date:         anchor.AddDays(-d),
				Status:       attendance[(i+d)%len(attendance)],
			}
			if row.Status != constants.AttendanceAbsent {
				row.PunchIn, row.PunchOut, row.WorkHours = "09:30", "18:00", 8.5
			}
			s.Attendance.Insert(row)
		}
	}

	for i, name := range seedNames {
		from := anchor.AddDays(i - 1)
		s.Leaves.Insert(models.Leave{
			UserID:       fmt.Sprintf("u-%d", i+1),
			EmployeeName: name,
			LeaveType:    seedLeaveTypes[i%len(seedLeaveTypes)],
			FromDate:     from,
			ToDate:       from.AddDays(i % 3),
			Status:       []string{constants.LeaveApproved, constants.LeaveApproved, constants.LeavePending}[i%3],
		})
	}

	log.Printf("🌱 Seeded %d documents, %d training records, %d employees",
		s.Documents.Len(), s.Training.Len(), s.Employees.Len())
	return nil
}
