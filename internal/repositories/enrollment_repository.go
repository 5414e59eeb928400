package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

// EnrollmentRepository persists enrollments. The composite unique index on
// (student_id, course_id, term) is the backstop against concurrent
// duplicate enrollment; Create surfaces it as a conflict error.
type EnrollmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Enrollment, error)
	List(ctx context.Context, tx *gorm.DB, filters EnrollmentFilters) ([]*models.Enrollment, int64, error)

	// UpdateGrades writes components and the derived final in one statement.
	UpdateGrades(ctx context.Context, tx *gorm.DB, id string, update GradeUpdate) error
	UpdateFinalGrade(ctx context.Context, tx *gorm.DB, id string, grade int) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.EnrollmentStatus) error

	GetHistoryByStudent(ctx context.Context, tx *gorm.DB, studentID string) ([]*KardexEntry, error)
	GetRosterByCourse(ctx context.Context, tx *gorm.DB, courseID string, term *string) ([]*RosterEntry, error)
}

// AttendanceRepository persists daily attendance sheets. Replacement of a
// (course, date) sheet is done by the caller inside one transaction:
// DeleteByCourseDate followed by CreateBatch.
type AttendanceRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, records []*models.AttendanceRecord) error
	DeleteByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) error
	GetByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) ([]*models.AttendanceRecord, error)
	GetByStudent(ctx context.Context, tx *gorm.DB, studentID string, courseID *string) ([]*models.AttendanceRecord, error)
}
