package repositories

import (
	"context"

	"gorm.io/gorm"
)

// DashboardRepository aggregates read-only statistics. Implementations may
// serve results from cache; callers must treat the data as eventually
// consistent with the write path.
type DashboardRepository interface {
	GetCampusStats(ctx context.Context, tx *gorm.DB, campusID string) (*CampusStats, error)
	GetProfessorStats(ctx context.Context, tx *gorm.DB, professorID string) (*ProfessorStats, error)
	GetStudentStats(ctx context.Context, tx *gorm.DB, studentID string) (*StudentStats, error)
	GetScholarshipAnalysis(ctx context.Context, tx *gorm.DB, campusID string) (*ScholarshipAnalysis, error)
}
