package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/cache"
	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type dashboardRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewDashboardPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.DashboardRepository {
	return &dashboardRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *dashboardRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== CAMPUS STATS =====

func (r *dashboardRepository) GetCampusStats(ctx context.Context, tx *gorm.DB, campusID string) (*repositories.CampusStats, error) {
	stats := &repositories.CampusStats{}

	if tx == nil {
		cacheKey := fmt.Sprintf("campus:%s:overview", campusID)
		err := r.cacheManager.Stats.CacheOrExecute(ctx, cacheKey, stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
			return r.fetchCampusStats(ctx, nil, campusID)
		})
		if err != nil {
			return nil, err
		}
		return stats, nil
	}

	return r.fetchCampusStats(ctx, tx, campusID)
}

func (r *dashboardRepository) fetchCampusStats(ctx context.Context, tx *gorm.DB, campusID string) (*repositories.CampusStats, error) {
	db := r.getDB(tx)
	stats := &repositories.CampusStats{}

	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("campus_id = ? AND role = ?", campusID, models.RoleStudent).
		Count(&stats.TotalStudents).Error; err != nil {
		return nil, handleDBError(err, "count campus students")
	}

	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("campus_id = ? AND role = ?", campusID, models.RoleProfessor).
		Count(&stats.TotalProfessors).Error; err != nil {
		return nil, handleDBError(err, "count campus professors")
	}

	if err := db.WithContext(ctx).
		Model(&models.Career{}).
		Where("campus_id = ?", campusID).
		Count(&stats.ActiveCareers).Error; err != nil {
		return nil, handleDBError(err, "count campus careers")
	}

	if err := db.WithContext(ctx).
		Model(&models.Course{}).
		Where("campus_id = ?", campusID).
		Count(&stats.TotalCourses).Error; err != nil {
		return nil, handleDBError(err, "count campus courses")
	}

	return stats, nil
}

// ===== PROFESSOR STATS =====

func (r *dashboardRepository) GetProfessorStats(ctx context.Context, tx *gorm.DB, professorID string) (*repositories.ProfessorStats, error) {
	db := r.getDB(tx)
	stats := &repositories.ProfessorStats{}

	if err := db.WithContext(ctx).
		Model(&models.Course{}).
		Where("professor_id = ?", professorID).
		Count(&stats.Classes).Error; err != nil {
		return nil, handleDBError(err, "count professor classes")
	}

	if err := db.WithContext(ctx).
		Table("enrollments e").
		Joins("INNER JOIN courses c ON c.id = e.course_id").
		Where("c.professor_id = ? AND e.status = ?", professorID, models.EnrollmentActive).
		Distinct("e.student_id").
		Count(&stats.Students).Error; err != nil {
		return nil, handleDBError(err, "count professor students")
	}

	return stats, nil
}

// ===== STUDENT STATS =====

func (r *dashboardRepository) GetStudentStats(ctx context.Context, tx *gorm.DB, studentID string) (*repositories.StudentStats, error) {
	db := r.getDB(tx)
	stats := &repositories.StudentStats{}

	// Enrollments with no grade yet do not drag the average down
	var avg *float64
	if err := db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Select("AVG(final_grade)").
		Where("student_id = ? AND final_grade IS NOT NULL", studentID).
		Scan(&avg).Error; err != nil {
		return nil, handleDBError(err, "get student grade average")
	}
	if avg != nil {
		stats.AverageGrade = *avg
	}

	if err := db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("student_id = ? AND status = ?", studentID, models.EnrollmentActive).
		Count(&stats.ActiveCourses).Error; err != nil {
		return nil, handleDBError(err, "count student active courses")
	}

	var credits *int64
	if err := db.WithContext(ctx).
		Table("enrollments e").
		Select("SUM(c.credits)").
		Joins("INNER JOIN courses c ON c.id = e.course_id").
		Where("e.student_id = ? AND e.status = ?", studentID, models.EnrollmentCompleted).
		Scan(&credits).Error; err != nil {
		return nil, handleDBError(err, "sum student credits")
	}
	if credits != nil {
		stats.TotalCredits = *credits
	}

	return stats, nil
}

// ===== SCHOLARSHIP ANALYSIS =====

func (r *dashboardRepository) GetScholarshipAnalysis(ctx context.Context, tx *gorm.DB, campusID string) (*repositories.ScholarshipAnalysis, error) {
	db := r.getDB(tx)
	analysis := &repositories.ScholarshipAnalysis{}

	// Budget committed through approved applications
	var budget *int64
	if err := db.WithContext(ctx).
		Table("scholarship_applications sa").
		Select("SUM(s.amount)").
		Joins("INNER JOIN scholarships s ON s.id = sa.scholarship_id").
		Where("s.campus_id = ? AND sa.status = ?", campusID, models.ApplicationApproved).
		Scan(&budget).Error; err != nil {
		return nil, handleDBError(err, "sum approved scholarship budget")
	}
	if budget != nil {
		analysis.TotalBudget = *budget
	}

	if err := db.WithContext(ctx).
		Table("scholarship_applications sa").
		Joins("INNER JOIN scholarships s ON s.id = sa.scholarship_id").
		Where("s.campus_id = ? AND sa.status = ?", campusID, models.ApplicationApproved).
		Count(&analysis.ActiveScholarshipCount).Error; err != nil {
		return nil, handleDBError(err, "count approved applications")
	}

	// Students with a qualifying grade and no application on record at all,
	// rejected ones included
	if err := db.WithContext(ctx).
		Table("users u").
		Joins("INNER JOIN enrollments e ON e.student_id = u.id").
		Where("u.campus_id = ? AND u.role = ?", campusID, models.RoleStudent).
		Where("e.final_grade >= ?", 85).
		Where("u.id NOT IN (?)", db.Table("scholarship_applications").Select("student_id")).
		Distinct("u.id").
		Count(&analysis.EligibleStudentsCount).Error; err != nil {
		return nil, handleDBError(err, "count eligible students")
	}

	return analysis, nil
}
