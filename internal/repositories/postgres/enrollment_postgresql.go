package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== BASIC CRUD OPERATIONS =====

func (r *enrollmentRepository) Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error {
	db := r.getDB(tx)

	// A duplicate (student, course, term) trips the unique index and comes
	// back as gorm.ErrDuplicatedKey for the caller to classify.
	if err := db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return handleDBError(err, "create enrollment")
	}
	return nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Enrollment, error) {
	db := r.getDB(tx)
	var enrollment models.Enrollment
	if err := db.WithContext(ctx).First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get enrollment by id")
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.EnrollmentFilters) ([]*models.Enrollment, int64, error) {
	db := r.getDB(tx)
	var enrollments []*models.Enrollment
	var total int64

	query := db.WithContext(ctx).Model(&models.Enrollment{})
	query = applyEnrollmentFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count enrollments")
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&enrollments).Error; err != nil {
		return nil, 0, handleDBError(err, "list enrollments")
	}

	return enrollments, total, nil
}

// ===== GRADE OPERATIONS =====

func (r *enrollmentRepository) UpdateGrades(ctx context.Context, tx *gorm.DB, id string, update repositories.GradeUpdate) error {
	updates := map[string]interface{}{}
	if update.P1 != nil {
		updates["grade_p1"] = *update.P1
	}
	if update.P2 != nil {
		updates["grade_p2"] = *update.P2
	}
	if update.Exam != nil {
		updates["grade_exam"] = *update.Exam
	}
	if update.Final != nil {
		updates["final_grade"] = *update.Final
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return handleDBError(result.Error, "update enrollment grades")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update enrollment grades")
	}

	return nil
}

func (r *enrollmentRepository) UpdateFinalGrade(ctx context.Context, tx *gorm.DB, id string, grade int) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", id).
		Update("final_grade", grade)
	if result.Error != nil {
		return handleDBError(result.Error, "update final grade")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update final grade")
	}
	return nil
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.EnrollmentStatus) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return handleDBError(result.Error, "update enrollment status")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update enrollment status")
	}
	return nil
}

// ===== HISTORY AND ROSTER =====

func (r *enrollmentRepository) GetHistoryByStudent(ctx context.Context, tx *gorm.DB, studentID string) ([]*repositories.KardexEntry, error) {
	db := r.getDB(tx)
	var entries []*repositories.KardexEntry

	if err := db.WithContext(ctx).
		Table("enrollments e").
		Select(`e.id AS enrollment_id, e.course_id, c.name AS course_name,
			c.code AS course_code, c.credits, c.semester, e.term, e.status,
			e.grade_p1, e.grade_p2, e.grade_exam, e.final_grade`).
		Joins("INNER JOIN courses c ON c.id = e.course_id").
		Where("e.student_id = ?", studentID).
		Order("e.term DESC, c.semester ASC, c.name ASC").
		Scan(&entries).Error; err != nil {
		return nil, handleDBError(err, "get student history")
	}

	return entries, nil
}

func (r *enrollmentRepository) GetRosterByCourse(ctx context.Context, tx *gorm.DB, courseID string, term *string) ([]*repositories.RosterEntry, error) {
	db := r.getDB(tx)
	var entries []*repositories.RosterEntry

	query := db.WithContext(ctx).
		Table("enrollments e").
		Select(`e.id AS enrollment_id, e.student_id, u.name AS student_name,
			u.carnet, e.term, e.status,
			e.grade_p1, e.grade_p2, e.grade_exam, e.final_grade`).
		Joins("INNER JOIN users u ON u.id = e.student_id").
		Where("e.course_id = ?", courseID)

	if term != nil {
		query = query.Where("e.term = ?", *term)
	}

	if err := query.
		Order("u.name ASC").
		Scan(&entries).Error; err != nil {
		return nil, handleDBError(err, "get course roster")
	}

	return entries, nil
}
