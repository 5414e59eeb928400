package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendancePostgreSQL(db *gorm.DB) repositories.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *attendanceRepository) CreateBatch(ctx context.Context, tx *gorm.DB, records []*models.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	db := r.getDB(tx)
	if err := db.WithContext(ctx).CreateInBatches(records, 100).Error; err != nil {
		return handleDBError(err, "create attendance records")
	}
	return nil
}

func (r *attendanceRepository) DeleteByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).
		Where("course_id = ? AND date = ?", courseID, date).
		Delete(&models.AttendanceRecord{}).Error; err != nil {
		return handleDBError(err, "delete attendance records")
	}
	return nil
}

func (r *attendanceRepository) GetByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) ([]*models.AttendanceRecord, error) {
	db := r.getDB(tx)
	var records []*models.AttendanceRecord

	if err := db.WithContext(ctx).
		Where("course_id = ? AND date = ?", courseID, date).
		Order("student_id ASC").
		Find(&records).Error; err != nil {
		return nil, handleDBError(err, "get attendance by course and date")
	}

	return records, nil
}

func (r *attendanceRepository) GetByStudent(ctx context.Context, tx *gorm.DB, studentID string, courseID *string) ([]*models.AttendanceRecord, error) {
	db := r.getDB(tx)
	var records []*models.AttendanceRecord

	query := db.WithContext(ctx).Where("student_id = ?", studentID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}

	if err := query.
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, handleDBError(err, "get attendance by student")
	}

	return records, nil
}
