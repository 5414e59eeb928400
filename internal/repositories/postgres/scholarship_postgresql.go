package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type scholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipPostgreSQL(db *gorm.DB) repositories.ScholarshipRepository {
	return &scholarshipRepository{db: db}
}

func (r *scholarshipRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== SCHOLARSHIP CRUD =====

func (r *scholarshipRepository) Create(ctx context.Context, tx *gorm.DB, scholarship *models.Scholarship) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(scholarship).Error; err != nil {
		return handleDBError(err, "create scholarship")
	}
	return nil
}

func (r *scholarshipRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Scholarship, error) {
	db := r.getDB(tx)
	var scholarship models.Scholarship
	if err := db.WithContext(ctx).First(&scholarship, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get scholarship by id")
	}
	return &scholarship, nil
}

func (r *scholarshipRepository) ListByCampus(ctx context.Context, tx *gorm.DB, campusID string, activeOnly bool) ([]*models.Scholarship, error) {
	db := r.getDB(tx)
	var scholarships []*models.Scholarship

	query := db.WithContext(ctx).Where("campus_id = ?", campusID)
	if activeOnly {
		query = query.Where("active = true")
	}

	if err := query.
		Order("name ASC").
		Find(&scholarships).Error; err != nil {
		return nil, handleDBError(err, "list scholarships by campus")
	}

	return scholarships, nil
}

func (r *scholarshipRepository) Update(ctx context.Context, tx *gorm.DB, id string, update repositories.ScholarshipUpdate) error {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Requirements != nil {
		updates["requirements"] = *update.Requirements
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Active != nil {
		updates["active"] = *update.Active
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Scholarship{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return handleDBError(result.Error, "update scholarship")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update scholarship")
	}

	return nil
}

func (r *scholarshipRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.Scholarship{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete scholarship")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete scholarship")
	}
	return nil
}

// ===== APPLICATION OPERATIONS =====

func (r *scholarshipRepository) CreateApplication(ctx context.Context, tx *gorm.DB, app *models.ScholarshipApplication) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(app).Error; err != nil {
		return handleDBError(err, "create scholarship application")
	}
	return nil
}

func (r *scholarshipRepository) GetApplicationByID(ctx context.Context, tx *gorm.DB, id string) (*models.ScholarshipApplication, error) {
	db := r.getDB(tx)
	var app models.ScholarshipApplication
	if err := db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get scholarship application by id")
	}
	return &app, nil
}

func (r *scholarshipRepository) ListApplications(ctx context.Context, tx *gorm.DB, filters repositories.ApplicationFilters) ([]*models.ScholarshipApplication, int64, error) {
	db := r.getDB(tx)
	var apps []*models.ScholarshipApplication
	var total int64

	query := db.WithContext(ctx).Model(&models.ScholarshipApplication{})
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.ScholarshipID != nil {
		query = query.Where("scholarship_id = ?", *filters.ScholarshipID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.CampusID != nil {
		query = query.Where(
			"scholarship_id IN (?)",
			db.Table("scholarships").Select("id").Where("campus_id = ?", *filters.CampusID),
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count scholarship applications")
	}

	query = query.Order("date DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&apps).Error; err != nil {
		return nil, 0, handleDBError(err, "list scholarship applications")
	}

	return apps, total, nil
}

func (r *scholarshipRepository) UpdateApplicationStatus(ctx context.Context, tx *gorm.DB, id string, status models.ApplicationStatus) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.ScholarshipApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return handleDBError(result.Error, "update application status")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update application status")
	}
	return nil
}

func (r *scholarshipRepository) HasApplication(ctx context.Context, tx *gorm.DB, studentID, scholarshipID string) (bool, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.ScholarshipApplication{}).
		Where("student_id = ? AND scholarship_id = ?", studentID, scholarshipID).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check existing application")
	}

	return count > 0, nil
}
