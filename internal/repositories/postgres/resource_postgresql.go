package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type resourceRepository struct {
	db *gorm.DB
}

func NewResourcePostgreSQL(db *gorm.DB) repositories.ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *resourceRepository) Create(ctx context.Context, tx *gorm.DB, resource *models.CourseResource) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(resource).Error; err != nil {
		return handleDBError(err, "create course resource")
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CourseResource, error) {
	db := r.getDB(tx)
	var resource models.CourseResource
	if err := db.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get course resource by id")
	}
	return &resource, nil
}

func (r *resourceRepository) ListByCourse(ctx context.Context, tx *gorm.DB, courseID string) ([]*models.CourseResource, error) {
	db := r.getDB(tx)
	var resources []*models.CourseResource

	if err := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, handleDBError(err, "list course resources")
	}

	return resources, nil
}

func (r *resourceRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.CourseResource{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete course resource")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete course resource")
	}
	return nil
}
