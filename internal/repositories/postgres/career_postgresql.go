package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type careerRepository struct {
	db *gorm.DB
}

func NewCareerPostgreSQL(db *gorm.DB) repositories.CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *careerRepository) Create(ctx context.Context, tx *gorm.DB, career *models.Career) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(career).Error; err != nil {
		return handleDBError(err, "create career")
	}
	return nil
}

func (r *careerRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Career, error) {
	db := r.getDB(tx)
	var career models.Career
	if err := db.WithContext(ctx).First(&career, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get career by id")
	}
	return &career, nil
}

func (r *careerRepository) ListByCampus(ctx context.Context, tx *gorm.DB, campusID string) ([]*models.Career, error) {
	db := r.getDB(tx)
	var careers []*models.Career

	if err := db.WithContext(ctx).
		Where("campus_id = ?", campusID).
		Order("name ASC").
		Find(&careers).Error; err != nil {
		return nil, handleDBError(err, "list careers by campus")
	}

	return careers, nil
}

func (r *careerRepository) Update(ctx context.Context, tx *gorm.DB, career *models.Career) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(career).Error; err != nil {
		return handleDBError(err, "update career")
	}
	return nil
}

func (r *careerRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.Career{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete career")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete career")
	}
	return nil
}
