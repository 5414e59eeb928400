package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

// CampusRepository handles the tenancy root. Deleting a campus cascades to
// every dependent entity through foreign keys.
type CampusRepository interface {
	Create(ctx context.Context, tx *gorm.DB, campus *models.Campus) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Campus, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Campus, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Campus, error)
	Update(ctx context.Context, tx *gorm.DB, id string, update CampusUpdate) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}
