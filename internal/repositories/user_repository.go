package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

// UserRepository owns user records including credential storage.
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	GetByEmailAndCampus(ctx context.Context, tx *gorm.DB, email, campusID string) (*models.User, error)

	List(ctx context.Context, tx *gorm.DB, filters UserFilters) ([]*models.User, int64, error)

	UpdateProfile(ctx context.Context, tx *gorm.DB, id string, update UserProfileUpdate) error
	UpdatePassword(ctx context.Context, tx *gorm.DB, id string, passwordHash string) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error

	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}
