package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

type ScholarshipRepository interface {
	Create(ctx context.Context, tx *gorm.DB, scholarship *models.Scholarship) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Scholarship, error)
	ListByCampus(ctx context.Context, tx *gorm.DB, campusID string, activeOnly bool) ([]*models.Scholarship, error)
	Update(ctx context.Context, tx *gorm.DB, id string, update ScholarshipUpdate) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error

	// Applications
	CreateApplication(ctx context.Context, tx *gorm.DB, app *models.ScholarshipApplication) error
	GetApplicationByID(ctx context.Context, tx *gorm.DB, id string) (*models.ScholarshipApplication, error)
	ListApplications(ctx context.Context, tx *gorm.DB, filters ApplicationFilters) ([]*models.ScholarshipApplication, int64, error)
	UpdateApplicationStatus(ctx context.Context, tx *gorm.DB, id string, status models.ApplicationStatus) error
	HasApplication(ctx context.Context, tx *gorm.DB, studentID, scholarshipID string) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Notification, error)

	// ListForRecipient returns direct plus broadcast notifications,
	// newest first.
	ListForRecipient(ctx context.Context, tx *gorm.DB, userID string, limit, offset int) ([]*models.Notification, error)
	List(ctx context.Context, tx *gorm.DB, filters NotificationFilters) ([]*models.Notification, int64, error)

	MarkRead(ctx context.Context, tx *gorm.DB, id string) error
	CountUnread(ctx context.Context, tx *gorm.DB, userID string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}
