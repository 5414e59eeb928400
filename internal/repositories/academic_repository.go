package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

type CareerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, career *models.Career) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Career, error)
	ListByCampus(ctx context.Context, tx *gorm.DB, campusID string) ([]*models.Career, error)
	Update(ctx context.Context, tx *gorm.DB, career *models.Career) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *models.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Course, error)
	List(ctx context.Context, tx *gorm.DB, filters CourseFilters) ([]*models.Course, int64, error)
	Update(ctx context.Context, tx *gorm.DB, id string, update CourseUpdate) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error

	// Pensum returns a career's curriculum ordered by semester.
	Pensum(ctx context.Context, tx *gorm.DB, careerID string) ([]*models.Course, error)

	// GetAvailable returns campus courses the student is not already
	// enrolled in for the given term.
	GetAvailable(ctx context.Context, tx *gorm.DB, campusID, studentID, term string) ([]*models.Course, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, resource *models.CourseResource) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CourseResource, error)
	ListByCourse(ctx context.Context, tx *gorm.DB, courseID string) ([]*models.CourseResource, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}
