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

type courseRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CourseRepository {
	return &courseRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *courseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

var courseSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
	"code":       "code",
	"semester":   "semester",
}

// ===== BASIC CRUD OPERATIONS =====

func (r *courseRepository) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(course).Error; err != nil {
		return handleDBError(err, "create course")
	}

	cache.InvalidateCourseCache(ctx, r.cacheManager, course.ID, course.CampusID)
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Course, error) {
	if tx == nil {
		var cached models.Course
		if err := r.cacheManager.Course.Get(ctx, fmt.Sprintf("id:%s", id), &cached); err == nil {
			return &cached, nil
		}
	}

	db := r.getDB(tx)
	var course models.Course
	if err := db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get course by id")
	}

	if tx == nil {
		_ = r.cacheManager.Course.Set(ctx, fmt.Sprintf("id:%s", id), &course, cache.CourseCacheConfig.TTL)
	}

	return &course, nil
}

// ===== QUERY OPERATIONS =====

func (r *courseRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	db := r.getDB(tx)
	var courses []*models.Course
	var total int64

	query := db.WithContext(ctx).Model(&models.Course{})
	query = applyCourseFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count courses")
	}

	query = applyPaginationAndSort(query, courseSortColumns, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	if err := query.Find(&courses).Error; err != nil {
		return nil, 0, handleDBError(err, "list courses")
	}

	return courses, total, nil
}

func (r *courseRepository) Pensum(ctx context.Context, tx *gorm.DB, careerID string) ([]*models.Course, error) {
	db := r.getDB(tx)
	var courses []*models.Course

	if err := db.WithContext(ctx).
		Where("career_id = ?", careerID).
		Order("semester ASC, name ASC").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "get career pensum")
	}

	return courses, nil
}

func (r *courseRepository) GetAvailable(ctx context.Context, tx *gorm.DB, campusID, studentID, term string) ([]*models.Course, error) {
	db := r.getDB(tx)
	var courses []*models.Course

	// Exclude courses the student already holds an enrollment in for the term
	subquery := db.
		Table("enrollments").
		Select("course_id").
		Where("student_id = ? AND term = ?", studentID, term)

	if err := db.WithContext(ctx).
		Where("campus_id = ?", campusID).
		Where("id NOT IN (?)", subquery).
		Order("semester ASC, name ASC").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "get available courses")
	}

	return courses, nil
}

// ===== UPDATE OPERATIONS =====

func (r *courseRepository) Update(ctx context.Context, tx *gorm.DB, id string, update repositories.CourseUpdate) error {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Code != nil {
		updates["code"] = *update.Code
	}
	if update.Credits != nil {
		updates["credits"] = *update.Credits
	}
	if update.Semester != nil {
		updates["semester"] = *update.Semester
	}
	if update.CareerID != nil {
		updates["career_id"] = *update.CareerID
	}
	if update.ProfessorID != nil {
		updates["professor_id"] = *update.ProfessorID
	}
	if update.Schedule != nil {
		updates["schedule"] = *update.Schedule
	}
	if update.Room != nil {
		updates["room"] = *update.Room
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(tx)
	var course models.Course
	if err := db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return handleDBError(err, "get course for update")
	}

	if err := db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return handleDBError(err, "update course")
	}

	cache.InvalidateCourseCache(ctx, r.cacheManager, id, course.CampusID)
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)

	var course models.Course
	if err := db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return handleDBError(err, "get course for delete")
	}

	if err := db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error; err != nil {
		return handleDBError(err, "delete course")
	}

	cache.InvalidateCourseCache(ctx, r.cacheManager, id, course.CampusID)
	return nil
}
