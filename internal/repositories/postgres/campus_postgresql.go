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

type campusRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCampusPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CampusRepository {
	return &campusRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *campusRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== BASIC CRUD OPERATIONS =====

func (r *campusRepository) Create(ctx context.Context, tx *gorm.DB, campus *models.Campus) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(campus).Error; err != nil {
		return handleDBError(err, "create campus")
	}

	cache.InvalidateCampusCache(ctx, r.cacheManager, campus.ID)
	return nil
}

func (r *campusRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Campus, error) {
	// Skip cache inside transactions to avoid reading stale data
	if tx == nil {
		var cached models.Campus
		if err := r.cacheManager.Campus.Get(ctx, fmt.Sprintf("id:%s", id), &cached); err == nil {
			return &cached, nil
		}
	}

	db := r.getDB(tx)
	var campus models.Campus
	if err := db.WithContext(ctx).First(&campus, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get campus by id")
	}

	if tx == nil {
		_ = r.cacheManager.Campus.Set(ctx, fmt.Sprintf("id:%s", id), &campus, cache.CampusCacheConfig.TTL)
	}

	return &campus, nil
}

func (r *campusRepository) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Campus, error) {
	db := r.getDB(tx)
	var campus models.Campus
	if err := db.WithContext(ctx).First(&campus, "code = ?", code).Error; err != nil {
		return nil, handleDBError(err, "get campus by code")
	}
	return &campus, nil
}

func (r *campusRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.Campus, error) {
	db := r.getDB(tx)
	var campuses []*models.Campus

	if err := db.WithContext(ctx).
		Order("name ASC").
		Find(&campuses).Error; err != nil {
		return nil, handleDBError(err, "list campuses")
	}

	return campuses, nil
}

func (r *campusRepository) Update(ctx context.Context, tx *gorm.DB, id string, update repositories.CampusUpdate) error {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Location != nil {
		updates["location"] = *update.Location
	}
	if update.Code != nil {
		updates["code"] = *update.Code
	}
	if update.LogoURL != nil {
		updates["logo_url"] = *update.LogoURL
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Campus{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return handleDBError(result.Error, "update campus")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update campus")
	}

	cache.InvalidateCampusCache(ctx, r.cacheManager, id)
	return nil
}

func (r *campusRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)

	// Dependent rows go away through ON DELETE CASCADE foreign keys
	result := db.WithContext(ctx).Delete(&models.Campus{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete campus")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete campus")
	}

	cache.InvalidateCampusCache(ctx, r.cacheManager, id)
	return nil
}
