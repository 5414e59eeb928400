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

type userRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &userRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *userRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

var userSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
	"email":      "email",
}

// ===== BASIC CRUD OPERATIONS =====

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	if tx == nil {
		var cached models.User
		if err := r.cacheManager.User.Get(ctx, fmt.Sprintf("id:%s", id), &cached); err == nil {
			return &cached, nil
		}
	}

	db := r.getDB(tx)
	var user models.User
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}

	if tx == nil {
		_ = r.cacheManager.User.Set(ctx, fmt.Sprintf("id:%s", id), &user, cache.UserCacheConfig.TTL)
	}

	return &user, nil
}

func (r *userRepository) GetByEmailAndCampus(ctx context.Context, tx *gorm.DB, email, campusID string) (*models.User, error) {
	db := r.getDB(tx)
	var user models.User
	if err := db.WithContext(ctx).
		First(&user, "email = ? AND campus_id = ?", email, campusID).Error; err != nil {
		return nil, handleDBError(err, "get user by email and campus")
	}
	return &user, nil
}

// ===== QUERY OPERATIONS =====

func (r *userRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.UserFilters) ([]*models.User, int64, error) {
	db := r.getDB(tx)
	var users []*models.User
	var total int64

	query := db.WithContext(ctx).Model(&models.User{})
	query = applyUserFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count users")
	}

	query = applyPaginationAndSort(query, userSortColumns, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, handleDBError(err, "list users")
	}

	return users, total, nil
}

// ===== UPDATE OPERATIONS =====

func (r *userRepository) UpdateProfile(ctx context.Context, tx *gorm.DB, id string, update repositories.UserProfileUpdate) error {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.AvatarURL != nil {
		updates["avatar_url"] = *update.AvatarURL
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}
	if update.Carnet != nil {
		updates["carnet"] = *update.Carnet
	}
	if update.MinedCode != nil {
		updates["mined_code"] = *update.MinedCode
	}
	if update.CareerID != nil {
		updates["career_id"] = *update.CareerID
	}
	if update.Profession != nil {
		updates["profession"] = *update.Profession
	}
	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return handleDBError(result.Error, "update user profile")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update user profile")
	}

	cache.InvalidateUserCache(ctx, r.cacheManager, id)
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, tx *gorm.DB, id string, passwordHash string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return handleDBError(result.Error, "update user password")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update user password")
	}

	cache.InvalidateUserCache(ctx, r.cacheManager, id)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete user")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete user")
	}

	cache.InvalidateUserCache(ctx, r.cacheManager, id)
	return nil
}

// ===== VALIDATION =====

func (r *userRepository) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check if email exists")
	}

	return count > 0, nil
}
