package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationPostgreSQL(db *gorm.DB) repositories.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *notificationRepository) Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(notification).Error; err != nil {
		return handleDBError(err, "create notification")
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Notification, error) {
	db := r.getDB(tx)
	var notification models.Notification
	if err := db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get notification by id")
	}
	return &notification, nil
}

func (r *notificationRepository) ListForRecipient(ctx context.Context, tx *gorm.DB, userID string, limit, offset int) ([]*models.Notification, error) {
	db := r.getDB(tx)
	var notifications []*models.Notification

	// Newest first by the notification's own date, not the row insert time;
	// the two diverge when rows are backfilled
	query := db.WithContext(ctx).
		Where("recipient_id = ? OR recipient_id = ?", userID, models.RecipientAll).
		Order("date DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notifications).Error; err != nil {
		return nil, handleDBError(err, "list notifications for recipient")
	}

	return notifications, nil
}

func (r *notificationRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.NotificationFilters) ([]*models.Notification, int64, error) {
	db := r.getDB(tx)
	var notifications []*models.Notification
	var total int64

	query := db.WithContext(ctx).Model(&models.Notification{})
	if filters.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filters.RecipientID)
	}
	if filters.SenderID != nil {
		query = query.Where("sender_id = ?", *filters.SenderID)
	}
	if filters.UnreadOnly {
		query = query.Where("read = false")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count notifications")
	}

	query = query.Order("date DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&notifications).Error; err != nil {
		return nil, 0, handleDBError(err, "list notifications")
	}

	return notifications, total, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return handleDBError(result.Error, "mark notification read")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "mark notification read")
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, tx *gorm.DB, userID string) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("(recipient_id = ? OR recipient_id = ?) AND read = false", userID, models.RecipientAll).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count unread notifications")
	}

	return count, nil
}

func (r *notificationRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete notification")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete notification")
	}
	return nil
}
