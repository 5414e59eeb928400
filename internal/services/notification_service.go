package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/UNI-F-2025/campus-service/internal/events"
	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type notificationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewNotificationService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) NotificationService {
	return &notificationService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Send stores a notification and publishes a notification.created event.
// Recipient is a user id or RecipientAll for a broadcast. Broadcasts are
// staff-only.
func (s *notificationService) Send(ctx context.Context, session *models.Session, req CreateNotificationRequest) (*models.Notification, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if req.RecipientID == models.RecipientAll && !session.CanManageCourse() {
		return nil, NewPermissionError(session.UserID, "", "notification", "broadcast", "staff role required")
	}

	if req.RecipientID != models.RecipientAll {
		if _, err := s.repo.User().GetByID(ctx, nil, req.RecipientID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewNotFoundError("recipient", req.RecipientID)
			}
			return nil, NewStorageError("send notification", err)
		}
	}

	notificationType := req.Type
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	senderID := session.UserID
	notification := &models.Notification{
		ID:          uuid.New().String(),
		SenderID:    &senderID,
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Message:     req.Message,
		Date:        time.Now(),
		Read:        false,
		Type:        notificationType,
	}

	if err := s.repo.Notification().Create(ctx, nil, notification); err != nil {
		return nil, NewStorageError("send notification", err)
	}

	s.logger.Info("Notification sent",
		"notification_id", notification.ID,
		"sender_id", senderID,
		"recipient_id", notification.RecipientID,
		"type", notification.Type)

	if s.publisher != nil {
		event := events.NewEvent("notification.created", map[string]interface{}{
			"notification_id": notification.ID,
			"recipient_id":    notification.RecipientID,
			"title":           notification.Title,
			"type":            string(notification.Type),
		})
		if err := s.publisher.Publish(ctx, events.TopicNotifications, event); err != nil {
			// Delivery to the bus is best effort; the stored row is the
			// source of truth
			s.logger.Error("Failed to publish notification event", "error", err, "notification_id", notification.ID)
		}
	}

	return notification, nil
}

// Inbox returns the caller's direct and broadcast notifications plus the
// unread count.
func (s *notificationService) Inbox(ctx context.Context, session *models.Session, limit, offset int) (*InboxResponse, error) {
	notifications, err := s.repo.Notification().ListForRecipient(ctx, nil, session.UserID, limit, offset)
	if err != nil {
		return nil, NewStorageError("get inbox", err)
	}

	unread, err := s.repo.Notification().CountUnread(ctx, nil, session.UserID)
	if err != nil {
		return nil, NewStorageError("get inbox", err)
	}

	return &InboxResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// List is the administrative view over every stored notification,
// regardless of recipient.
func (s *notificationService) List(ctx context.Context, session *models.Session, filters repositories.NotificationFilters) (*NotificationListResponse, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "notification", "list", "admin role required")
	}

	notifications, total, err := s.repo.Notification().List(ctx, nil, filters)
	if err != nil {
		return nil, NewStorageError("list notifications", err)
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Total:         total,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, session *models.Session, id string) error {
	notification, err := s.repo.Notification().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("notification", id)
		}
		return NewStorageError("mark notification read", err)
	}

	if notification.RecipientID != session.UserID && notification.RecipientID != models.RecipientAll {
		return NewPermissionError(session.UserID, id, "notification", "update", "not the recipient")
	}

	if err := s.repo.Notification().MarkRead(ctx, nil, id); err != nil {
		return NewStorageError("mark notification read", err)
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, session *models.Session, id string) error {
	notification, err := s.repo.Notification().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("notification", id)
		}
		return NewStorageError("delete notification", err)
	}

	if !session.IsAdmin() && notification.RecipientID != session.UserID {
		return NewPermissionError(session.UserID, id, "notification", "delete", "not the recipient")
	}

	if err := s.repo.Notification().Delete(ctx, nil, id); err != nil {
		return NewStorageError("delete notification", err)
	}
	return nil
}
