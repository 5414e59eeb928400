package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/events"
	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

func newNotificationTestRepo(stored **models.Notification) *fakeRepository {
	return &fakeRepository{
		users: &fakeUserRepo{
			getByID: func(id string) (*models.User, error) {
				if id == "missing" {
					return nil, gorm.ErrRecordNotFound
				}
				return &models.User{ID: id, Role: models.RoleStudent, CampusID: "campus-1"}, nil
			},
		},
		notes: &fakeNotificationRepo{
			create: func(notification *models.Notification) error {
				*stored = notification
				return nil
			},
		},
	}
}

func TestSend_StoresAndPublishes(t *testing.T) {
	var stored *models.Notification
	repo := newNotificationTestRepo(&stored)
	publisher := events.NewMockEventPublisher(newTestLogger())

	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), publisher)

	notification, err := svc.Send(context.Background(), professorSession("prof-1", "campus-1"), CreateNotificationRequest{
		RecipientID: "student-1",
		Title:       "Class moved",
		Message:     "Tomorrow's lecture is in room B-204.",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if stored == nil {
		t.Fatal("notification was not stored")
	}
	if notification.Type != models.NotificationInfo {
		t.Errorf("type = %s, want INFO default", notification.Type)
	}
	if notification.SenderID == nil || *notification.SenderID != "prof-1" {
		t.Errorf("sender = %v, want prof-1", notification.SenderID)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("published events = %d, want 1", len(published))
	}
	if published[0].Type != "notification.created" {
		t.Errorf("event type = %s, want notification.created", published[0].Type)
	}
}

func TestSend_BroadcastIsStaffOnly(t *testing.T) {
	var stored *models.Notification
	repo := newNotificationTestRepo(&stored)
	publisher := events.NewMockEventPublisher(newTestLogger())
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), publisher)

	_, err := svc.Send(context.Background(), studentSession("student-1", "campus-1"), CreateNotificationRequest{
		RecipientID: models.RecipientAll,
		Title:       "Party",
		Message:     "Everyone is invited.",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
	if stored != nil {
		t.Error("broadcast from a student was stored")
	}

	// Professors may broadcast; no recipient lookup runs for ALL
	notification, err := svc.Send(context.Background(), professorSession("prof-1", "campus-1"), CreateNotificationRequest{
		RecipientID: models.RecipientAll,
		Title:       "Exam schedule",
		Message:     "Final exams start next Monday.",
	})
	if err != nil {
		t.Fatalf("Send() broadcast error = %v", err)
	}
	if notification.RecipientID != models.RecipientAll {
		t.Errorf("recipient = %s, want %s", notification.RecipientID, models.RecipientAll)
	}
}

func TestSend_UnknownRecipient(t *testing.T) {
	var stored *models.Notification
	repo := newNotificationTestRepo(&stored)
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	_, err := svc.Send(context.Background(), adminSession("campus-1"), CreateNotificationRequest{
		RecipientID: "missing",
		Title:       "Hello",
		Message:     "Anyone there?",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestInbox_ReturnsUnreadCount(t *testing.T) {
	repo := &fakeRepository{
		notes: &fakeNotificationRepo{
			listForRecipient: func(userID string, limit, offset int) ([]*models.Notification, error) {
				return []*models.Notification{
					{ID: "n-1", RecipientID: userID},
					{ID: "n-2", RecipientID: models.RecipientAll},
				}, nil
			},
			countUnread: func(userID string) (int64, error) {
				return 1, nil
			},
		},
	}
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	inbox, err := svc.Inbox(context.Background(), studentSession("student-1", "campus-1"), 20, 0)
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox.Notifications) != 2 {
		t.Errorf("notifications = %d, want 2", len(inbox.Notifications))
	}
	if inbox.UnreadCount != 1 {
		t.Errorf("unread = %d, want 1", inbox.UnreadCount)
	}
}

func TestList_AdminView(t *testing.T) {
	var gotFilters repositories.NotificationFilters
	repo := &fakeRepository{
		notes: &fakeNotificationRepo{
			list: func(filters repositories.NotificationFilters) ([]*models.Notification, int64, error) {
				gotFilters = filters
				return []*models.Notification{{ID: "n-1"}, {ID: "n-2"}}, 2, nil
			},
		},
	}
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	recipient := "student-1"
	resp, err := svc.List(context.Background(), adminSession("campus-1"), repositories.NotificationFilters{
		RecipientID: &recipient,
		UnreadOnly:  true,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Total != 2 || len(resp.Notifications) != 2 {
		t.Errorf("got %d/%d notifications, want 2/2", len(resp.Notifications), resp.Total)
	}
	if gotFilters.RecipientID == nil || *gotFilters.RecipientID != "student-1" || !gotFilters.UnreadOnly {
		t.Errorf("filters not passed through: %+v", gotFilters)
	}

	// Non-admins have no log-wide view
	_, err = svc.List(context.Background(), professorSession("prof-1", "campus-1"), repositories.NotificationFilters{})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestMarkRead_RecipientOnly(t *testing.T) {
	marked := false
	repo := &fakeRepository{
		notes: &fakeNotificationRepo{
			getByID: func(id string) (*models.Notification, error) {
				return &models.Notification{ID: id, RecipientID: "student-1"}, nil
			},
			markRead: func(id string) error {
				marked = true
				return nil
			},
		},
	}
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	if err := svc.MarkRead(context.Background(), studentSession("student-1", "campus-1"), "n-1"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !marked {
		t.Error("notification was not marked read")
	}

	err := svc.MarkRead(context.Background(), studentSession("student-2", "campus-1"), "n-1")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestDelete_AdminOrRecipient(t *testing.T) {
	deleted := 0
	repo := &fakeRepository{
		notes: &fakeNotificationRepo{
			getByID: func(id string) (*models.Notification, error) {
				return &models.Notification{ID: id, RecipientID: "student-1"}, nil
			},
			delete: func(id string) error {
				deleted++
				return nil
			},
		},
	}
	svc := NewNotificationService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	if err := svc.Delete(context.Background(), studentSession("student-1", "campus-1"), "n-1"); err != nil {
		t.Fatalf("Delete() recipient error = %v", err)
	}
	if err := svc.Delete(context.Background(), adminSession("campus-1"), "n-1"); err != nil {
		t.Fatalf("Delete() admin error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deletes = %d, want 2", deleted)
	}

	err := svc.Delete(context.Background(), studentSession("student-2", "campus-1"), "n-1")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
