package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/events"
	"github.com/UNI-F-2025/campus-service/internal/models"
)

func TestCreateCampus_ProvisionsAdmin(t *testing.T) {
	var createdCampus *models.Campus
	var createdAdmin *models.User
	repo := &fakeRepository{
		campuses: &fakeCampusRepo{
			getByCode: func(code string) (*models.Campus, error) {
				return nil, gorm.ErrRecordNotFound
			},
			create: func(campus *models.Campus) error {
				createdCampus = campus
				return nil
			},
		},
		users: &fakeUserRepo{
			create: func(user *models.User) error {
				createdAdmin = user
				return nil
			},
		},
	}
	publisher := events.NewMockEventPublisher(newTestLogger())
	svc := NewCampusService(repo, newTestLogger(), newTestValidator(), publisher)

	resp, err := svc.Create(context.Background(), adminSession("campus-0"), CreateCampusRequest{
		Name:          "North Campus",
		Code:          "NOR",
		AdminName:     "Maria Soto",
		AdminEmail:    "maria@campus.edu",
		AdminPassword: "first-password",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if createdCampus == nil || createdAdmin == nil {
		t.Fatal("campus and admin were not both persisted")
	}
	if createdAdmin.Role != models.RoleAdmin {
		t.Errorf("admin role = %s, want ADMIN", createdAdmin.Role)
	}
	if createdAdmin.CampusID != createdCampus.ID {
		t.Error("admin is not attached to the new campus")
	}
	if resp.Campus.Code != "NOR" {
		t.Errorf("code = %s, want NOR", resp.Campus.Code)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != "campus.created" {
		t.Errorf("published = %+v, want one campus.created event", published)
	}
}

func TestCreateCampus_DuplicateCodeConflicts(t *testing.T) {
	repo := &fakeRepository{
		campuses: &fakeCampusRepo{
			getByCode: func(code string) (*models.Campus, error) {
				return &models.Campus{ID: "campus-1", Code: code}, nil
			},
		},
	}
	svc := NewCampusService(repo, newTestLogger(), newTestValidator(), events.NewNoopEventPublisher())

	_, err := svc.Create(context.Background(), adminSession("campus-0"), CreateCampusRequest{
		Name:          "North Campus",
		Code:          "NOR",
		AdminName:     "Maria Soto",
		AdminEmail:    "maria@campus.edu",
		AdminPassword: "first-password",
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}
