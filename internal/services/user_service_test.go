package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

func newUserTestRepo(emailTaken bool, created **models.User) *fakeRepository {
	return &fakeRepository{
		campuses: &fakeCampusRepo{
			getByID: func(id string) (*models.Campus, error) {
				return &models.Campus{ID: id, Name: "Central", Code: "CEN"}, nil
			},
		},
		users: &fakeUserRepo{
			existsByEmail: func(email string) (bool, error) {
				return emailTaken, nil
			},
			create: func(user *models.User) error {
				*created = user
				return nil
			},
		},
	}
}

func TestCreateUser_StoresHashedPassword(t *testing.T) {
	var created *models.User
	repo := newUserTestRepo(false, &created)
	svc := NewUserService(repo, newTestLogger(), newTestValidator())

	carnet := "C-2025-014"
	user, err := svc.Create(context.Background(), adminSession("campus-1"), CreateUserRequest{
		Name:     "Luis Herrera",
		Email:    "luis@campus.edu",
		Password: "plain-password",
		Role:     models.RoleStudent,
		CampusID: "campus-1",
		Carnet:   &carnet,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created == nil {
		t.Fatal("user was not persisted")
	}
	if user.Password == "plain-password" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("plain-password")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	var created *models.User
	repo := newUserTestRepo(true, &created)
	svc := NewUserService(repo, newTestLogger(), newTestValidator())

	_, err := svc.Create(context.Background(), adminSession("campus-1"), CreateUserRequest{
		Name:     "Luis Herrera",
		Email:    "taken@campus.edu",
		Password: "plain-password",
		Role:     models.RoleStudent,
		CampusID: "campus-1",
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
	if created != nil {
		t.Error("user row was written despite the duplicate email")
	}
}

func TestCreateUser_AdminOnly(t *testing.T) {
	svc := NewUserService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.Create(context.Background(), professorSession("prof-1", "campus-1"), CreateUserRequest{
		Name:     "Someone",
		Email:    "someone@campus.edu",
		Password: "plain-password",
		Role:     models.RoleStudent,
		CampusID: "campus-1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
