package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

const testSecret = "test-secret"

func newAuthTestRepo(t *testing.T, password string) *fakeRepository {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:       "user-1",
		Name:     "Ana Morales",
		Email:    "ana@campus.edu",
		Password: string(hash),
		Role:     models.RoleStudent,
		CampusID: "campus-1",
	}

	return &fakeRepository{
		users: &fakeUserRepo{
			getByID: func(id string) (*models.User, error) {
				if id != user.ID {
					return nil, gorm.ErrRecordNotFound
				}
				return user, nil
			},
			getByEmailAndCampus: func(email, campusID string) (*models.User, error) {
				if email != user.Email || campusID != user.CampusID {
					return nil, gorm.ErrRecordNotFound
				}
				return user, nil
			},
			updatePassword: func(id, hash string) error {
				user.Password = hash
				return nil
			},
		},
	}
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "correct-horse",
		CampusID: "campus-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if resp.User.ID != "user-1" {
		t.Errorf("user = %s, want user-1", resp.User.ID)
	}

	session, err := ParseSession(resp.Token, []byte(testSecret))
	if err != nil {
		t.Fatalf("ParseSession() error = %v", err)
	}
	if session.UserID != "user-1" || session.Role != models.RoleStudent || session.CampusID != "campus-1" {
		t.Errorf("session = %+v", session)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "wrong",
		CampusID: "campus-1",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	_, badUserErr := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever",
		CampusID: "campus-1",
	})
	_, badPassErr := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "wrong",
		CampusID: "campus-1",
	})

	// Account probing must not be able to tell the two apart
	if badUserErr == nil || badPassErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if badUserErr.Error() != badPassErr.Error() {
		t.Errorf("unknown user error %q differs from bad password error %q", badUserErr, badPassErr)
	}
}

func TestLogin_WrongCampus(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "correct-horse",
		CampusID: "campus-2",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestParseSession_RejectsTamperedToken(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "correct-horse",
		CampusID: "campus-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := ParseSession(resp.Token, []byte("other-secret")); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
	if _, err := ParseSession(resp.Token+"x", []byte(testSecret)); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestParseSession_RejectsExpiredToken(t *testing.T) {
	repo := newAuthTestRepo(t, "correct-horse")
	// Negative TTL falls back to the default, so use a tiny positive one
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Millisecond)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "correct-horse",
		CampusID: "campus-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := ParseSession(resp.Token, []byte(testSecret)); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newAuthTestRepo(t, "old-password")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)
	session := studentSession("user-1", "campus-1")

	// Wrong current password is rejected
	err := svc.ChangePassword(context.Background(), session, ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "brand-new-password",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}

	// Correct current password goes through
	err = svc.ChangePassword(context.Background(), session, ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "brand-new-password",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	// The stored hash now matches the new password
	if _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@campus.edu",
		Password: "brand-new-password",
		CampusID: "campus-1",
	}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}

func TestChangePassword_RejectsShortPassword(t *testing.T) {
	repo := newAuthTestRepo(t, "old-password")
	svc := NewAuthService(repo, newTestLogger(), newTestValidator(), testSecret, time.Hour)

	err := svc.ChangePassword(context.Background(), studentSession("user-1", "campus-1"), ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "short",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}
