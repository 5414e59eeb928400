package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, jwtSecret string, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates a user scoped to one campus and issues an access token.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	user, err := s.repo.User().GetByEmailAndCampus(ctx, nil, req.Email, req.CampusID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			// Same error as a bad password so probing for accounts yields nothing
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, NewStorageError("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("Failed login attempt", "email", req.Email, "campus_id", req.CampusID)
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.issueToken(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "role", user.Role, "campus_id", user.CampusID)

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *authService) issueToken(user *models.User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"role":      string(user.Role),
		"campus_id": user.CampusID,
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *authService) ChangePassword(ctx context.Context, session *models.Session, req ChangePasswordRequest) error {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	user, err := s.repo.User().GetByID(ctx, nil, session.UserID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("user", session.UserID)
		}
		return NewStorageError("change password", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password does not match", ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.User().UpdatePassword(ctx, nil, session.UserID, string(hash)); err != nil {
		return NewStorageError("change password", err)
	}

	s.logger.Info("Password changed", "user_id", session.UserID)
	return nil
}

// GetProfile returns the authenticated user's own record.
func (s *authService) GetProfile(ctx context.Context, session *models.Session) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, nil, session.UserID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("user", session.UserID)
		}
		return nil, NewStorageError("get profile", err)
	}
	return user, nil
}

// ParseSession validates a signed token and rebuilds the session carried in
// its claims. Used by the API middleware.
func ParseSession(tokenString string, jwtSecret []byte) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	campusID, _ := claims["campus_id"].(string)
	if userID == "" || !models.IsValidRole(models.UserRole(role)) {
		return nil, fmt.Errorf("%w: malformed token claims", ErrUnauthorized)
	}

	return &models.Session{
		UserID:   userID,
		Role:     models.UserRole(role),
		CampusID: campusID,
	}, nil
}
