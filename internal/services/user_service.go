package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	business  *validator.BusinessValidator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: v,
		business:  validator.NewBusinessValidator(v),
	}
}

func (s *userService) Create(ctx context.Context, session *models.Session, req CreateUserRequest) (*models.User, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "user", "create", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	if errs := s.business.ValidateRoleFields(&req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	// Admins manage their own campus only
	if session.CampusID != req.CampusID {
		return nil, NewPermissionError(session.UserID, req.CampusID, "user", "create", "cannot create users on another campus")
	}

	if _, err := s.repo.Campus().GetByID(ctx, nil, req.CampusID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("campus", req.CampusID)
		}
		return nil, NewStorageError("create user", err)
	}

	// Early duplicate check; the unique index is the backstop for races
	exists, err := s.repo.User().ExistsByEmail(ctx, nil, req.Email)
	if err != nil {
		return nil, NewStorageError("create user", err)
	}
	if exists {
		return nil, NewConflictError("user", "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       req.Role,
		CampusID:   req.CampusID,
		Carnet:     req.Carnet,
		MinedCode:  req.MinedCode,
		CareerID:   req.CareerID,
		Profession: req.Profession,
	}

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		if repositories.IsConflictError(err) {
			return nil, NewConflictError("user", "email already registered")
		}
		return nil, NewStorageError("create user", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "role", user.Role, "campus_id", user.CampusID)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, session *models.Session, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("user", id)
		}
		return nil, NewStorageError("get user", err)
	}

	// Non-admins may only read accounts of their own campus
	if !session.IsAdmin() && user.CampusID != session.CampusID {
		return nil, NewPermissionError(session.UserID, id, "user", "read", "different campus")
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, session *models.Session, filters repositories.UserFilters) (*UserListResponse, error) {
	// Scope non-admin listings to the caller's campus
	if !session.IsAdmin() {
		campusID := session.CampusID
		filters.CampusID = &campusID
	}

	users, total, err := s.repo.User().List(ctx, nil, filters)
	if err != nil {
		return nil, NewStorageError("list users", err)
	}

	page := 1
	if filters.Limit > 0 {
		page = filters.Offset/filters.Limit + 1
	}

	return &UserListResponse{
		Users: users,
		Total: total,
		Page:  page,
		Size:  len(users),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, session *models.Session, id string, req UpdateUserProfileRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	// Owners edit themselves; admins edit anyone
	if session.UserID != id && !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, id, "user", "update", "not the account owner")
	}

	update := repositories.UserProfileUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		AvatarURL:  req.AvatarURL,
		Notes:      req.Notes,
		Carnet:     req.Carnet,
		MinedCode:  req.MinedCode,
		CareerID:   req.CareerID,
		Profession: req.Profession,
	}

	if err := s.repo.User().UpdateProfile(ctx, nil, id, update); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("user", id)
		}
		return nil, NewStorageError("update user profile", err)
	}

	user, err := s.repo.User().GetByID(ctx, nil, id)
	if err != nil {
		return nil, NewStorageError("update user profile", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, session *models.Session, id string) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, id, "user", "delete", "admin role required")
	}

	if session.UserID == id {
		return NewValidationError("id", "cannot delete own account", id)
	}

	if err := s.repo.User().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("user", id)
		}
		return NewStorageError("delete user", err)
	}

	s.logger.Info("User deleted", "user_id", id, "deleted_by", session.UserID)
	return nil
}
