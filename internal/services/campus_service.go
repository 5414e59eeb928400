package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNI-F-2025/campus-service/internal/events"
	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type campusService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewCampusService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) CampusService {
	return &campusService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Create provisions a campus together with its first admin account. Both
// writes share one transaction so a half-created campus never survives.
func (s *campusService) Create(ctx context.Context, session *models.Session, req CreateCampusRequest) (*CreateCampusResponse, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "campus", "create", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	// Early duplicate check; the unique index is the backstop for races
	if _, err := s.repo.Campus().GetByCode(ctx, nil, req.Code); err == nil {
		return nil, NewConflictError("campus", "campus code already in use")
	} else if !repositories.IsNotFoundError(err) {
		return nil, NewStorageError("create campus", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	campus := &models.Campus{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Location: req.Location,
		Code:     req.Code,
		LogoURL:  req.LogoURL,
	}

	admin := &models.User{
		ID:       uuid.New().String(),
		Name:     req.AdminName,
		Email:    req.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
		CampusID: campus.ID,
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Campus().Create(ctx, nil, campus); err != nil {
			return err
		}
		return txRepo.User().Create(ctx, nil, admin)
	})
	if err != nil {
		if repositories.IsConflictError(err) {
			return nil, NewConflictError("campus", "campus code or admin email already in use")
		}
		return nil, NewStorageError("create campus", err)
	}

	s.logger.Info("Campus created", "campus_id", campus.ID, "code", campus.Code, "admin_id", admin.ID)

	if s.publisher != nil {
		event := events.NewEvent("campus.created", map[string]interface{}{
			"campus_id": campus.ID,
			"code":      campus.Code,
		})
		if err := s.publisher.Publish(ctx, events.TopicCampus, event); err != nil {
			s.logger.Error("Failed to publish campus created event", "error", err, "campus_id", campus.ID)
		}
	}

	return &CreateCampusResponse{Campus: campus, Admin: admin}, nil
}

func (s *campusService) GetByID(ctx context.Context, id string) (*models.Campus, error) {
	campus, err := s.repo.Campus().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("campus", id)
		}
		return nil, NewStorageError("get campus", err)
	}
	return campus, nil
}

func (s *campusService) List(ctx context.Context) ([]*models.Campus, error) {
	campuses, err := s.repo.Campus().List(ctx, nil)
	if err != nil {
		return nil, NewStorageError("list campuses", err)
	}
	return campuses, nil
}

func (s *campusService) Update(ctx context.Context, session *models.Session, id string, req UpdateCampusRequest) (*models.Campus, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, id, "campus", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	update := repositories.CampusUpdate{
		Name:     req.Name,
		Location: req.Location,
		Code:     req.Code,
		LogoURL:  req.LogoURL,
	}

	if err := s.repo.Campus().Update(ctx, nil, id, update); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("campus", id)
		}
		if repositories.IsConflictError(err) {
			return nil, NewConflictError("campus", "campus code already in use")
		}
		return nil, NewStorageError("update campus", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a campus. Users, careers, courses, enrollments and every
// other dependent row fall with it through the cascading foreign keys.
func (s *campusService) Delete(ctx context.Context, session *models.Session, id string) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, id, "campus", "delete", "admin role required")
	}

	if err := s.repo.Campus().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("campus", id)
		}
		return NewStorageError("delete campus", err)
	}

	s.logger.Info("Campus deleted", "campus_id", id, "deleted_by", session.UserID)
	return nil
}
