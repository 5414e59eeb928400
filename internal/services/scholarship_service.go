package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type scholarshipService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	business  *validator.BusinessValidator
}

func NewScholarshipService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) ScholarshipService {
	return &scholarshipService{
		repo:      repo,
		logger:    logger,
		validator: v,
		business:  validator.NewBusinessValidator(v),
	}
}

func (s *scholarshipService) Create(ctx context.Context, session *models.Session, req CreateScholarshipRequest) (*models.Scholarship, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "scholarship", "create", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if session.CampusID != req.CampusID {
		return nil, NewPermissionError(session.UserID, req.CampusID, "scholarship", "create", "cannot create scholarships on another campus")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	scholarship := &models.Scholarship{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Requirements: req.Requirements,
		Amount:       req.Amount,
		Active:       active,
		CampusID:     req.CampusID,
	}

	if err := s.repo.Scholarship().Create(ctx, nil, scholarship); err != nil {
		return nil, NewStorageError("create scholarship", err)
	}

	s.logger.Info("Scholarship created", "scholarship_id", scholarship.ID, "campus_id", scholarship.CampusID)
	return scholarship, nil
}

func (s *scholarshipService) List(ctx context.Context, campusID string, activeOnly bool) ([]*models.Scholarship, error) {
	scholarships, err := s.repo.Scholarship().ListByCampus(ctx, nil, campusID, activeOnly)
	if err != nil {
		return nil, NewStorageError("list scholarships", err)
	}
	return scholarships, nil
}

// Update changes program fields; toggling Active off stops new applications
// without touching the ones already filed.
func (s *scholarshipService) Update(ctx context.Context, session *models.Session, id string, req UpdateScholarshipRequest) (*models.Scholarship, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, id, "scholarship", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	update := repositories.ScholarshipUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Requirements: req.Requirements,
		Amount:       req.Amount,
		Active:       req.Active,
	}

	if err := s.repo.Scholarship().Update(ctx, nil, id, update); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("scholarship", id)
		}
		return nil, NewStorageError("update scholarship", err)
	}

	scholarship, err := s.repo.Scholarship().GetByID(ctx, nil, id)
	if err != nil {
		return nil, NewStorageError("update scholarship", err)
	}

	s.logger.Info("Scholarship updated", "scholarship_id", id, "updated_by", session.UserID)
	return scholarship, nil
}

func (s *scholarshipService) Delete(ctx context.Context, session *models.Session, id string) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, id, "scholarship", "delete", "admin role required")
	}

	if err := s.repo.Scholarship().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("scholarship", id)
		}
		return NewStorageError("delete scholarship", err)
	}

	s.logger.Info("Scholarship deleted", "scholarship_id", id, "deleted_by", session.UserID)
	return nil
}

// Apply files a PENDING application for the calling student. One application
// per (student, scholarship), in any status.
func (s *scholarshipService) Apply(ctx context.Context, session *models.Session, req ApplyScholarshipRequest) (*models.ScholarshipApplication, error) {
	if session.Role != models.RoleStudent {
		return nil, NewPermissionError(session.UserID, req.ScholarshipID, "scholarship", "apply", "student role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	scholarship, err := s.repo.Scholarship().GetByID(ctx, nil, req.ScholarshipID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("scholarship", req.ScholarshipID)
		}
		return nil, NewStorageError("apply for scholarship", err)
	}

	if !scholarship.Active {
		return nil, NewValidationError("scholarship_id", "scholarship is not accepting applications", req.ScholarshipID)
	}
	if scholarship.CampusID != session.CampusID {
		return nil, NewPermissionError(session.UserID, req.ScholarshipID, "scholarship", "apply", "scholarship belongs to another campus")
	}

	exists, err := s.repo.Scholarship().HasApplication(ctx, nil, session.UserID, req.ScholarshipID)
	if err != nil {
		return nil, NewStorageError("apply for scholarship", err)
	}
	if exists {
		return nil, NewConflictError("application", "an application for this scholarship already exists")
	}

	app := &models.ScholarshipApplication{
		ID:            uuid.New().String(),
		StudentID:     session.UserID,
		ScholarshipID: req.ScholarshipID,
		Status:        models.ApplicationPending,
		Date:          time.Now(),
	}

	if err := s.repo.Scholarship().CreateApplication(ctx, nil, app); err != nil {
		return nil, NewStorageError("apply for scholarship", err)
	}

	s.logger.Info("Scholarship application filed",
		"application_id", app.ID,
		"student_id", app.StudentID,
		"scholarship_id", app.ScholarshipID)

	return app, nil
}

func (s *scholarshipService) ListApplications(ctx context.Context, session *models.Session, filters repositories.ApplicationFilters) (*ApplicationListResponse, error) {
	// Students only see their own applications
	if !session.IsAdmin() {
		studentID := session.UserID
		filters.StudentID = &studentID
	}

	apps, total, err := s.repo.Scholarship().ListApplications(ctx, nil, filters)
	if err != nil {
		return nil, NewStorageError("list applications", err)
	}

	return &ApplicationListResponse{
		Applications: apps,
		Total:        total,
	}, nil
}

// SetApplicationStatus moves an application through its lifecycle. Pending
// applications may be approved or rejected; a decision may later be flipped
// between approved and rejected, but never back to pending.
func (s *scholarshipService) SetApplicationStatus(ctx context.Context, session *models.Session, applicationID string, req UpdateApplicationStatusRequest) (*models.ScholarshipApplication, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, applicationID, "application", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	app, err := s.repo.Scholarship().GetApplicationByID(ctx, nil, applicationID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("application", applicationID)
		}
		return nil, NewStorageError("update application", err)
	}

	if errs := s.business.ValidateApplicationTransition(app.Status, req.Status); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.repo.Scholarship().UpdateApplicationStatus(ctx, nil, applicationID, req.Status); err != nil {
		return nil, NewStorageError("update application", err)
	}

	s.logger.Info("Application status updated",
		"application_id", applicationID,
		"from", app.Status,
		"to", req.Status,
		"updated_by", session.UserID)

	app.Status = req.Status
	return app, nil
}

// GetAnalysis aggregates campus scholarship figures: committed budget,
// approved application count and students with a qualifying grade who never
// applied to anything.
func (s *scholarshipService) GetAnalysis(ctx context.Context, session *models.Session, campusID string) (*repositories.ScholarshipAnalysis, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, campusID, "scholarship analysis", "read", "admin role required")
	}

	analysis, err := s.repo.Dashboard().GetScholarshipAnalysis(ctx, nil, campusID)
	if err != nil {
		return nil, NewStorageError("get scholarship analysis", err)
	}
	return analysis, nil
}
