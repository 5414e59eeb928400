package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type enrollmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	business  *validator.BusinessValidator
}

func NewEnrollmentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		logger:    logger,
		validator: v,
		business:  validator.NewBusinessValidator(v),
	}
}

// BulkEnroll enrolls a student into several courses for one term. Rows are
// independent: a duplicate enrollment lands in the conflict list while the
// remaining courses still go through. Admins enroll any student of their
// campus; students enroll themselves.
func (s *enrollmentService) BulkEnroll(ctx context.Context, session *models.Session, req BulkEnrollRequest) (*BulkEnrollResult, error) {
	if !session.IsAdmin() {
		if session.Role != models.RoleStudent || session.UserID != req.StudentID {
			return nil, NewPermissionError(session.UserID, req.StudentID, "enrollment", "create", "students may only enroll themselves")
		}
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	if errs := s.business.ValidateBulkEnroll(&req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	student, err := s.repo.User().GetByID(ctx, nil, req.StudentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("student", req.StudentID)
		}
		return nil, NewStorageError("bulk enroll", err)
	}
	if student.Role != models.RoleStudent {
		return nil, NewValidationError("student_id", "user is not a student", req.StudentID)
	}
	if student.CampusID != session.CampusID {
		return nil, NewPermissionError(session.UserID, req.StudentID, "enrollment", "create", "student belongs to another campus")
	}

	result := &BulkEnrollResult{}

	for _, courseID := range req.CourseIDs {
		course, err := s.repo.Course().GetByID(ctx, nil, courseID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				result.Conflicts = append(result.Conflicts, EnrollmentConflict{
					CourseID: courseID,
					Reason:   "course not found",
				})
				continue
			}
			return nil, NewStorageError("bulk enroll", err)
		}
		if course.CampusID != student.CampusID {
			result.Conflicts = append(result.Conflicts, EnrollmentConflict{
				CourseID: courseID,
				Reason:   "course belongs to another campus",
			})
			continue
		}

		enrollment := &models.Enrollment{
			ID:        uuid.New().String(),
			StudentID: req.StudentID,
			CourseID:  courseID,
			Term:      req.Term,
			Status:    models.EnrollmentActive,
		}

		if err := s.repo.Enrollment().Create(ctx, nil, enrollment); err != nil {
			if repositories.IsConflictError(err) {
				result.Conflicts = append(result.Conflicts, EnrollmentConflict{
					CourseID: courseID,
					Reason:   "already enrolled for this term",
				})
				continue
			}
			return nil, NewStorageError("bulk enroll", err)
		}

		result.Enrolled = append(result.Enrolled, enrollment)
	}

	s.logger.Info("Bulk enrollment processed",
		"student_id", req.StudentID,
		"term", req.Term,
		"enrolled", len(result.Enrolled),
		"conflicts", len(result.Conflicts))

	return result, nil
}

// GetKardex returns a student's full academic history. Students may read
// their own; admins may read anyone's.
func (s *enrollmentService) GetKardex(ctx context.Context, session *models.Session, studentID string) (*KardexResponse, error) {
	if session.UserID != studentID && !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, studentID, "kardex", "read", "not the record owner")
	}

	entries, err := s.repo.Enrollment().GetHistoryByStudent(ctx, nil, studentID)
	if err != nil {
		return nil, NewStorageError("get kardex", err)
	}

	return &KardexResponse{
		StudentID: studentID,
		Entries:   entries,
	}, nil
}

// GetRoster returns the student list of a course, visible to the assigned
// professor and to admins.
func (s *enrollmentService) GetRoster(ctx context.Context, session *models.Session, courseID string, term *string) (*RosterResponse, error) {
	course, err := s.repo.Course().GetByID(ctx, nil, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("course", courseID)
		}
		return nil, NewStorageError("get roster", err)
	}

	if !session.IsAdmin() {
		if course.ProfessorID == nil || *course.ProfessorID != session.UserID {
			return nil, NewPermissionError(session.UserID, courseID, "roster", "read", "not the assigned professor")
		}
	}

	entries, err := s.repo.Enrollment().GetRosterByCourse(ctx, nil, courseID, term)
	if err != nil {
		return nil, NewStorageError("get roster", err)
	}

	return &RosterResponse{
		CourseID: courseID,
		Term:     term,
		Entries:  entries,
	}, nil
}

// GetAvailableCourses lists campus courses the calling student has not yet
// enrolled in for the term.
func (s *enrollmentService) GetAvailableCourses(ctx context.Context, session *models.Session, term string) ([]*models.Course, error) {
	if err := s.validator.Var(term, "required,term_format"); err != nil {
		return nil, fmt.Errorf("%w: invalid term", ErrValidationFailed)
	}

	courses, err := s.repo.Course().GetAvailable(ctx, nil, session.CampusID, session.UserID, term)
	if err != nil {
		return nil, NewStorageError("get available courses", err)
	}
	return courses, nil
}

func (s *enrollmentService) UpdateStatus(ctx context.Context, session *models.Session, enrollmentID string, req UpdateEnrollmentStatusRequest) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, enrollmentID, "enrollment", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.repo.Enrollment().UpdateStatus(ctx, nil, enrollmentID, req.Status); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("enrollment", enrollmentID)
		}
		return NewStorageError("update enrollment status", err)
	}

	s.logger.Info("Enrollment status updated", "enrollment_id", enrollmentID, "status", req.Status)
	return nil
}
