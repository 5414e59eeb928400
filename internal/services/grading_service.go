package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

type gradingService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	business  *validator.BusinessValidator
}

func NewGradingService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) GradingService {
	return &gradingService{
		repo:      repo,
		logger:    logger,
		validator: v,
		business:  validator.NewBusinessValidator(v),
	}
}

// computeFinal derives the weighted final grade. Unset components count as
// zero, and the result is rounded half away from zero to an integer.
func computeFinal(p1, p2, exam *int) int {
	value := func(p *int) float64 {
		if p == nil {
			return 0
		}
		return float64(*p)
	}

	weighted := models.WeightP1*value(p1) + models.WeightP2*value(p2) + models.WeightExam*value(exam)
	return int(math.Round(weighted))
}

// SubmitComponentGrades records the submitted components, keeps the absent
// ones at their stored values and rewrites the derived final in the same
// statement.
func (s *gradingService) SubmitComponentGrades(ctx context.Context, session *models.Session, enrollmentID string, req SubmitGradesRequest) (*models.Enrollment, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	if errs := s.business.ValidateGradeSubmit(&req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	enrollment, err := s.repo.Enrollment().GetByID(ctx, nil, enrollmentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("enrollment", enrollmentID)
		}
		return nil, NewStorageError("submit grades", err)
	}

	if err := s.requireGrader(ctx, session, enrollment); err != nil {
		return nil, err
	}

	// Merge submitted components onto the stored ones
	p1 := enrollment.GradeP1
	p2 := enrollment.GradeP2
	exam := enrollment.GradeExam
	if req.P1 != nil {
		p1 = req.P1
	}
	if req.P2 != nil {
		p2 = req.P2
	}
	if req.Exam != nil {
		exam = req.Exam
	}

	final := computeFinal(p1, p2, exam)

	update := repositories.GradeUpdate{
		P1:    p1,
		P2:    p2,
		Exam:  exam,
		Final: &final,
	}

	if err := s.repo.Enrollment().UpdateGrades(ctx, nil, enrollmentID, update); err != nil {
		return nil, NewStorageError("submit grades", err)
	}

	s.logger.Info("Grades submitted",
		"enrollment_id", enrollmentID,
		"graded_by", session.UserID,
		"final", final)

	enrollment.GradeP1 = p1
	enrollment.GradeP2 = p2
	enrollment.GradeExam = exam
	enrollment.FinalGrade = &final
	return enrollment, nil
}

// OverrideFinalGrade sets the final grade directly without touching the
// components, which may leave it out of step with them on purpose.
func (s *gradingService) OverrideFinalGrade(ctx context.Context, session *models.Session, enrollmentID string, req OverrideGradeRequest) (*models.Enrollment, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, enrollmentID, "grade", "override", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	enrollment, err := s.repo.Enrollment().GetByID(ctx, nil, enrollmentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("enrollment", enrollmentID)
		}
		return nil, NewStorageError("override grade", err)
	}

	if err := s.repo.Enrollment().UpdateFinalGrade(ctx, nil, enrollmentID, req.Grade); err != nil {
		return nil, NewStorageError("override grade", err)
	}

	s.logger.Info("Final grade overridden",
		"enrollment_id", enrollmentID,
		"grade", req.Grade,
		"overridden_by", session.UserID)

	grade := req.Grade
	enrollment.FinalGrade = &grade
	return enrollment, nil
}

// requireGrader admits admins and the professor assigned to the enrollment's
// course.
func (s *gradingService) requireGrader(ctx context.Context, session *models.Session, enrollment *models.Enrollment) error {
	if session.IsAdmin() {
		return nil
	}
	if session.Role != models.RoleProfessor {
		return NewPermissionError(session.UserID, enrollment.ID, "grade", "submit", "professor role required")
	}

	course, err := s.repo.Course().GetByID(ctx, nil, enrollment.CourseID)
	if err != nil {
		return NewStorageError("submit grades", err)
	}
	if course.ProfessorID == nil || *course.ProfessorID != session.UserID {
		return NewPermissionError(session.UserID, enrollment.ID, "grade", "submit", "not the assigned professor")
	}
	return nil
}
