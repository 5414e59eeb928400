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

type attendanceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	business  *validator.BusinessValidator
}

func NewAttendanceService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) AttendanceService {
	return &attendanceService{
		repo:      repo,
		logger:    logger,
		validator: v,
		business:  validator.NewBusinessValidator(v),
	}
}

// RecordSheet replaces the whole attendance sheet for (course, date) in one
// transaction: delete the day, insert the submitted rows. Submitting the
// same sheet twice is a no-op, and an empty record list clears the day.
func (s *attendanceService) RecordSheet(ctx context.Context, session *models.Session, req SubmitAttendanceRequest) (*AttendanceSheetResponse, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	if errs := s.business.ValidateAttendanceSheet(&req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	course, err := s.repo.Course().GetByID(ctx, nil, req.CourseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("course", req.CourseID)
		}
		return nil, NewStorageError("record attendance", err)
	}

	if err := s.requireCourseManager(session, course, "record attendance for"); err != nil {
		return nil, err
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Records))
	for _, entry := range req.Records {
		records = append(records, &models.AttendanceRecord{
			ID:        uuid.New().String(),
			CourseID:  req.CourseID,
			StudentID: entry.StudentID,
			Date:      req.Date,
			Status:    entry.Status,
		})
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Attendance().DeleteByCourseDate(ctx, nil, req.CourseID, req.Date); err != nil {
			return err
		}
		return txRepo.Attendance().CreateBatch(ctx, nil, records)
	})
	if err != nil {
		return nil, NewStorageError("record attendance", err)
	}

	s.logger.Info("Attendance sheet recorded",
		"course_id", req.CourseID,
		"date", req.Date,
		"records", len(records),
		"recorded_by", session.UserID)

	return &AttendanceSheetResponse{
		CourseID: req.CourseID,
		Date:     req.Date,
		Records:  records,
	}, nil
}

func (s *attendanceService) GetSheet(ctx context.Context, session *models.Session, courseID, date string) (*AttendanceSheetResponse, error) {
	if err := s.validator.Var(date, "required,date_format"); err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrValidationFailed)
	}

	course, err := s.repo.Course().GetByID(ctx, nil, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("course", courseID)
		}
		return nil, NewStorageError("get attendance", err)
	}

	if err := s.requireCourseManager(session, course, "read attendance for"); err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance().GetByCourseDate(ctx, nil, courseID, date)
	if err != nil {
		return nil, NewStorageError("get attendance", err)
	}

	return &AttendanceSheetResponse{
		CourseID: courseID,
		Date:     date,
		Records:  records,
	}, nil
}

// GetStudentAttendance returns a student's attendance rows. Students read
// their own; staff read anyone's.
func (s *attendanceService) GetStudentAttendance(ctx context.Context, session *models.Session, studentID string, courseID *string) ([]*models.AttendanceRecord, error) {
	if session.UserID != studentID && !session.CanManageCourse() {
		return nil, NewPermissionError(session.UserID, studentID, "attendance", "read", "not the record owner")
	}

	records, err := s.repo.Attendance().GetByStudent(ctx, nil, studentID, courseID)
	if err != nil {
		return nil, NewStorageError("get student attendance", err)
	}
	return records, nil
}

func (s *attendanceService) requireCourseManager(session *models.Session, course *models.Course, action string) error {
	if session.IsAdmin() {
		return nil
	}
	if session.Role == models.RoleProfessor && course.ProfessorID != nil && *course.ProfessorID == session.UserID {
		return nil
	}
	return NewPermissionError(session.UserID, course.ID, "course", action, "not the assigned professor")
}
