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

type academicService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAcademicService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AcademicService {
	return &academicService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// ===== CAREERS =====

func (s *academicService) CreateCareer(ctx context.Context, session *models.Session, req CreateCareerRequest) (*models.Career, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "career", "create", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if session.CampusID != req.CampusID {
		return nil, NewPermissionError(session.UserID, req.CampusID, "career", "create", "cannot create careers on another campus")
	}

	career := &models.Career{
		ID:       uuid.New().String(),
		Name:     req.Name,
		CampusID: req.CampusID,
		Faculty:  req.Faculty,
	}

	if err := s.repo.Career().Create(ctx, nil, career); err != nil {
		return nil, NewStorageError("create career", err)
	}

	s.logger.Info("Career created", "career_id", career.ID, "campus_id", career.CampusID)
	return career, nil
}

func (s *academicService) GetCareer(ctx context.Context, id string) (*models.Career, error) {
	career, err := s.repo.Career().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("career", id)
		}
		return nil, NewStorageError("get career", err)
	}
	return career, nil
}

func (s *academicService) ListCareers(ctx context.Context, campusID string) ([]*models.Career, error) {
	careers, err := s.repo.Career().ListByCampus(ctx, nil, campusID)
	if err != nil {
		return nil, NewStorageError("list careers", err)
	}
	return careers, nil
}

func (s *academicService) UpdateCareer(ctx context.Context, session *models.Session, id string, req UpdateCareerRequest) (*models.Career, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, id, "career", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	career, err := s.GetCareer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		career.Name = *req.Name
	}
	if req.Faculty != nil {
		career.Faculty = *req.Faculty
	}

	if err := s.repo.Career().Update(ctx, nil, career); err != nil {
		return nil, NewStorageError("update career", err)
	}

	s.logger.Info("Career updated", "career_id", career.ID, "updated_by", session.UserID)
	return career, nil
}

func (s *academicService) DeleteCareer(ctx context.Context, session *models.Session, id string) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, id, "career", "delete", "admin role required")
	}

	if err := s.repo.Career().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("career", id)
		}
		return NewStorageError("delete career", err)
	}

	s.logger.Info("Career deleted", "career_id", id, "deleted_by", session.UserID)
	return nil
}

// GetPensum returns the career's curriculum ordered by semester.
func (s *academicService) GetPensum(ctx context.Context, careerID string) ([]*models.Course, error) {
	if _, err := s.GetCareer(ctx, careerID); err != nil {
		return nil, err
	}

	courses, err := s.repo.Course().Pensum(ctx, nil, careerID)
	if err != nil {
		return nil, NewStorageError("get pensum", err)
	}
	return courses, nil
}

// ===== COURSES =====

func (s *academicService) CreateCourse(ctx context.Context, session *models.Session, req CreateCourseRequest) (*models.Course, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "course", "create", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if session.CampusID != req.CampusID {
		return nil, NewPermissionError(session.UserID, req.CampusID, "course", "create", "cannot create courses on another campus")
	}

	if req.ProfessorID != nil {
		professor, err := s.repo.User().GetByID(ctx, nil, *req.ProfessorID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewNotFoundError("professor", *req.ProfessorID)
			}
			return nil, NewStorageError("create course", err)
		}
		if professor.Role != models.RoleProfessor {
			return nil, NewValidationError("professor_id", "assigned user is not a professor", *req.ProfessorID)
		}
	}

	credits := req.Credits
	if credits == 0 {
		credits = 3
	}

	course := &models.Course{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Code:        req.Code,
		CampusID:    req.CampusID,
		Credits:     credits,
		Semester:    req.Semester,
		CareerID:    req.CareerID,
		ProfessorID: req.ProfessorID,
		Schedule:    req.Schedule,
		Room:        req.Room,
	}

	if err := s.repo.Course().Create(ctx, nil, course); err != nil {
		return nil, NewStorageError("create course", err)
	}

	s.logger.Info("Course created", "course_id", course.ID, "code", course.Code, "campus_id", course.CampusID)
	return course, nil
}

func (s *academicService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.Course().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("course", id)
		}
		return nil, NewStorageError("get course", err)
	}
	return course, nil
}

func (s *academicService) ListCourses(ctx context.Context, filters repositories.CourseFilters) (*CourseListResponse, error) {
	courses, total, err := s.repo.Course().List(ctx, nil, filters)
	if err != nil {
		return nil, NewStorageError("list courses", err)
	}

	page := 1
	if filters.Limit > 0 {
		page = filters.Offset/filters.Limit + 1
	}

	return &CourseListResponse{
		Courses: courses,
		Total:   total,
		Page:    page,
		Size:    len(courses),
	}, nil
}

func (s *academicService) UpdateCourse(ctx context.Context, session *models.Session, id string, req UpdateCourseRequest) (*models.Course, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, id, "course", "update", "admin role required")
	}

	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	update := repositories.CourseUpdate{
		Name:        req.Name,
		Code:        req.Code,
		Credits:     req.Credits,
		Semester:    req.Semester,
		CareerID:    req.CareerID,
		ProfessorID: req.ProfessorID,
		Schedule:    req.Schedule,
		Room:        req.Room,
	}

	if err := s.repo.Course().Update(ctx, nil, id, update); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("course", id)
		}
		return nil, NewStorageError("update course", err)
	}

	return s.GetCourse(ctx, id)
}

func (s *academicService) DeleteCourse(ctx context.Context, session *models.Session, id string) error {
	if !session.IsAdmin() {
		return NewPermissionError(session.UserID, id, "course", "delete", "admin role required")
	}

	if err := s.repo.Course().Delete(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("course", id)
		}
		return NewStorageError("delete course", err)
	}

	s.logger.Info("Course deleted", "course_id", id, "deleted_by", session.UserID)
	return nil
}

// ===== COURSE RESOURCES =====

func (s *academicService) AddResource(ctx context.Context, session *models.Session, req CreateResourceRequest) (*models.CourseResource, error) {
	if errs := s.validator.Validate(req); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	course, err := s.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	if err := s.requireCourseManager(session, course, "add resources to"); err != nil {
		return nil, err
	}

	resource := &models.CourseResource{
		ID:       uuid.New().String(),
		CourseID: req.CourseID,
		Title:    req.Title,
		Type:     req.Type,
		URL:      req.URL,
		Date:     time.Now(),
	}

	if err := s.repo.Resource().Create(ctx, nil, resource); err != nil {
		return nil, NewStorageError("add resource", err)
	}

	s.logger.Info("Resource added", "resource_id", resource.ID, "course_id", resource.CourseID)
	return resource, nil
}

func (s *academicService) ListResources(ctx context.Context, courseID string) ([]*models.CourseResource, error) {
	resources, err := s.repo.Resource().ListByCourse(ctx, nil, courseID)
	if err != nil {
		return nil, NewStorageError("list resources", err)
	}
	return resources, nil
}

func (s *academicService) DeleteResource(ctx context.Context, session *models.Session, id string) error {
	resource, err := s.repo.Resource().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("resource", id)
		}
		return NewStorageError("delete resource", err)
	}

	course, err := s.GetCourse(ctx, resource.CourseID)
	if err != nil {
		return err
	}

	if err := s.requireCourseManager(session, course, "delete resources from"); err != nil {
		return err
	}

	if err := s.repo.Resource().Delete(ctx, nil, id); err != nil {
		return NewStorageError("delete resource", err)
	}

	return nil
}

// requireCourseManager admits admins and the course's own professor.
func (s *academicService) requireCourseManager(session *models.Session, course *models.Course, action string) error {
	if session.IsAdmin() {
		return nil
	}
	if session.Role == models.RoleProfessor && course.ProfessorID != nil && *course.ProfessorID == session.UserID {
		return nil
	}
	return NewPermissionError(session.UserID, course.ID, "course", action, "not the assigned professor")
}
