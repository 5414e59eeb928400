package services

import (
	"context"
	"log/slog"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *dashboardService) CampusOverview(ctx context.Context, session *models.Session, campusID string) (*CampusOverview, error) {
	if !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, campusID, "campus overview", "read", "admin role required")
	}

	campus, err := s.repo.Campus().GetByID(ctx, nil, campusID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("campus", campusID)
		}
		return nil, NewStorageError("get campus overview", err)
	}

	stats, err := s.repo.Dashboard().GetCampusStats(ctx, nil, campusID)
	if err != nil {
		return nil, NewStorageError("get campus overview", err)
	}

	return &CampusOverview{
		Campus: campus,
		Stats:  stats,
	}, nil
}

func (s *dashboardService) ProfessorOverview(ctx context.Context, session *models.Session) (*ProfessorOverview, error) {
	if session.Role != models.RoleProfessor && !session.IsAdmin() {
		return nil, NewPermissionError(session.UserID, "", "professor overview", "read", "professor role required")
	}

	stats, err := s.repo.Dashboard().GetProfessorStats(ctx, nil, session.UserID)
	if err != nil {
		return nil, NewStorageError("get professor overview", err)
	}

	professorID := session.UserID
	courses, _, err := s.repo.Course().List(ctx, nil, repositories.CourseFilters{
		ProfessorID: &professorID,
	})
	if err != nil {
		return nil, NewStorageError("get professor overview", err)
	}

	return &ProfessorOverview{
		Stats:   stats,
		Courses: courses,
	}, nil
}

func (s *dashboardService) StudentOverview(ctx context.Context, session *models.Session) (*StudentOverview, error) {
	if session.Role != models.RoleStudent {
		return nil, NewPermissionError(session.UserID, "", "student overview", "read", "student role required")
	}

	stats, err := s.repo.Dashboard().GetStudentStats(ctx, nil, session.UserID)
	if err != nil {
		return nil, NewStorageError("get student overview", err)
	}

	studentID := session.UserID
	active := models.EnrollmentActive
	enrollments, _, err := s.repo.Enrollment().List(ctx, nil, repositories.EnrollmentFilters{
		StudentID: &studentID,
		Status:    &active,
	})
	if err != nil {
		return nil, NewStorageError("get student overview", err)
	}

	return &StudentOverview{
		Stats:       stats,
		Enrollments: enrollments,
	}, nil
}
