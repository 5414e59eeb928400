package repositories

import "context"

// Repository aggregates all per-domain repository interfaces.
type Repository interface {
	// Tenancy domain
	Campus() CampusRepository
	User() UserRepository

	// Academic catalog domain
	Career() CareerRepository
	Course() CourseRepository
	Resource() ResourceRepository

	// Enrollment domain
	Enrollment() EnrollmentRepository
	Attendance() AttendanceRepository

	// Scholarship domain
	Scholarship() ScholarshipRepository

	// Messaging domain
	Notification() NotificationRepository

	// Dashboard domain
	Dashboard() DashboardRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
