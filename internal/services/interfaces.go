package services

import (
	"context"
	"time"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type LoginRequest = validator.LoginRequest
type ChangePasswordRequest = validator.ChangePasswordRequest
type CreateCampusRequest = validator.CampusCreateRequest
type UpdateCampusRequest = validator.CampusUpdateRequest
type CreateUserRequest = validator.UserCreateRequest
type UpdateUserProfileRequest = validator.UserProfileUpdateRequest
type CreateCareerRequest = validator.CareerCreateRequest
type UpdateCareerRequest = validator.CareerUpdateRequest
type CreateCourseRequest = validator.CourseCreateRequest
type UpdateCourseRequest = validator.CourseUpdateRequest
type CreateResourceRequest = validator.ResourceCreateRequest
type BulkEnrollRequest = validator.BulkEnrollRequest
type SubmitGradesRequest = validator.GradeSubmitRequest
type OverrideGradeRequest = validator.GradeOverrideRequest
type UpdateEnrollmentStatusRequest = validator.EnrollmentStatusRequest
type SubmitAttendanceRequest = validator.AttendanceSubmitRequest
type CreateScholarshipRequest = validator.ScholarshipCreateRequest
type UpdateScholarshipRequest = validator.ScholarshipUpdateRequest
type ApplyScholarshipRequest = validator.ScholarshipApplyRequest
type UpdateApplicationStatusRequest = validator.ApplicationStatusRequest
type CreateNotificationRequest = validator.NotificationCreateRequest

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type CreateCampusResponse struct {
	Campus *models.Campus `json:"campus"`
	Admin  *models.User   `json:"admin"`
}

type UserListResponse struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

type CourseListResponse struct {
	Courses []*models.Course `json:"courses"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Size    int              `json:"size"`
}

// EnrollmentConflict reports one course of a bulk request that could not be
// enrolled, with the reason kept distinguishable from hard failures.
type EnrollmentConflict struct {
	CourseID string `json:"course_id"`
	Reason   string `json:"reason"`
}

type BulkEnrollResult struct {
	Enrolled  []*models.Enrollment `json:"enrolled"`
	Conflicts []EnrollmentConflict `json:"conflicts"`
}

type KardexResponse struct {
	StudentID string                      `json:"student_id"`
	Entries   []*repositories.KardexEntry `json:"entries"`
}

type RosterResponse struct {
	CourseID string                      `json:"course_id"`
	Term     *string                     `json:"term,omitempty"`
	Entries  []*repositories.RosterEntry `json:"entries"`
}

type AttendanceSheetResponse struct {
	CourseID string                     `json:"course_id"`
	Date     string                     `json:"date"`
	Records  []*models.AttendanceRecord `json:"records"`
}

type ApplicationListResponse struct {
	Applications []*models.ScholarshipApplication `json:"applications"`
	Total        int64                            `json:"total"`
}

type InboxResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	Total         int64                  `json:"total"`
}

type CampusOverview struct {
	Campus *models.Campus            `json:"campus"`
	Stats  *repositories.CampusStats `json:"stats"`
}

type ProfessorOverview struct {
	Stats   *repositories.ProfessorStats `json:"stats"`
	Courses []*models.Course             `json:"courses"`
}

type StudentOverview struct {
	Stats       *repositories.StudentStats `json:"stats"`
	Enrollments []*models.Enrollment       `json:"enrollments"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ChangePassword(ctx context.Context, session *models.Session, req ChangePasswordRequest) error
	GetProfile(ctx context.Context, session *models.Session) (*models.User, error)
}

type CampusService interface {
	Create(ctx context.Context, session *models.Session, req CreateCampusRequest) (*CreateCampusResponse, error)
	GetByID(ctx context.Context, id string) (*models.Campus, error)
	List(ctx context.Context) ([]*models.Campus, error)
	Update(ctx context.Context, session *models.Session, id string, req UpdateCampusRequest) (*models.Campus, error)
	Delete(ctx context.Context, session *models.Session, id string) error
}

type UserService interface {
	Create(ctx context.Context, session *models.Session, req CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, session *models.Session, id string) (*models.User, error)
	List(ctx context.Context, session *models.Session, filters repositories.UserFilters) (*UserListResponse, error)
	UpdateProfile(ctx context.Context, session *models.Session, id string, req UpdateUserProfileRequest) (*models.User, error)
	Delete(ctx context.Context, session *models.Session, id string) error
}

type AcademicService interface {
	// Careers
	CreateCareer(ctx context.Context, session *models.Session, req CreateCareerRequest) (*models.Career, error)
	GetCareer(ctx context.Context, id string) (*models.Career, error)
	ListCareers(ctx context.Context, campusID string) ([]*models.Career, error)
	UpdateCareer(ctx context.Context, session *models.Session, id string, req UpdateCareerRequest) (*models.Career, error)
	DeleteCareer(ctx context.Context, session *models.Session, id string) error
	GetPensum(ctx context.Context, careerID string) ([]*models.Course, error)

	// Courses
	CreateCourse(ctx context.Context, session *models.Session, req CreateCourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, filters repositories.CourseFilters) (*CourseListResponse, error)
	UpdateCourse(ctx context.Context, session *models.Session, id string, req UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, session *models.Session, id string) error

	// Course resources
	AddResource(ctx context.Context, session *models.Session, req CreateResourceRequest) (*models.CourseResource, error)
	ListResources(ctx context.Context, courseID string) ([]*models.CourseResource, error)
	DeleteResource(ctx context.Context, session *models.Session, id string) error
}

type EnrollmentService interface {
	BulkEnroll(ctx context.Context, session *models.Session, req BulkEnrollRequest) (*BulkEnrollResult, error)
	GetKardex(ctx context.Context, session *models.Session, studentID string) (*KardexResponse, error)
	GetRoster(ctx context.Context, session *models.Session, courseID string, term *string) (*RosterResponse, error)
	GetAvailableCourses(ctx context.Context, session *models.Session, term string) ([]*models.Course, error)
	UpdateStatus(ctx context.Context, session *models.Session, enrollmentID string, req UpdateEnrollmentStatusRequest) error
}

type GradingService interface {
	SubmitComponentGrades(ctx context.Context, session *models.Session, enrollmentID string, req SubmitGradesRequest) (*models.Enrollment, error)
	OverrideFinalGrade(ctx context.Context, session *models.Session, enrollmentID string, req OverrideGradeRequest) (*models.Enrollment, error)
}

type AttendanceService interface {
	RecordSheet(ctx context.Context, session *models.Session, req SubmitAttendanceRequest) (*AttendanceSheetResponse, error)
	GetSheet(ctx context.Context, session *models.Session, courseID, date string) (*AttendanceSheetResponse, error)
	GetStudentAttendance(ctx context.Context, session *models.Session, studentID string, courseID *string) ([]*models.AttendanceRecord, error)
}

type ScholarshipService interface {
	Create(ctx context.Context, session *models.Session, req CreateScholarshipRequest) (*models.Scholarship, error)
	List(ctx context.Context, campusID string, activeOnly bool) ([]*models.Scholarship, error)
	Update(ctx context.Context, session *models.Session, id string, req UpdateScholarshipRequest) (*models.Scholarship, error)
	Delete(ctx context.Context, session *models.Session, id string) error

	Apply(ctx context.Context, session *models.Session, req ApplyScholarshipRequest) (*models.ScholarshipApplication, error)
	ListApplications(ctx context.Context, session *models.Session, filters repositories.ApplicationFilters) (*ApplicationListResponse, error)
	SetApplicationStatus(ctx context.Context, session *models.Session, applicationID string, req UpdateApplicationStatusRequest) (*models.ScholarshipApplication, error)
	GetAnalysis(ctx context.Context, session *models.Session, campusID string) (*repositories.ScholarshipAnalysis, error)
}

type NotificationService interface {
	Send(ctx context.Context, session *models.Session, req CreateNotificationRequest) (*models.Notification, error)
	Inbox(ctx context.Context, session *models.Session, limit, offset int) (*InboxResponse, error)
	List(ctx context.Context, session *models.Session, filters repositories.NotificationFilters) (*NotificationListResponse, error)
	MarkRead(ctx context.Context, session *models.Session, id string) error
	Delete(ctx context.Context, session *models.Session, id string) error
}

type DashboardService interface {
	CampusOverview(ctx context.Context, session *models.Session, campusID string) (*CampusOverview, error)
	ProfessorOverview(ctx context.Context, session *models.Session) (*ProfessorOverview, error)
	StudentOverview(ctx context.Context, session *models.Session) (*StudentOverview, error)
}

type ReportService interface {
	// GradeSheetXLSX renders the roster of a course as a spreadsheet.
	GradeSheetXLSX(ctx context.Context, session *models.Session, courseID string, term *string) ([]byte, string, error)

	// KardexXLSX renders a student's academic history as a spreadsheet.
	KardexXLSX(ctx context.Context, session *models.Session, studentID string) ([]byte, string, error)
}

// ServiceManager provides access to all services
type ServiceManager interface {
	Auth() AuthService
	Campus() CampusService
	User() UserService
	Academic() AcademicService
	Enrollment() EnrollmentService
	Grading() GradingService
	Attendance() AttendanceService
	Scholarship() ScholarshipService
	Notification() NotificationService
	Dashboard() DashboardService
	Report() ReportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
