package services

import (
	"context"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

// Test fakes: each sub-repository embeds its interface and overrides only
// the methods a test exercises. Calling anything not overridden panics,
// which makes an unexpected repository call a loud test failure.

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validator.Validator {
	return validator.New()
}

func adminSession(campusID string) *models.Session {
	return &models.Session{UserID: "admin-1", Role: models.RoleAdmin, CampusID: campusID}
}

func professorSession(userID, campusID string) *models.Session {
	return &models.Session{UserID: userID, Role: models.RoleProfessor, CampusID: campusID}
}

func studentSession(userID, campusID string) *models.Session {
	return &models.Session{UserID: userID, Role: models.RoleStudent, CampusID: campusID}
}

func ptrInt(v int) *int          { return &v }
func ptrString(v string) *string { return &v }

// ===== AGGREGATE FAKE =====

type fakeRepository struct {
	repositories.Repository

	campuses     *fakeCampusRepo
	users        *fakeUserRepo
	careers      *fakeCareerRepo
	courses      *fakeCourseRepo
	enrollments  *fakeEnrollmentRepo
	attendance   *fakeAttendanceRepo
	scholarships *fakeScholarshipRepo
	notes        *fakeNotificationRepo
}

func (f *fakeRepository) Campus() repositories.CampusRepository {
	return f.campuses
}

func (f *fakeRepository) Career() repositories.CareerRepository {
	return f.careers
}

func (f *fakeRepository) User() repositories.UserRepository {
	return f.users
}

func (f *fakeRepository) Course() repositories.CourseRepository {
	return f.courses
}

func (f *fakeRepository) Enrollment() repositories.EnrollmentRepository {
	return f.enrollments
}

func (f *fakeRepository) Attendance() repositories.AttendanceRepository {
	return f.attendance
}

func (f *fakeRepository) Scholarship() repositories.ScholarshipRepository {
	return f.scholarships
}

func (f *fakeRepository) Notification() repositories.NotificationRepository {
	return f.notes
}

// WithTransaction runs the function against the same fakes; tests assert
// on call order instead of real transactional behavior.
func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}

// ===== SUB-REPOSITORY FAKES =====

type fakeCampusRepo struct {
	repositories.CampusRepository

	create    func(campus *models.Campus) error
	getByID   func(id string) (*models.Campus, error)
	getByCode func(code string) (*models.Campus, error)
}

func (f *fakeCampusRepo) Create(ctx context.Context, tx *gorm.DB, campus *models.Campus) error {
	return f.create(campus)
}

func (f *fakeCampusRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Campus, error) {
	return f.getByID(id)
}

func (f *fakeCampusRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Campus, error) {
	return f.getByCode(code)
}

type fakeUserRepo struct {
	repositories.UserRepository

	create              func(user *models.User) error
	getByID             func(id string) (*models.User, error)
	getByEmailAndCampus func(email, campusID string) (*models.User, error)
	updatePassword      func(id, hash string) error
	existsByEmail       func(email string) (bool, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return f.create(user)
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return f.existsByEmail(email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	return f.getByID(id)
}

func (f *fakeUserRepo) GetByEmailAndCampus(ctx context.Context, tx *gorm.DB, email, campusID string) (*models.User, error) {
	return f.getByEmailAndCampus(email, campusID)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, tx *gorm.DB, id string, hash string) error {
	return f.updatePassword(id, hash)
}

type fakeCareerRepo struct {
	repositories.CareerRepository

	getByID func(id string) (*models.Career, error)
	update  func(career *models.Career) error
}

func (f *fakeCareerRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Career, error) {
	return f.getByID(id)
}

func (f *fakeCareerRepo) Update(ctx context.Context, tx *gorm.DB, career *models.Career) error {
	return f.update(career)
}

type fakeCourseRepo struct {
	repositories.CourseRepository

	getByID      func(id string) (*models.Course, error)
	getAvailable func(campusID, studentID, term string) ([]*models.Course, error)
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Course, error) {
	return f.getByID(id)
}

func (f *fakeCourseRepo) GetAvailable(ctx context.Context, tx *gorm.DB, campusID, studentID, term string) ([]*models.Course, error) {
	return f.getAvailable(campusID, studentID, term)
}

type fakeEnrollmentRepo struct {
	repositories.EnrollmentRepository

	create              func(enrollment *models.Enrollment) error
	getByID             func(id string) (*models.Enrollment, error)
	updateGrades        func(id string, update repositories.GradeUpdate) error
	updateFinalGrade    func(id string, grade int) error
	getHistoryByStudent func(studentID string) ([]*repositories.KardexEntry, error)
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error {
	return f.create(enrollment)
}

func (f *fakeEnrollmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Enrollment, error) {
	return f.getByID(id)
}

func (f *fakeEnrollmentRepo) UpdateGrades(ctx context.Context, tx *gorm.DB, id string, update repositories.GradeUpdate) error {
	return f.updateGrades(id, update)
}

func (f *fakeEnrollmentRepo) UpdateFinalGrade(ctx context.Context, tx *gorm.DB, id string, grade int) error {
	return f.updateFinalGrade(id, grade)
}

func (f *fakeEnrollmentRepo) GetHistoryByStudent(ctx context.Context, tx *gorm.DB, studentID string) ([]*repositories.KardexEntry, error) {
	return f.getHistoryByStudent(studentID)
}

type fakeAttendanceRepo struct {
	repositories.AttendanceRepository

	createBatch        func(records []*models.AttendanceRecord) error
	deleteByCourseDate func(courseID, date string) error
	getByCourseDate    func(courseID, date string) ([]*models.AttendanceRecord, error)
	getByStudent       func(studentID string, courseID *string) ([]*models.AttendanceRecord, error)
}

func (f *fakeAttendanceRepo) CreateBatch(ctx context.Context, tx *gorm.DB, records []*models.AttendanceRecord) error {
	return f.createBatch(records)
}

func (f *fakeAttendanceRepo) DeleteByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) error {
	return f.deleteByCourseDate(courseID, date)
}

func (f *fakeAttendanceRepo) GetByCourseDate(ctx context.Context, tx *gorm.DB, courseID, date string) ([]*models.AttendanceRecord, error) {
	return f.getByCourseDate(courseID, date)
}

func (f *fakeAttendanceRepo) GetByStudent(ctx context.Context, tx *gorm.DB, studentID string, courseID *string) ([]*models.AttendanceRecord, error) {
	return f.getByStudent(studentID, courseID)
}

type fakeScholarshipRepo struct {
	repositories.ScholarshipRepository

	getByID                 func(id string) (*models.Scholarship, error)
	update                  func(id string, update repositories.ScholarshipUpdate) error
	hasApplication          func(studentID, scholarshipID string) (bool, error)
	createApplication       func(app *models.ScholarshipApplication) error
	getApplicationByID      func(id string) (*models.ScholarshipApplication, error)
	listApplications        func(filters repositories.ApplicationFilters) ([]*models.ScholarshipApplication, int64, error)
	updateApplicationStatus func(id string, status models.ApplicationStatus) error
}

func (f *fakeScholarshipRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Scholarship, error) {
	return f.getByID(id)
}

func (f *fakeScholarshipRepo) Update(ctx context.Context, tx *gorm.DB, id string, update repositories.ScholarshipUpdate) error {
	return f.update(id, update)
}

func (f *fakeScholarshipRepo) HasApplication(ctx context.Context, tx *gorm.DB, studentID, scholarshipID string) (bool, error) {
	return f.hasApplication(studentID, scholarshipID)
}

func (f *fakeScholarshipRepo) CreateApplication(ctx context.Context, tx *gorm.DB, app *models.ScholarshipApplication) error {
	return f.createApplication(app)
}

func (f *fakeScholarshipRepo) GetApplicationByID(ctx context.Context, tx *gorm.DB, id string) (*models.ScholarshipApplication, error) {
	return f.getApplicationByID(id)
}

func (f *fakeScholarshipRepo) ListApplications(ctx context.Context, tx *gorm.DB, filters repositories.ApplicationFilters) ([]*models.ScholarshipApplication, int64, error) {
	return f.listApplications(filters)
}

func (f *fakeScholarshipRepo) UpdateApplicationStatus(ctx context.Context, tx *gorm.DB, id string, status models.ApplicationStatus) error {
	return f.updateApplicationStatus(id, status)
}

type fakeNotificationRepo struct {
	repositories.NotificationRepository

	create           func(notification *models.Notification) error
	getByID          func(id string) (*models.Notification, error)
	listForRecipient func(userID string, limit, offset int) ([]*models.Notification, error)
	list             func(filters repositories.NotificationFilters) ([]*models.Notification, int64, error)
	markRead         func(id string) error
	countUnread      func(userID string) (int64, error)
	delete           func(id string) error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error {
	return f.create(notification)
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Notification, error) {
	return f.getByID(id)
}

func (f *fakeNotificationRepo) ListForRecipient(ctx context.Context, tx *gorm.DB, userID string, limit, offset int) ([]*models.Notification, error) {
	return f.listForRecipient(userID, limit, offset)
}

func (f *fakeNotificationRepo) List(ctx context.Context, tx *gorm.DB, filters repositories.NotificationFilters) ([]*models.Notification, int64, error) {
	return f.list(filters)
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, id string) error {
	return f.markRead(id)
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, tx *gorm.DB, userID string) (int64, error) {
	return f.countUnread(userID)
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return f.delete(id)
}
