package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// HandlerManager wires every handler and mounts the route tree.
type HandlerManager struct {
	serviceManager services.ServiceManager
	authManager    *AuthManager
	logger         utils.Logger

	auth         *AuthHandler
	campus       *CampusHandler
	user         *UserHandler
	academic     *AcademicHandler
	enrollment   *EnrollmentHandler
	grading      *GradingHandler
	attendance   *AttendanceHandler
	scholarship  *ScholarshipHandler
	notification *NotificationHandler
	dashboard    *DashboardHandler
	report       *ReportHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, jwtSecret string, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		serviceManager: serviceManager,
		authManager:    NewAuthManager(jwtSecret),
		logger:         logger,

		auth:         NewAuthHandler(serviceManager.Auth(), logger),
		campus:       NewCampusHandler(serviceManager.Campus(), logger),
		user:         NewUserHandler(serviceManager.User(), logger),
		academic:     NewAcademicHandler(serviceManager.Academic(), logger),
		enrollment:   NewEnrollmentHandler(serviceManager.Enrollment(), logger),
		grading:      NewGradingHandler(serviceManager.Grading(), logger),
		attendance:   NewAttendanceHandler(serviceManager.Attendance(), logger),
		scholarship:  NewScholarshipHandler(serviceManager.Scholarship(), logger),
		notification: NewNotificationHandler(serviceManager.Notification(), logger),
		dashboard:    NewDashboardHandler(serviceManager.Dashboard(), logger),
		report:       NewReportHandler(serviceManager.Report(), logger),
	}
}

// SetupRoutes mounts the public and authenticated route groups.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	v1 := router.Group("/api/v1")

	// Public
	v1.POST("/auth/login", hm.auth.Login)

	// Everything below requires a valid token
	authed := v1.Group("")
	authed.Use(hm.authManager.AuthMiddleware())

	admin := hm.authManager.RequireRoleMiddleware() // admins only
	professors := hm.authManager.RequireRoleMiddleware(models.RoleProfessor)
	students := hm.authManager.RequireRoleMiddleware(models.RoleStudent)

	// Account
	authed.GET("/auth/me", hm.auth.GetProfile)
	authed.PUT("/auth/password", hm.auth.ChangePassword)

	// Campuses
	authed.POST("/campuses", admin, hm.campus.CreateCampus)
	authed.GET("/campuses", hm.campus.ListCampuses)
	authed.GET("/campuses/:id", hm.campus.GetCampus)
	authed.PUT("/campuses/:id", admin, hm.campus.UpdateCampus)
	authed.DELETE("/campuses/:id", admin, hm.campus.DeleteCampus)

	// Users
	authed.POST("/users", admin, hm.user.CreateUser)
	authed.GET("/users", hm.user.ListUsers)
	authed.GET("/users/:id", hm.user.GetUser)
	authed.PUT("/users/:id", hm.user.UpdateUserProfile)
	authed.DELETE("/users/:id", admin, hm.user.DeleteUser)

	// Careers
	authed.POST("/careers", admin, hm.academic.CreateCareer)
	authed.GET("/careers", hm.academic.ListCareers)
	authed.GET("/careers/:id", hm.academic.GetCareer)
	authed.PUT("/careers/:id", admin, hm.academic.UpdateCareer)
	authed.DELETE("/careers/:id", admin, hm.academic.DeleteCareer)
	authed.GET("/careers/:id/pensum", hm.academic.GetPensum)

	// Courses
	authed.POST("/courses", admin, hm.academic.CreateCourse)
	authed.GET("/courses", hm.academic.ListCourses)
	authed.GET("/courses/:id", hm.academic.GetCourse)
	authed.PUT("/courses/:id", admin, hm.academic.UpdateCourse)
	authed.DELETE("/courses/:id", admin, hm.academic.DeleteCourse)
	authed.GET("/courses/:id/roster", professors, hm.enrollment.GetRoster)
	authed.GET("/courses/:id/attendance", professors, hm.attendance.GetSheet)
	authed.GET("/courses/:id/resources", hm.academic.ListResources)

	// Course resources
	authed.POST("/resources", professors, hm.academic.AddResource)
	authed.DELETE("/resources/:id", professors, hm.academic.DeleteResource)

	// Enrollments and grades
	// Students reach the bulk endpoint too; the service restricts them
	// to enrolling themselves
	authed.POST("/enrollments/bulk", students, hm.enrollment.BulkEnroll)
	authed.GET("/enrollments/available", students, hm.enrollment.GetAvailableCourses)
	authed.PUT("/enrollments/:id/status", admin, hm.enrollment.UpdateEnrollmentStatus)
	authed.PUT("/enrollments/:id/grades", professors, hm.grading.SubmitGrades)
	authed.PUT("/enrollments/:id/grades/override", admin, hm.grading.OverrideGrade)

	// Student records
	authed.GET("/students/:id/kardex", hm.enrollment.GetKardex)
	authed.GET("/students/:id/attendance", hm.attendance.GetStudentAttendance)

	// Attendance
	authed.PUT("/attendance", professors, hm.attendance.RecordSheet)

	// Scholarships
	authed.POST("/scholarships", admin, hm.scholarship.CreateScholarship)
	authed.GET("/scholarships", hm.scholarship.ListScholarships)
	authed.PUT("/scholarships/:id", admin, hm.scholarship.UpdateScholarship)
	authed.DELETE("/scholarships/:id", admin, hm.scholarship.DeleteScholarship)
	authed.GET("/scholarships/analysis", admin, hm.scholarship.GetAnalysis)
	authed.POST("/scholarships/applications", students, hm.scholarship.Apply)
	authed.GET("/scholarships/applications", hm.scholarship.ListApplications)
	authed.PUT("/scholarships/applications/:id/status", admin, hm.scholarship.SetApplicationStatus)

	// Notifications
	authed.POST("/notifications", professors, hm.notification.Send)
	authed.GET("/notifications", hm.notification.Inbox)
	authed.GET("/notifications/all", admin, hm.notification.ListAll)
	authed.PUT("/notifications/:id/read", hm.notification.MarkRead)
	authed.DELETE("/notifications/:id", hm.notification.Delete)

	// Dashboards
	authed.GET("/dashboard/campus/:id", admin, hm.dashboard.CampusOverview)
	authed.GET("/dashboard/professor", professors, hm.dashboard.ProfessorOverview)
	authed.GET("/dashboard/student", students, hm.dashboard.StudentOverview)

	// Reports
	authed.GET("/reports/courses/:id/grades", professors, hm.report.GradeSheet)
	authed.GET("/reports/students/:id/kardex", hm.report.Kardex)
}

// healthCheck reports service health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		hm.logger.Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
