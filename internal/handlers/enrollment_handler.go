package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// EnrollmentHandler exposes enrollment and academic history endpoints.
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService services.EnrollmentService, logger utils.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		enrollmentService: enrollmentService,
	}
}

// BulkEnroll enrolls a student into several courses for a term
// @Summary Bulk enroll
// @Description Enrolls a student into each requested course independently; failures are reported per course. Students may only enroll themselves
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.BulkEnrollRequest true "Student, courses and term"
// @Success 200 {object} services.BulkEnrollResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/enrollments/bulk [post]
func (h *EnrollmentHandler) BulkEnroll(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.BulkEnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	result, err := h.enrollmentService.BulkEnroll(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Bulk enrollment processed",
		"student_id", req.StudentID,
		"enrolled", len(result.Enrolled),
		"conflicts", len(result.Conflicts))
	c.JSON(http.StatusOK, result)
}

// GetKardex returns a student's full academic history
// @Summary Get kardex
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} services.KardexResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/students/{id}/kardex [get]
func (h *EnrollmentHandler) GetKardex(c *gin.Context) {
	session := GetSessionFromContext(c)

	kardex, err := h.enrollmentService.GetKardex(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, kardex)
}

// GetRoster returns the students enrolled in a course
// @Summary Get course roster
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param term query string false "Restrict to one term"
// @Success 200 {object} services.RosterResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/courses/{id}/roster [get]
func (h *EnrollmentHandler) GetRoster(c *gin.Context) {
	session := GetSessionFromContext(c)

	roster, err := h.enrollmentService.GetRoster(c.Request.Context(), session, c.Param("id"), optionalQuery(c, "term"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetAvailableCourses returns campus courses the student is not enrolled in for a term
// @Summary Get available courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param term query string true "Term, e.g. 2025-1"
// @Success 200 {array} models.Course
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/enrollments/available [get]
func (h *EnrollmentHandler) GetAvailableCourses(c *gin.Context) {
	session := GetSessionFromContext(c)

	courses, err := h.enrollmentService.GetAvailableCourses(c.Request.Context(), session, c.Query("term"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// UpdateEnrollmentStatus changes the lifecycle status of one enrollment
// @Summary Update enrollment status
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body services.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/enrollments/{id}/status [put]
func (h *EnrollmentHandler) UpdateEnrollmentStatus(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.UpdateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.enrollmentService.UpdateStatus(c.Request.Context(), session, id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Enrollment status updated", "enrollment_id", id, "status", req.Status)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Enrollment status updated"})
}
