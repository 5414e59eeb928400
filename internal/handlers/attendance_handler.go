package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// AttendanceHandler exposes attendance sheet endpoints.
type AttendanceHandler struct {
	BaseHandler
	attendanceService services.AttendanceService
}

func NewAttendanceHandler(attendanceService services.AttendanceService, logger utils.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler:       NewBaseHandler(logger),
		attendanceService: attendanceService,
	}
}

// RecordSheet replaces the attendance sheet of a course for one date
// @Summary Record attendance sheet
// @Description Replaces the whole sheet for (course, date); an empty record list clears the day
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.SubmitAttendanceRequest true "Course, date and records"
// @Success 200 {object} services.AttendanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/attendance [put]
func (h *AttendanceHandler) RecordSheet(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.SubmitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	sheet, err := h.attendanceService.RecordSheet(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Attendance sheet recorded",
		"course_id", req.CourseID,
		"date", req.Date,
		"records", len(sheet.Records))
	c.JSON(http.StatusOK, sheet)
}

// GetSheet returns the attendance sheet of a course for one date
// @Summary Get attendance sheet
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} services.AttendanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/courses/{id}/attendance [get]
func (h *AttendanceHandler) GetSheet(c *gin.Context) {
	session := GetSessionFromContext(c)

	sheet, err := h.attendanceService.GetSheet(c.Request.Context(), session, c.Param("id"), c.Query("date"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// GetStudentAttendance returns a student's attendance records
// @Summary Get student attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param course_id query string false "Restrict to one course"
// @Success 200 {array} models.AttendanceRecord
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/students/{id}/attendance [get]
func (h *AttendanceHandler) GetStudentAttendance(c *gin.Context) {
	session := GetSessionFromContext(c)

	records, err := h.attendanceService.GetStudentAttendance(c.Request.Context(), session, c.Param("id"), optionalQuery(c, "course_id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
