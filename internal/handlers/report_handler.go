package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler exposes spreadsheet export endpoints.
type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
	}
}

// GradeSheet downloads a course grade sheet as XLSX
// @Summary Export grade sheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param term query string false "Restrict to one term"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/reports/courses/{id}/grades [get]
func (h *ReportHandler) GradeSheet(c *gin.Context) {
	session := GetSessionFromContext(c)

	data, filename, err := h.reportService.GradeSheetXLSX(c.Request.Context(), session, c.Param("id"), optionalQuery(c, "term"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Grade sheet downloaded", "course_id", c.Param("id"), "filename", filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, xlsxContentType, data)
}

// Kardex downloads a student's academic history as XLSX
// @Summary Export kardex
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/reports/students/{id}/kardex [get]
func (h *ReportHandler) Kardex(c *gin.Context) {
	session := GetSessionFromContext(c)

	data, filename, err := h.reportService.KardexXLSX(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Kardex downloaded", "student_id", c.Param("id"), "filename", filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, xlsxContentType, data)
}
