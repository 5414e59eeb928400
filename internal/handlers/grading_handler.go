package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// GradingHandler exposes grade recording endpoints.
type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
}

func NewGradingHandler(gradingService services.GradingService, logger utils.Logger) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
	}
}

// SubmitGrades records component scores for one enrollment
// @Summary Submit component grades
// @Description Records the provided component scores and recomputes the final grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body services.SubmitGradesRequest true "Component scores"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/enrollments/{id}/grades [put]
func (h *GradingHandler) SubmitGrades(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.SubmitGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	enrollment, err := h.gradingService.SubmitComponentGrades(c.Request.Context(), session, id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Grades submitted", "enrollment_id", id, "graded_by", session.UserID)
	c.JSON(http.StatusOK, enrollment)
}

// OverrideGrade sets the final grade directly
// @Summary Override final grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body services.OverrideGradeRequest true "Final grade"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/enrollments/{id}/grades/override [put]
func (h *GradingHandler) OverrideGrade(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.OverrideGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	enrollment, err := h.gradingService.OverrideFinalGrade(c.Request.Context(), session, id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Final grade overridden", "enrollment_id", id, "grade", req.Grade, "overridden_by", session.UserID)
	c.JSON(http.StatusOK, enrollment)
}
