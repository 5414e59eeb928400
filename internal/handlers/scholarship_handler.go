package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// ScholarshipHandler exposes scholarship and application endpoints.
type ScholarshipHandler struct {
	BaseHandler
	scholarshipService services.ScholarshipService
}

func NewScholarshipHandler(scholarshipService services.ScholarshipService, logger utils.Logger) *ScholarshipHandler {
	return &ScholarshipHandler{
		BaseHandler:        NewBaseHandler(logger),
		scholarshipService: scholarshipService,
	}
}

// CreateScholarship creates a scholarship program in a campus
// @Summary Create scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateScholarshipRequest true "Scholarship data"
// @Success 201 {object} models.Scholarship
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scholarships [post]
func (h *ScholarshipHandler) CreateScholarship(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateScholarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	scholarship, err := h.scholarshipService.Create(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Scholarship created", "scholarship_id", scholarship.ID)
	c.JSON(http.StatusCreated, scholarship)
}

// ListScholarships returns the scholarships of one campus
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param campus_id query string true "Campus ID"
// @Param active query bool false "Only active programs"
// @Success 200 {array} models.Scholarship
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scholarships [get]
func (h *ScholarshipHandler) ListScholarships(c *gin.Context) {
	campusID := c.Query("campus_id")
	if campusID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: "campus_id query parameter is required",
		})
		return
	}

	activeOnly := c.Query("active") == "true"
	scholarships, err := h.scholarshipService.List(c.Request.Context(), campusID, activeOnly)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scholarships)
}

// UpdateScholarship changes scholarship program fields
// @Summary Update scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param request body services.UpdateScholarshipRequest true "Fields to change"
// @Success 200 {object} models.Scholarship
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scholarships/{id} [put]
func (h *ScholarshipHandler) UpdateScholarship(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.UpdateScholarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	scholarship, err := h.scholarshipService.Update(c.Request.Context(), session, id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Scholarship updated", "scholarship_id", id)
	c.JSON(http.StatusOK, scholarship)
}

// DeleteScholarship removes a scholarship program
// @Summary Delete scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scholarships/{id} [delete]
func (h *ScholarshipHandler) DeleteScholarship(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.scholarshipService.Delete(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Scholarship deleted", "scholarship_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Scholarship deleted"})
}

// Apply submits a scholarship application for the authenticated student
// @Summary Apply for scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.ApplyScholarshipRequest true "Scholarship to apply for"
// @Success 201 {object} models.ScholarshipApplication
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/scholarships/applications [post]
func (h *ScholarshipHandler) Apply(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.ApplyScholarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	application, err := h.scholarshipService.Apply(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Scholarship application submitted",
		"application_id", application.ID,
		"scholarship_id", req.ScholarshipID,
		"student_id", session.UserID)
	c.JSON(http.StatusCreated, application)
}

// ListApplications returns applications matching the query filters
// @Summary List scholarship applications
// @Description Non-admin callers only see their own applications
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param student_id query string false "Filter by student"
// @Param scholarship_id query string false "Filter by scholarship"
// @Param campus_id query string false "Filter by campus"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.ApplicationListResponse
// @Router /api/v1/scholarships/applications [get]
func (h *ScholarshipHandler) ListApplications(c *gin.Context) {
	session := GetSessionFromContext(c)

	limit, offset := parsePagination(c)
	filters := repositories.ApplicationFilters{
		StudentID:     optionalQuery(c, "student_id"),
		ScholarshipID: optionalQuery(c, "scholarship_id"),
		CampusID:      optionalQuery(c, "campus_id"),
		Limit:         limit,
		Offset:        offset,
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status := models.ApplicationStatus(statusParam)
		filters.Status = &status
	}

	resp, err := h.scholarshipService.ListApplications(c.Request.Context(), session, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetApplicationStatus resolves an application
// @Summary Set application status
// @Description Moves an application to APPROVED or REJECTED; resolved applications never return to PENDING
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body services.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} models.ScholarshipApplication
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scholarships/applications/{id}/status [put]
func (h *ScholarshipHandler) SetApplicationStatus(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	application, err := h.scholarshipService.SetApplicationStatus(c.Request.Context(), session, id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Application status updated", "application_id", id, "status", req.Status)
	c.JSON(http.StatusOK, application)
}

// GetAnalysis returns campus-level scholarship figures
// @Summary Get scholarship analysis
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param campus_id query string true "Campus ID"
// @Success 200 {object} repositories.ScholarshipAnalysis
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scholarships/analysis [get]
func (h *ScholarshipHandler) GetAnalysis(c *gin.Context) {
	session := GetSessionFromContext(c)

	campusID := c.Query("campus_id")
	if campusID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: "campus_id query parameter is required",
		})
		return
	}

	analysis, err := h.scholarshipService.GetAnalysis(c.Request.Context(), session, campusID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
