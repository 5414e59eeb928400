package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// AcademicHandler exposes career, course and course resource endpoints.
type AcademicHandler struct {
	BaseHandler
	academicService services.AcademicService
}

func NewAcademicHandler(academicService services.AcademicService, logger utils.Logger) *AcademicHandler {
	return &AcademicHandler{
		BaseHandler:     NewBaseHandler(logger),
		academicService: academicService,
	}
}

// ===== CAREERS =====

// CreateCareer creates a career in a campus
// @Summary Create career
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateCareerRequest true "Career data"
// @Success 201 {object} models.Career
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/careers [post]
func (h *AcademicHandler) CreateCareer(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	career, err := h.academicService.CreateCareer(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Career created", "career_id", career.ID)
	c.JSON(http.StatusCreated, career)
}

// GetCareer returns one career by ID
// @Summary Get career
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {object} models.Career
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/careers/{id} [get]
func (h *AcademicHandler) GetCareer(c *gin.Context) {
	career, err := h.academicService.GetCareer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, career)
}

// ListCareers returns the careers of one campus
// @Summary List careers
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param campus_id query string true "Campus ID"
// @Success 200 {array} models.Career
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/careers [get]
func (h *AcademicHandler) ListCareers(c *gin.Context) {
	campusID := c.Query("campus_id")
	if campusID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: "campus_id query parameter is required",
		})
		return
	}

	careers, err := h.academicService.ListCareers(c.Request.Context(), campusID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, careers)
}

// UpdateCareer changes career fields
// @Summary Update career
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Param request body services.UpdateCareerRequest true "Fields to change"
// @Success 200 {object} models.Career
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/careers/{id} [put]
func (h *AcademicHandler) UpdateCareer(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	var req services.UpdateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	career, err := h.academicService.UpdateCareer(c.Request.Context(), session, id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Career updated", "career_id", id)
	c.JSON(http.StatusOK, career)
}

// DeleteCareer removes a career
// @Summary Delete career
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/careers/{id} [delete]
func (h *AcademicHandler) DeleteCareer(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.academicService.DeleteCareer(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Career deleted", "career_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Career deleted"})
}

// GetPensum returns the curriculum of a career ordered by semester
// @Summary Get career pensum
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {array} models.Course
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/careers/{id}/pensum [get]
func (h *AcademicHandler) GetPensum(c *gin.Context) {
	courses, err := h.academicService.GetPensum(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// ===== COURSES =====

// CreateCourse creates a course
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/courses [post]
func (h *AcademicHandler) CreateCourse(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	course, err := h.academicService.CreateCourse(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Course created", "course_id", course.ID, "code", course.Code)
	c.JSON(http.StatusCreated, course)
}

// GetCourse returns one course by ID
// @Summary Get course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/courses/{id} [get]
func (h *AcademicHandler) GetCourse(c *gin.Context) {
	course, err := h.academicService.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// ListCourses returns courses matching the query filters
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param campus_id query string false "Filter by campus"
// @Param career_id query string false "Filter by career"
// @Param professor_id query string false "Filter by professor"
// @Param semester query int false "Filter by semester"
// @Param search query string false "Match against name or code"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.CourseListResponse
// @Router /api/v1/courses [get]
func (h *AcademicHandler) ListCourses(c *gin.Context) {
	limit, offset := parsePagination(c)
	filters := repositories.CourseFilters{
		CampusID:    optionalQuery(c, "campus_id"),
		CareerID:    optionalQuery(c, "career_id"),
		ProfessorID: optionalQuery(c, "professor_id"),
		Semester:    parseIntQuery(c, "semester"),
		Search:      c.Query("search"),
		Limit:       limit,
		Offset:      offset,
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}

	resp, err := h.academicService.ListCourses(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCourse updates course fields
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body services.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} models.Course
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/courses/{id} [put]
func (h *AcademicHandler) UpdateCourse(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	course, err := h.academicService.UpdateCourse(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Course updated", "course_id", course.ID)
	c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/courses/{id} [delete]
func (h *AcademicHandler) DeleteCourse(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.academicService.DeleteCourse(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Course deleted", "course_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Course deleted"})
}

// ===== COURSE RESOURCES =====

// AddResource attaches study material to a course
// @Summary Add course resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateResourceRequest true "Resource data"
// @Success 201 {object} models.CourseResource
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/resources [post]
func (h *AcademicHandler) AddResource(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resource, err := h.academicService.AddResource(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Resource added", "resource_id", resource.ID, "course_id", resource.CourseID)
	c.JSON(http.StatusCreated, resource)
}

// ListResources returns the materials of one course
// @Summary List course resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} models.CourseResource
// @Router /api/v1/courses/{id}/resources [get]
func (h *AcademicHandler) ListResources(c *gin.Context) {
	resources, err := h.academicService.ListResources(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

// DeleteResource removes study material from a course
// @Summary Delete course resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/resources/{id} [delete]
func (h *AcademicHandler) DeleteResource(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.academicService.DeleteResource(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Resource deleted", "resource_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Resource deleted"})
}
