package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// CampusHandler exposes campus management endpoints.
type CampusHandler struct {
	BaseHandler
	campusService services.CampusService
}

func NewCampusHandler(campusService services.CampusService, logger utils.Logger) *CampusHandler {
	return &CampusHandler{
		BaseHandler:   NewBaseHandler(logger),
		campusService: campusService,
	}
}

// CreateCampus creates a campus together with its admin account
// @Summary Create campus
// @Description Creates a campus and its initial admin user in one transaction
// @Tags campuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateCampusRequest true "Campus and admin data"
// @Success 201 {object} services.CreateCampusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/campuses [post]
func (h *CampusHandler) CreateCampus(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateCampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.campusService.Create(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Campus created", "campus_id", resp.Campus.ID, "admin_id", resp.Admin.ID)
	c.JSON(http.StatusCreated, resp)
}

// GetCampus returns one campus by ID
// @Summary Get campus
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Success 200 {object} models.Campus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/campuses/{id} [get]
func (h *CampusHandler) GetCampus(c *gin.Context) {
	campus, err := h.campusService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campus)
}

// ListCampuses returns all campuses
// @Summary List campuses
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Campus
// @Router /api/v1/campuses [get]
func (h *CampusHandler) ListCampuses(c *gin.Context) {
	campuses, err := h.campusService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campuses)
}

// UpdateCampus updates campus fields
// @Summary Update campus
// @Tags campuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Param request body services.UpdateCampusRequest true "Fields to change"
// @Success 200 {object} models.Campus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/campuses/{id} [put]
func (h *CampusHandler) UpdateCampus(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.UpdateCampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	campus, err := h.campusService.Update(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Campus updated", "campus_id", campus.ID)
	c.JSON(http.StatusOK, campus)
}

// DeleteCampus removes a campus and everything attached to it
// @Summary Delete campus
// @Description Deletes a campus; users, careers, courses and dependent records go with it
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/campuses/{id} [delete]
func (h *CampusHandler) DeleteCampus(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.campusService.Delete(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Campus deleted", "campus_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Campus deleted"})
}
