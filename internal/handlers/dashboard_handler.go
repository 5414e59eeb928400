package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// DashboardHandler exposes aggregated overview endpoints.
type DashboardHandler struct {
	BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardService: dashboardService,
	}
}

// CampusOverview returns headline figures for one campus
// @Summary Campus overview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Success 200 {object} services.CampusOverview
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/dashboard/campus/{id} [get]
func (h *DashboardHandler) CampusOverview(c *gin.Context) {
	session := GetSessionFromContext(c)

	overview, err := h.dashboardService.CampusOverview(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ProfessorOverview returns the authenticated professor's teaching figures
// @Summary Professor overview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ProfessorOverview
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/dashboard/professor [get]
func (h *DashboardHandler) ProfessorOverview(c *gin.Context) {
	session := GetSessionFromContext(c)

	overview, err := h.dashboardService.ProfessorOverview(c.Request.Context(), session)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// StudentOverview returns the authenticated student's academic figures
// @Summary Student overview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.StudentOverview
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/dashboard/student [get]
func (h *DashboardHandler) StudentOverview(c *gin.Context) {
	session := GetSessionFromContext(c)

	overview, err := h.dashboardService.StudentOverview(c.Request.Context(), session)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
