package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// AuthHandler exposes login and account endpoints.
type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// Login authenticates a user within a campus
// @Summary User login
// @Description Authenticates a user against one campus and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginRequest true "Login credentials"
// @Success 200 {object} services.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "User logged in", "user_id", resp.User.ID, "campus_id", resp.User.CampusID)
	c.JSON(http.StatusOK, resp)
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	session := GetSessionFromContext(c)

	user, err := h.authService.GetProfile(c.Request.Context(), session)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword updates the authenticated user's password
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), session, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Password changed", "user_id", session.UserID)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated"})
}
