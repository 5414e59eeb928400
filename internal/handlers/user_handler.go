package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// UserHandler exposes user account endpoints.
type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// CreateUser creates an account in a campus
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "User created", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, user)
}

// GetUser returns one user by ID
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	session := GetSessionFromContext(c)

	user, err := h.userService.GetByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns users matching the query filters
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param campus_id query string false "Filter by campus"
// @Param career_id query string false "Filter by career"
// @Param search query string false "Match against name or email"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.UserListResponse
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	session := GetSessionFromContext(c)

	limit, offset := parsePagination(c)
	filters := repositories.UserFilters{
		CampusID:  optionalQuery(c, "campus_id"),
		CareerID:  optionalQuery(c, "career_id"),
		Search:    c.Query("search"),
		Limit:     limit,
		Offset:    offset,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if roleParam := c.Query("role"); roleParam != "" {
		role := models.UserRole(roleParam)
		filters.Role = &role
	}

	resp, err := h.userService.List(c.Request.Context(), session, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateUserProfile updates profile fields of a user
// @Summary Update user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body services.UpdateUserProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "User profile updated", "user_id", user.ID)
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.userService.Delete(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "User deleted", "user_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted"})
}

func parseIntQuery(c *gin.Context, key string) *int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}
