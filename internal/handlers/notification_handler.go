package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/repositories"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
)

// NotificationHandler exposes notification endpoints.
type NotificationHandler struct {
	BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService, logger utils.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         NewBaseHandler(logger),
		notificationService: notificationService,
	}
}

// Send creates a notification for one user or for everyone
// @Summary Send notification
// @Description Sends to one recipient, or to every user when recipient_id is "ALL"
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateNotificationRequest true "Notification data"
// @Success 201 {object} models.Notification
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	session := GetSessionFromContext(c)

	var req services.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	notification, err := h.notificationService.Send(c.Request.Context(), session, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Notification sent",
		"notification_id", notification.ID,
		"recipient_id", req.RecipientID,
		"sender_id", session.UserID)
	c.JSON(http.StatusCreated, notification)
}

// Inbox returns the authenticated user's notifications
// @Summary Get inbox
// @Description Returns personal and broadcast notifications plus the unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.InboxResponse
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) Inbox(c *gin.Context) {
	session := GetSessionFromContext(c)

	limit, offset := parsePagination(c)
	inbox, err := h.notificationService.Inbox(c.Request.Context(), session, limit, offset)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, inbox)
}

// ListAll returns every stored notification matching the filters
// @Summary List all notifications
// @Description Administrative view over the whole notification log
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param recipient_id query string false "Filter by recipient"
// @Param sender_id query string false "Filter by sender"
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.NotificationListResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/notifications/all [get]
func (h *NotificationHandler) ListAll(c *gin.Context) {
	session := GetSessionFromContext(c)

	limit, offset := parsePagination(c)
	filters := repositories.NotificationFilters{
		RecipientID: optionalQuery(c, "recipient_id"),
		SenderID:    optionalQuery(c, "sender_id"),
		UnreadOnly:  c.Query("unread") == "true",
		Limit:       limit,
		Offset:      offset,
	}

	resp, err := h.notificationService.List(c.Request.Context(), session, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.notificationService.MarkRead(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Notification marked as read"})
}

// Delete removes one notification
// @Summary Delete notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	session := GetSessionFromContext(c)
	id := c.Param("id")

	if err := h.notificationService.Delete(c.Request.Context(), session, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Notification deleted", "notification_id", id)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Notification deleted"})
}
