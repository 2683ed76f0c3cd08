package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/profinder-dev/profinder/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// notifyRequestCreated records a super-admin notification for a newly
// paid-for service request and pushes it over the websocket channel
func notifyRequestCreated(request *models.ServiceRequest, draft *models.RequestDraft) {
	payload, _ := json.Marshal(gin.H{
		"request_id":      request.ID,
		"professional_id": request.ProfessionalID,
		"service_type":    draft.ServiceType,
		"amount":          draft.Amount,
	})

	notification := models.Notification{
		Role:    models.NotificationRoleSuperAdmin,
		Type:    models.NotificationTypeRequestCreated,
		Title:   "New service request",
		Message: fmt.Sprintf("Paid request #%d for %s", request.ID, draft.ServiceType),
		Data:    datatypes.JSON(payload),
	}
	if err := config.DB.Create(&notification).Error; err != nil {
		utils.LogError("Failed to create request notification for request %d: %v", request.ID, err)
		return
	}

	ws.SuperAdminHub.Broadcast(ws.Event{
		Type: models.NotificationTypeRequestCreated,
		Data: gin.H{
			"notification_id": notification.ID,
			"request_id":      request.ID,
			"service_type":    draft.ServiceType,
			"amount":          draft.Amount,
		},
	})
}

// notifyRequestUpdated records a notification for the request owner
// whenever its status changes
func notifyRequestUpdated(request *models.ServiceRequest) {
	payload, _ := json.Marshal(gin.H{
		"request_id": request.ID,
		"status":     request.Status,
	})

	userID := request.UserID
	notification := models.Notification{
		Role:    models.NotificationRoleUser,
		UserID:  &userID,
		Type:    models.NotificationTypeRequestUpdated,
		Title:   "Request status updated",
		Message: fmt.Sprintf("Your request #%d is now %s", request.ID, request.Status),
		Data:    datatypes.JSON(payload),
	}
	if err := config.DB.Create(&notification).Error; err != nil {
		utils.LogError("Failed to create status notification for request %d: %v", request.ID, err)
	}
}

// ListUserNotifications returns the caller's notifications
func ListUserNotifications(c *gin.Context) {
	utils.LogInfo("ListUserNotifications called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Notification{}).
		Where("role = ? AND user_id = ?", models.NotificationRoleUser, user.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count notifications for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch notifications", err.Error())
		return
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&notifications).Error; err != nil {
		utils.LogError("Failed to fetch notifications for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch notifications", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Notifications retrieved successfully", notifications, total, pagination.Page, pagination.Limit)
}

// ListAdminNotifications returns super-admin notifications, newest first
func ListAdminNotifications(c *gin.Context) {
	utils.LogInfo("ListAdminNotifications called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Notification{}).
		Where("role = ?", models.NotificationRoleSuperAdmin)

	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count admin notifications: %v", err)
		utils.InternalServerError(c, "Failed to fetch notifications", err.Error())
		return
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&notifications).Error; err != nil {
		utils.LogError("Failed to fetch admin notifications: %v", err)
		utils.InternalServerError(c, "Failed to fetch notifications", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Notifications retrieved successfully", notifications, total, pagination.Page, pagination.Limit)
}

// GetAdminUnreadCount returns the number of unread super-admin notifications
func GetAdminUnreadCount(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Notification{}).
		Where("role = ? AND is_read = ?", models.NotificationRoleSuperAdmin, false).
		Count(&count).Error; err != nil {
		utils.LogError("Failed to count unread notifications: %v", err)
		utils.InternalServerError(c, "Failed to fetch unread count", err.Error())
		return
	}
	utils.Success(c, "Unread count retrieved", gin.H{"unread": count})
}

// MarkNotificationRead marks one super-admin notification as read
func MarkNotificationRead(c *gin.Context) {
	utils.LogInfo("MarkNotificationRead called")
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid notification ID", nil)
		return
	}

	var notification models.Notification
	if err := config.DB.Where("id = ? AND role = ?", notificationID, models.NotificationRoleSuperAdmin).
		First(&notification).Error; err != nil {
		utils.NotFound(c, "Notification not found")
		return
	}

	now := time.Now()
	if err := config.DB.Model(&notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error; err != nil {
		utils.LogError("Failed to mark notification %d read: %v", notification.ID, err)
		utils.InternalServerError(c, "Failed to update notification", err.Error())
		return
	}

	utils.Success(c, "Notification marked as read", gin.H{"id": notification.ID, "is_read": true})
}

// MarkAllNotificationsRead marks every unread super-admin notification as read
func MarkAllNotificationsRead(c *gin.Context) {
	utils.LogInfo("MarkAllNotificationsRead called")
	now := time.Now()
	result := config.DB.Model(&models.Notification{}).
		Where("role = ? AND is_read = ?", models.NotificationRoleSuperAdmin, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		utils.LogError("Failed to mark notifications read: %v", result.Error)
		utils.InternalServerError(c, "Failed to update notifications", result.Error.Error())
		return
	}

	utils.Success(c, "All notifications marked as read", gin.H{"updated": result.RowsAffected})
}
