package controllers

import (
	"fmt"
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// ListUsersForAdmin returns user accounts for the super-admin dashboard
func ListUsersForAdmin(c *gin.Context) {
	utils.LogInfo("ListUsersForAdmin called")

	pagination := utils.NewPagination(c)
	sortBy := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	query := config.DB.Model(&models.User{}).Preload("Professional")

	if search := c.Query("search"); search != "" {
		term := "%" + utils.SanitizeString(search) + "%"
		query = query.Where(
			"email ILIKE ? OR username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			term, term, term, term,
		)
	}

	switch sortBy {
	case "email":
		query = query.Order(fmt.Sprintf("email %s", order))
	case "username":
		query = query.Order(fmt.Sprintf("username %s", order))
	default:
		query = query.Order(fmt.Sprintf("created_at %s", order))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	var users []models.User
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		user := &users[i]
		role := "user"
		if user.Professional != nil && user.Professional.IsVerified() {
			role = "professional"
		}
		items = append(items, gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"first_name":  user.FirstName,
			"last_name":   user.LastName,
			"role":        role,
			"is_blocked":  user.IsBlocked,
			"is_verified": user.IsVerified,
			"created_at":  user.CreatedAt,
			"last_login":  user.LastLoginAt,
		})
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// ToggleUserBlock blocks or unblocks a user account
func ToggleUserBlock(c *gin.Context) {
	utils.LogInfo("ToggleUserBlock called")

	userID := c.Param("id")
	if userID == "" {
		utils.BadRequest(c, "User ID is required", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("User not found: %v", err)
		utils.NotFound(c, "User not found")
		return
	}

	newBlockStatus := !user.IsBlocked
	action := "blocked"
	if !newBlockStatus {
		action = "unblocked"
	}

	updates := map[string]interface{}{
		"is_blocked": newBlockStatus,
		"updated_at": time.Now(),
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update user block status: %v", err)
		utils.InternalServerError(c, "Failed to update user block status", err.Error())
		return
	}

	utils.LogInfo("User %s successfully: %s", action, user.Email)
	utils.Success(c, fmt.Sprintf("User %s successfully", action), gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"username":   user.Username,
			"is_blocked": newBlockStatus,
		},
	})
}
