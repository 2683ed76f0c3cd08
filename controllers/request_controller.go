package controllers

import (
	"strconv"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

func requestSummary(r *models.ServiceRequest) gin.H {
	item := gin.H{
		"id":             r.ID,
		"title":          r.Title,
		"description":    r.Description,
		"preferred_date": r.PreferredDate,
		"preferred_time": r.PreferredTime,
		"estimated_days": r.EstimatedDays,
		"status":         r.Status,
		"payment_status": r.PaymentStatus,
		"payment_id":     r.PaymentID,
		"admin_notes":    r.AdminNotes,
		"created_at":     r.CreatedAt,
	}
	if r.StartDate != nil {
		item["start_date"] = r.StartDate
	}
	if r.EndDate != nil {
		item["end_date"] = r.EndDate
	}
	if r.UserRatingStars != nil {
		item["user_rating"] = gin.H{"stars": *r.UserRatingStars, "feedback": r.UserRatingFeedback}
	}
	if r.ProRatingStars != nil {
		item["pro_rating"] = gin.H{"stars": *r.ProRatingStars, "feedback": r.ProRatingFeedback}
	}
	return item
}

// ListUserRequests returns the caller's service requests
func ListUserRequests(c *gin.Context) {
	utils.LogInfo("ListUserRequests called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.ServiceRequest{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count requests for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	var requests []models.ServiceRequest
	if err := config.DB.Preload("Professional").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&requests).Error; err != nil {
		utils.LogError("Failed to fetch requests for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	items := make([]gin.H, 0, len(requests))
	for i := range requests {
		item := requestSummary(&requests[i])
		item["professional"] = gin.H{
			"id":         requests[i].Professional.ID,
			"name":       requests[i].Professional.Name,
			"profession": requests[i].Professional.Profession,
			"city":       requests[i].Professional.City,
		}
		items = append(items, item)
	}

	utils.SuccessWithPagination(c, "Requests retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// GetUserRequestDetails returns one request with the actions currently allowed on it
func GetUserRequestDetails(c *gin.Context) {
	utils.LogInfo("GetUserRequestDetails called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID", nil)
		return
	}

	var request models.ServiceRequest
	if err := config.DB.Preload("Professional").Preload("Payment").
		Where("id = ? AND user_id = ?", requestID, user.ID).First(&request).Error; err != nil {
		utils.LogError("Request not found for ID: %d, user ID: %d", requestID, user.ID)
		utils.NotFound(c, "Request not found")
		return
	}

	item := requestSummary(&request)
	item["professional"] = gin.H{
		"id":         request.Professional.ID,
		"name":       request.Professional.Name,
		"profession": request.Professional.Profession,
		"phone":      request.Professional.Phone,
		"city":       request.Professional.City,
	}
	item["payment"] = paymentSummary(&request.Payment)
	item["allowed_transitions"] = models.AllowedTransitions(request.Status)
	item["can_rate"] = request.Status == models.RequestStatusCompleted && request.UserRatingStars == nil

	utils.Success(c, "Request retrieved successfully", item)
}

// RateProfessional records the user's rating after completion and folds
// it into the professional's aggregate
func RateProfessional(c *gin.Context) {
	utils.LogInfo("RateProfessional called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID", nil)
		return
	}

	var req struct {
		Stars    int    `json:"stars" binding:"required"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid rating request from user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. stars is required", err.Error())
		return
	}

	if valid, msg := utils.ValidateStars(req.Stars); !valid {
		utils.LogError("Invalid stars from user %d: %d", user.ID, req.Stars)
		utils.BadRequest(c, "Invalid rating", msg)
		return
	}

	var request models.ServiceRequest
	if err := config.DB.Where("id = ? AND user_id = ?", requestID, user.ID).First(&request).Error; err != nil {
		utils.LogError("Request not found for ID: %d, user ID: %d", requestID, user.ID)
		utils.NotFound(c, "Request not found")
		return
	}

	if request.Status != models.RequestStatusCompleted {
		utils.LogError("Rating attempted on non-completed request %d (status %s)", request.ID, request.Status)
		utils.BadRequest(c, "You can rate only after the request is completed", nil)
		return
	}

	if request.UserRatingStars != nil {
		utils.LogError("Duplicate rating attempted on request %d", request.ID)
		utils.Conflict(c, "You have already rated this request", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to begin transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to begin transaction", nil)
		return
	}

	if err := tx.Model(&request).Updates(map[string]interface{}{
		"user_rating_stars":    req.Stars,
		"user_rating_feedback": utils.SanitizeString(req.Feedback),
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to save rating on request %d: %v", request.ID, err)
		utils.InternalServerError(c, "Failed to save rating", err.Error())
		return
	}

	var professional models.Professional
	if err := tx.First(&professional, request.ProfessionalID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Professional not found for request %d: %v", request.ID, err)
		utils.InternalServerError(c, "Failed to update professional rating", nil)
		return
	}
	professional.ApplyRating(req.Stars)
	if err := tx.Model(&professional).Updates(map[string]interface{}{
		"average_rating": professional.AverageRating,
		"total_ratings":  professional.TotalRatings,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update rating aggregate for professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to update professional rating", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit rating for request %d: %v", request.ID, err)
		utils.InternalServerError(c, "Failed to save rating", nil)
		return
	}
	utils.LogInfo("User %d rated request %d with %d stars", user.ID, request.ID, req.Stars)

	utils.Success(c, "Thank you for your rating!", gin.H{
		"request_id":     request.ID,
		"stars":          req.Stars,
		"average_rating": professional.AverageRating,
		"total_ratings":  professional.TotalRatings,
	})
}
