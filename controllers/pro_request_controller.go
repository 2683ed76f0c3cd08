package controllers

import (
	"strconv"
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// proRequestFromContext loads the request addressed by :id and checks it
// belongs to the calling professional
func proRequestFromContext(c *gin.Context) (*models.ServiceRequest, *models.Professional, bool) {
	proVal, exists := c.Get("professional")
	if !exists {
		utils.Unauthorized(c, "Professional profile not found")
		return nil, nil, false
	}
	professional := proVal.(models.Professional)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID", nil)
		return nil, nil, false
	}

	var request models.ServiceRequest
	if err := config.DB.Preload("User").
		Where("id = ? AND professional_id = ?", requestID, professional.ID).
		First(&request).Error; err != nil {
		utils.LogError("Request not found for ID: %d, professional ID: %d", requestID, professional.ID)
		utils.NotFound(c, "Request not found")
		return nil, nil, false
	}
	return &request, &professional, true
}

// transitionRequest validates and applies a status change
func transitionRequest(c *gin.Context, request *models.ServiceRequest, to string, updates map[string]interface{}) bool {
	if !models.CanTransition(request.Status, to) {
		utils.LogError("Invalid transition %s -> %s for request %d", request.Status, to, request.ID)
		utils.BadRequest(c, "This request cannot move from "+request.Status+" to "+to, gin.H{
			"current_status":      request.Status,
			"allowed_transitions": models.AllowedTransitions(request.Status),
		})
		return false
	}
	updates["status"] = to
	if err := config.DB.Model(request).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update request %d to %s: %v", request.ID, to, err)
		utils.InternalServerError(c, "Failed to update request", err.Error())
		return false
	}
	request.Status = to
	utils.LogInfo("Request %d moved to %s", request.ID, to)
	notifyRequestUpdated(request)
	return true
}

// ListProfessionalRequests returns requests addressed to the calling professional
func ListProfessionalRequests(c *gin.Context) {
	utils.LogInfo("ListProfessionalRequests called")
	proVal, exists := c.Get("professional")
	if !exists {
		utils.Unauthorized(c, "Professional profile not found")
		return
	}
	professional := proVal.(models.Professional)

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.ServiceRequest{}).Where("professional_id = ?", professional.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count requests for professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	var requests []models.ServiceRequest
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&requests).Error; err != nil {
		utils.LogError("Failed to fetch requests for professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	items := make([]gin.H, 0, len(requests))
	for i := range requests {
		item := requestSummary(&requests[i])
		item["customer"] = gin.H{
			"id":       requests[i].User.ID,
			"username": requests[i].User.Username,
			"email":    requests[i].User.Email,
		}
		item["allowed_transitions"] = models.AllowedTransitions(requests[i].Status)
		items = append(items, item)
	}

	utils.SuccessWithPagination(c, "Requests retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// ApproveRequest moves a pending request to approved. Start and end
// dates are required at approval time.
func ApproveRequest(c *gin.Context) {
	utils.LogInfo("ApproveRequest called")
	request, _, ok := proRequestFromContext(c)
	if !ok {
		return
	}

	var req struct {
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid approve request: %v", err)
		utils.BadRequest(c, "start_date and end_date are required to approve", err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD", nil)
		return
	}
	if endDate.Before(startDate) {
		utils.BadRequest(c, "end_date cannot be before start_date", nil)
		return
	}

	updates := map[string]interface{}{
		"start_date": startDate,
		"end_date":   endDate,
	}
	if req.Notes != "" {
		updates["admin_notes"] = utils.SanitizeString(req.Notes)
	}
	if !transitionRequest(c, request, models.RequestStatusApproved, updates) {
		return
	}

	utils.Success(c, "Request approved successfully", gin.H{
		"id":         request.ID,
		"status":     request.Status,
		"start_date": startDate,
		"end_date":   endDate,
	})
}

// RejectRequest moves a pending request to rejected
func RejectRequest(c *gin.Context) {
	utils.LogInfo("RejectRequest called")
	request, _, ok := proRequestFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Reason != "" {
		updates["admin_notes"] = utils.SanitizeString(req.Reason)
	}
	if !transitionRequest(c, request, models.RequestStatusRejected, updates) {
		return
	}

	utils.Success(c, "Request rejected", gin.H{
		"id":     request.ID,
		"status": request.Status,
	})
}

// StartRequest moves an approved request to in_progress
func StartRequest(c *gin.Context) {
	utils.LogInfo("StartRequest called")
	request, _, ok := proRequestFromContext(c)
	if !ok {
		return
	}

	if !transitionRequest(c, request, models.RequestStatusInProgress, map[string]interface{}{}) {
		return
	}

	utils.Success(c, "Work started on request", gin.H{
		"id":     request.ID,
		"status": request.Status,
	})
}

// CompleteRequest moves an in_progress request to completed. The
// professional must rate the customer as part of completion.
func CompleteRequest(c *gin.Context) {
	utils.LogInfo("CompleteRequest called")
	request, _, ok := proRequestFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Stars    int    `json:"stars" binding:"required"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid complete request: %v", err)
		utils.BadRequest(c, "stars rating of the customer is required to complete", err.Error())
		return
	}

	if valid, msg := utils.ValidateStars(req.Stars); !valid {
		utils.BadRequest(c, "Invalid rating", msg)
		return
	}

	updates := map[string]interface{}{
		"pro_rating_stars":    req.Stars,
		"pro_rating_feedback": utils.SanitizeString(req.Feedback),
	}
	if !transitionRequest(c, request, models.RequestStatusCompleted, updates) {
		return
	}

	utils.Success(c, "Request completed successfully", gin.H{
		"id":     request.ID,
		"status": request.Status,
		"rating": gin.H{"stars": req.Stars},
	})
}
