package controllers

import (
	"strconv"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

func paymentSummary(p *models.Payment) gin.H {
	item := gin.H{
		"id":                  p.ID,
		"amount":              p.Amount,
		"currency":            p.Currency,
		"status":              p.Status,
		"razorpay_order_id":   p.RazorpayOrderID,
		"razorpay_payment_id": p.RazorpayPaymentID,
		"created_at":          p.CreatedAt,
	}
	if p.RequestID != nil {
		item["request_id"] = *p.RequestID
	}
	if p.Status == models.PaymentStatusFailed {
		item["failure_code"] = p.FailureCode
		item["failure_reason"] = p.FailureReason
	}
	return item
}

// ListUserPayments returns the caller's payment history, every attempt included
func ListUserPayments(c *gin.Context) {
	utils.LogInfo("ListUserPayments called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Payment{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count payments for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	items := make([]gin.H, 0, len(payments))
	for i := range payments {
		items = append(items, paymentSummary(&payments[i]))
	}

	utils.SuccessWithPagination(c, "Payments retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// ListAllPayments returns every payment record for the super-admin dashboard
func ListAllPayments(c *gin.Context) {
	utils.LogInfo("ListAllPayments called")

	pagination := utils.NewPagination(c)
	status := c.Query("status")

	query := config.DB.Model(&models.Payment{})
	if status != "" {
		if !models.IsValidPaymentStatus(status) {
			utils.BadRequest(c, "Invalid status filter", gin.H{
				"valid_statuses": []string{
					models.PaymentStatusSuccess,
					models.PaymentStatusFailed,
					models.PaymentStatusCancelled,
					models.PaymentStatusPending,
				},
			})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	var payments []models.Payment
	if err := query.Preload("User").Preload("Professional").
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	items := make([]gin.H, 0, len(payments))
	for i := range payments {
		item := paymentSummary(&payments[i])
		item["user"] = gin.H{
			"id":       payments[i].User.ID,
			"username": payments[i].User.Username,
			"email":    payments[i].User.Email,
		}
		if payments[i].Professional != nil {
			item["professional"] = gin.H{
				"id":   payments[i].Professional.ID,
				"name": payments[i].Professional.Name,
			}
		}
		items = append(items, item)
	}

	utils.SuccessWithPagination(c, "Payments retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// UpdatePaymentStatus is the one mutation allowed on a persisted payment
func UpdatePaymentStatus(c *gin.Context) {
	utils.LogInfo("UpdatePaymentStatus called")

	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status update request: %v", err)
		utils.BadRequest(c, "Status is required", nil)
		return
	}

	if !models.IsValidPaymentStatus(req.Status) {
		utils.LogError("Invalid payment status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{
			"valid_statuses": []string{
				models.PaymentStatusSuccess,
				models.PaymentStatusFailed,
				models.PaymentStatusCancelled,
				models.PaymentStatusPending,
			},
		})
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		utils.LogError("Payment not found: %d", paymentID)
		utils.NotFound(c, "Payment not found")
		return
	}

	if err := config.DB.Model(&payment).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update payment %d status: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to update payment status", err.Error())
		return
	}
	utils.LogInfo("Payment %d status updated to %s", payment.ID, req.Status)

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{
		"payment_id": payment.ID,
		"status":     req.Status,
	})
}
