package controllers

import (
	"fmt"
	"os"
	"strconv"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/datatypes"
)

// POST /user/checkout/initiate
func InitiateCheckout(c *gin.Context) {
	utils.LogInfo("InitiateCheckout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Processing checkout initiation for user ID: %d", user.ID)

	var req struct {
		DraftID uint `json:"draft_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. draft_id is required", err.Error())
		return
	}

	db := config.DB
	var draft models.RequestDraft
	if err := db.Where("id = ? AND user_id = ?", req.DraftID, user.ID).First(&draft).Error; err != nil {
		utils.LogError("Draft not found for ID: %d, user ID: %d", req.DraftID, user.ID)
		utils.NotFound(c, "Request draft not found")
		return
	}

	if draft.Step == models.WizardStepDone {
		utils.LogError("Checkout already completed for draft ID: %d", draft.ID)
		utils.BadRequest(c, "Payment for this request has already been completed", nil)
		return
	}

	// Razorpay expects the amount in paise
	amountPaise := int(draft.Amount * 100)
	utils.LogInfo("Processing checkout amount: %d paise for draft ID: %d", amountPaise, draft.ID)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        draft.Currency,
		"receipt":         "request_rcptid_" + strconv.FormatUint(uint64(draft.ID), 10),
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for draft ID: %d: %v", draft.ID, err)
		utils.InternalServerError(c, "Failed to create Razorpay order", err.Error())
		return
	}
	utils.LogInfo("Successfully created Razorpay order for draft ID: %d", draft.ID)

	if err := db.Model(&draft).Update("razorpay_order_id", fmt.Sprintf("%v", rzOrder["id"])).Error; err != nil {
		utils.LogError("Failed to store Razorpay order on draft ID: %d: %v", draft.ID, err)
		utils.InternalServerError(c, "Failed to update request draft", err.Error())
		return
	}

	utils.Success(c, "Checkout initiated successfully", gin.H{
		"draft": gin.H{
			"id":                draft.ID,
			"razorpay_order_id": rzOrder["id"],
			"amount":            fmt.Sprintf("%.2f", draft.Amount),
			"currency":          draft.Currency,
			"amount_display":    fmt.Sprintf("₹%.2f", draft.Amount),
			"description":       draft.ServiceType,
		},
		"key": os.Getenv("RAZORPAY_KEY"),
		"user": gin.H{
			"name":  user.Username,
			"email": user.Email,
		},
	})
}

// POST /user/checkout/verify
// Success path: one Success payment record, then the service request.
func VerifyCheckout(c *gin.Context) {
	utils.LogInfo("VerifyCheckout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Processing payment verification for user ID: %d", user.ID)

	var req struct {
		DraftID           uint   `json:"draft_id" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, os.Getenv("RAZORPAY_SECRET")) {
		utils.LogError("Payment verification failed for draft ID: %d, user ID: %d", req.DraftID, user.ID)
		utils.BadRequest(c, utils.ErrPaymentVerification, gin.H{"retry": true})
		return
	}
	utils.LogInfo("Payment signature verified for draft ID: %d", req.DraftID)

	db := config.DB
	var draft models.RequestDraft
	if err := db.Where("id = ? AND user_id = ?", req.DraftID, user.ID).First(&draft).Error; err != nil {
		utils.LogError("Draft not found for ID: %d, user ID: %d: %v", req.DraftID, user.ID, err)
		utils.NotFound(c, "Request draft not found")
		return
	}

	if draft.RazorpayOrderID != req.RazorpayOrderID {
		utils.LogError("Razorpay order ID mismatch for draft ID: %d. Expected: %s, Received: %s",
			req.DraftID, draft.RazorpayOrderID, req.RazorpayOrderID)
		utils.BadRequest(c, "Invalid Razorpay order ID", nil)
		return
	}

	if draft.Step == models.WizardStepDone {
		utils.LogError("Draft %d already completed a checkout", draft.ID)
		utils.BadRequest(c, "Payment for this request has already been completed", nil)
		return
	}

	// Persist the payment record first. The service request comes after
	// and must not take the payment down with it if creation fails.
	payment := BuildPaymentRecord(&draft, CheckoutOutcome{
		Kind:              OutcomeSuccess,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err := db.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record payment for draft ID: %d: %v", draft.ID, err)
		utils.InternalServerError(c, "Failed to record payment", err.Error())
		return
	}
	utils.LogInfo("Recorded Success payment %d for draft ID: %d", payment.ID, draft.ID)

	request := BuildServiceRequest(&draft, &payment)
	if err := db.Create(&request).Error; err != nil {
		// Accepted partial-failure state: keep the payment, annotate it,
		// and tell the user to contact support.
		utils.LogError("Failed to create service request for payment %d: %v", payment.ID, err)
		note := fmt.Sprintf(`{"error_note":"request creation failed after successful payment: %s"}`, err.Error())
		if updateErr := db.Model(&payment).Update("metadata", datatypes.JSON([]byte(note))).Error; updateErr != nil {
			utils.LogError("Failed to annotate payment %d: %v", payment.ID, updateErr)
		}
		utils.InternalServerError(c, utils.ErrContactSupport, gin.H{
			"payment_id": payment.ID,
		})
		return
	}
	utils.LogInfo("Created service request %d referencing payment %d", request.ID, payment.ID)

	if err := db.Model(&payment).Update("request_id", request.ID).Error; err != nil {
		utils.LogError("Failed to link payment %d to request %d: %v", payment.ID, request.ID, err)
	}

	if err := db.Model(&draft).Update("step", models.WizardStepDone).Error; err != nil {
		utils.LogError("Failed to advance draft %d to done: %v", draft.ID, err)
	}

	notifyRequestCreated(&request, &draft)

	utils.Success(c, "Thank you for your payment! Your request has been submitted.", gin.H{
		"payment_id":       payment.ID,
		"request_id":       request.ID,
		"amount":           fmt.Sprintf("%.2f", payment.Amount),
		"status":           payment.Status,
		"request_list_url": "/user/requests",
	})
}

// POST /user/checkout/failed
// The widget's payment.failed surface: one Failed payment record, the
// draft stays at the payment step so the user can retry.
func RecordFailedCheckout(c *gin.Context) {
	utils.LogInfo("RecordFailedCheckout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req struct {
		DraftID           uint   `json:"draft_id" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		Code              string `json:"code"`
		Description       string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. draft_id is required", err.Error())
		return
	}

	db := config.DB
	var draft models.RequestDraft
	if err := db.Where("id = ? AND user_id = ?", req.DraftID, user.ID).First(&draft).Error; err != nil {
		utils.LogError("Draft not found for ID: %d, user ID: %d", req.DraftID, user.ID)
		utils.NotFound(c, "Request draft not found")
		return
	}

	payment := BuildPaymentRecord(&draft, CheckoutOutcome{
		Kind:              OutcomeFailed,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		FailureCode:       req.Code,
		FailureReason:     req.Description,
	})
	if err := db.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record failed payment for draft ID: %d: %v", draft.ID, err)
		utils.InternalServerError(c, "Failed to record payment", err.Error())
		return
	}
	utils.LogInfo("Recorded Failed payment %d for draft ID: %d", payment.ID, draft.ID)

	utils.Success(c, "Payment failed. You can retry the payment.", gin.H{
		"payment_id": payment.ID,
		"status":     payment.Status,
		"retry":      true,
	})
}

// POST /user/checkout/cancelled
// The widget's modal dismiss surface: one Cancelled payment record and
// no service request.
func RecordCancelledCheckout(c *gin.Context) {
	utils.LogInfo("RecordCancelledCheckout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req struct {
		DraftID         uint   `json:"draft_id" binding:"required"`
		RazorpayOrderID string `json:"razorpay_order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. draft_id is required", err.Error())
		return
	}

	db := config.DB
	var draft models.RequestDraft
	if err := db.Where("id = ? AND user_id = ?", req.DraftID, user.ID).First(&draft).Error; err != nil {
		utils.LogError("Draft not found for ID: %d, user ID: %d", req.DraftID, user.ID)
		utils.NotFound(c, "Request draft not found")
		return
	}

	payment := BuildPaymentRecord(&draft, CheckoutOutcome{
		Kind:            OutcomeCancelled,
		RazorpayOrderID: req.RazorpayOrderID,
	})
	if err := db.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record cancelled payment for draft ID: %d: %v", draft.ID, err)
		utils.InternalServerError(c, "Failed to record payment", err.Error())
		return
	}
	utils.LogInfo("Recorded Cancelled payment %d for draft ID: %d", payment.ID, draft.ID)

	utils.Success(c, "Payment cancelled. No request was created.", gin.H{
		"payment_id": payment.ID,
		"status":     payment.Status,
	})
}
