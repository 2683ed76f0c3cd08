package controllers

import (
	"os"
	"strconv"
	"strings"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// ServiceDetailsRequest is the first wizard step: everything the user
// fills in before paying
type ServiceDetailsRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceType    string `json:"service_type"`
	Description    string `json:"description"`
	PreferredDate  string `json:"preferred_date"`
	PreferredTime  string `json:"preferred_time"`
	EstimatedDays  int    `json:"estimated_days"`
}

// ValidateServiceDetails enforces the advance-to-payment rule: all four
// fields non-empty and the duration one of the accepted choices
func ValidateServiceDetails(req *ServiceDetailsRequest) utils.FieldValidationErrors {
	errs := utils.FieldValidationErrors{}
	if strings.TrimSpace(req.ServiceType) == "" {
		errs["service_type"] = "Service type is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(req.PreferredDate) == "" {
		errs["preferred_date"] = "Preferred date is required"
	}
	if strings.TrimSpace(req.PreferredTime) == "" {
		errs["preferred_time"] = "Preferred time is required"
	}
	if !models.IsValidEstimatedDays(req.EstimatedDays) {
		errs["estimated_days"] = "Estimated days must be one of 1, 2, 3, 5, 7, 14, 30"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// StartRequestDraft advances the wizard from ServiceDetails to Payment.
// The details are snapshotted into a draft; the draft never changes once
// a checkout attempt starts.
func StartRequestDraft(c *gin.Context) {
	utils.LogInfo("StartRequestDraft called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req ServiceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid draft request from user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. professional_id is required", err.Error())
		return
	}

	if errs := ValidateServiceDetails(&req); errs != nil {
		utils.LogError("Incomplete service details from user %d: %v", user.ID, errs)
		utils.ValidationError(c, "Please fill in all required fields", errs)
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, req.ProfessionalID).Error; err != nil {
		utils.LogError("Professional not found for draft: %d", req.ProfessionalID)
		utils.NotFound(c, "Professional not found")
		return
	}
	if !professional.IsVerified() {
		utils.LogError("Draft targets unverified professional %d", professional.ID)
		utils.BadRequest(c, "This professional is not accepting requests", nil)
		return
	}

	draft := models.RequestDraft{
		UserID:         user.ID,
		ProfessionalID: professional.ID,
		ServiceType:    utils.SanitizeString(req.ServiceType),
		Description:    utils.SanitizeString(req.Description),
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		EstimatedDays:  req.EstimatedDays,
		Amount:         serviceFee(),
		Currency:       "INR",
		Step:           models.WizardStepPayment,
	}
	if err := config.DB.Create(&draft).Error; err != nil {
		utils.LogError("Failed to create draft for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create request draft", err.Error())
		return
	}
	utils.LogInfo("Draft %d created for user %d targeting professional %d", draft.ID, user.ID, professional.ID)

	utils.Created(c, "Service details saved. Proceed to payment.", gin.H{
		"draft": gin.H{
			"id":             draft.ID,
			"service_type":   draft.ServiceType,
			"estimated_days": draft.EstimatedDays,
			"amount":         draft.Amount,
			"currency":       draft.Currency,
			"step":           draft.Step,
		},
	})
}

// GetRequestDraft returns the caller's draft and its wizard step
func GetRequestDraft(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	draftID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid draft ID", nil)
		return
	}

	var draft models.RequestDraft
	if err := config.DB.Where("id = ? AND user_id = ?", draftID, user.ID).First(&draft).Error; err != nil {
		utils.LogError("Draft not found for ID: %d, user ID: %d", draftID, user.ID)
		utils.NotFound(c, "Draft not found")
		return
	}

	utils.Success(c, "Draft retrieved successfully", gin.H{"draft": draft})
}

// serviceFee reads the fixed per-request fee from the environment
func serviceFee() float64 {
	fee, err := strconv.ParseFloat(os.Getenv("SERVICE_FEE"), 64)
	if err != nil || fee <= 0 {
		return utils.DefaultServiceFee
	}
	return fee
}
