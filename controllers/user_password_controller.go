package controllers

import (
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// ForgotPasswordRequest represents the forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword emails a reset OTP and stores it against the account
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please provide a valid email address")
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Password reset attempt failed - Invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Password reset attempt failed - User not found: %s", req.Email)
		utils.NotFound(c, "No account exists with this email address")
		return
	}

	otp := utils.GenerateOTP()

	// One live OTP per account
	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{}).Error; err != nil {
		utils.LogError("Failed to clear previous OTPs for user %d: %v", user.ID, err)
	}
	record := models.UserOTP{
		UserID:    user.ID,
		Code:      otp,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.LogError("Failed to store reset OTP for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send reset OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", nil)
		return
	}
	utils.LogInfo("Password reset OTP sent to %s", req.Email)

	utils.Success(c, "Password reset OTP has been sent to your email", gin.H{
		"email":      req.Email,
		"expires_in": 600,
	})
}

// ResetPasswordRequest represents the reset password request body
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OTP             string `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPassword verifies the emailed OTP and sets the new password
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Password reset failed - User not found: %s", req.Email)
		utils.NotFound(c, "No account exists with this email address")
		return
	}

	var record models.UserOTP
	if err := config.DB.Where("user_id = ? AND code = ?", user.ID, req.OTP).First(&record).Error; err != nil {
		utils.LogError("Password reset failed - Incorrect OTP for user %d", user.ID)
		utils.BadRequest(c, "Incorrect OTP", nil)
		return
	}

	if time.Now().After(record.ExpiresAt) {
		utils.LogError("Password reset failed - Expired OTP for user %d", user.ID)
		utils.BadRequest(c, "OTP has expired. Please request a new one.", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Password reset failed - Hashing error for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
		utils.LogError("Password reset failed - Update error for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{}).Error; err != nil {
		utils.LogError("Failed to clear used OTP for user %d: %v", user.ID, err)
	}
	utils.LogInfo("Password reset completed for user %d", user.ID)

	utils.Success(c, "Password has been reset successfully. Please login with your new password.", nil)
}
