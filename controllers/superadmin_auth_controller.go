package controllers

import (
	"os"
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// SuperAdminLoginRequest represents the super-admin login request
type SuperAdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SuperAdminLogin handles super-admin authentication
func SuperAdminLogin(c *gin.Context) {
	utils.LogInfo("SuperAdminLogin called")
	var req SuperAdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Processing login request for email: %s", req.Email)

	var admin models.SuperAdmin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Super admin not found for email: %s: %v", req.Email, err)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive super admin attempted login: %s", admin.Email)
		utils.Forbidden(c, "Account is inactive")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.LogError("Invalid password for super admin: %s", admin.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	// Update last login
	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update last login for super admin: %s: %v", admin.Email, err)
	}

	token, err := utils.GenerateSuperAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to sign token for super admin: %s: %v", admin.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("Super admin login successful: %s", admin.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
		},
	})
}

// SuperAdminLogout handles super-admin logout. Tokens are short-lived so
// logout is client side; the endpoint exists so the dashboard has a
// consistent call to make.
func SuperAdminLogout(c *gin.Context) {
	utils.LogInfo("SuperAdminLogout called")
	utils.Success(c, "Logged out successfully", nil)
}

// CreateSampleSuperAdmin creates the bootstrap super-admin account from env
func CreateSampleSuperAdmin() error {
	utils.LogInfo("CreateSampleSuperAdmin called")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		utils.LogInfo("SUPER_ADMIN_PASSWORD not set, skipping bootstrap account")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError("Failed to hash super admin password: %v", err)
		return err
	}

	admin := models.SuperAdmin{
		Email:     os.Getenv("SUPER_ADMIN_EMAIL"),
		Password:  string(hashedPassword),
		FirstName: os.Getenv("SUPER_ADMIN_FIRST_NAME"),
		LastName:  os.Getenv("SUPER_ADMIN_LAST_NAME"),
		IsActive:  true,
	}

	err = config.DB.FirstOrCreate(&admin, models.SuperAdmin{Email: admin.Email}).Error
	if err != nil {
		utils.LogError("Failed to create sample super admin: %v", err)
		return err
	}
	utils.LogInfo("Successfully created/updated sample super admin: %s", admin.Email)
	return nil
}
