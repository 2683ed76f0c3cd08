package controllers

import (
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// RegistrationData represents the registration data stored in session
// until the OTP is verified
type RegistrationData struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please check your input data and ensure all required fields are provided correctly.")
		return
	}

	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	req.Email = utils.SanitizeString(req.Email)
	req.Username = utils.SanitizeString(req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration attempt failed - Invalid username: %s - %s", req.Username, msg)
		utils.BadRequest(c, "Invalid username", msg)
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration attempt failed - Invalid email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration attempt failed - Invalid password for email: %s - %s", req.Email, msg)
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.LogError("Registration attempt failed - Passwords do not match for email: %s", req.Email)
		utils.BadRequest(c, "Passwords do not match", "Password and confirm password must be the same.")
		return
	}

	if req.FirstName != "" {
		if valid, msg := utils.ValidateName(req.FirstName); !valid {
			utils.LogError("Registration attempt failed - Invalid first name: %s - %s", req.FirstName, msg)
			utils.BadRequest(c, "Invalid first name", msg)
			return
		}
	}

	if req.LastName != "" {
		if valid, msg := utils.ValidateName(req.LastName); !valid {
			utils.LogError("Registration attempt failed - Invalid last name: %s - %s", req.LastName, msg)
			utils.BadRequest(c, "Invalid last name", msg)
			return
		}
	}

	if req.Phone != "" {
		valid, formattedPhone := utils.ValidatePhone(req.Phone)
		if !valid {
			utils.LogError("Registration attempt failed - Invalid phone: %s", req.Phone)
			utils.BadRequest(c, "Invalid phone", formattedPhone)
			return
		}
		req.Phone = formattedPhone
	}

	for _, field := range []string{req.Username, req.Email, req.FirstName, req.LastName} {
		if valid, msg := utils.ValidateSQLInjection(field); !valid {
			utils.LogError("Registration attempt failed - Suspicious input detected for email: %s", req.Email)
			utils.BadRequest(c, "Invalid input", msg)
			return
		}
		if valid, msg := utils.ValidateXSS(field); !valid {
			utils.LogError("Registration attempt failed - Suspicious input detected for email: %s", req.Email)
			utils.BadRequest(c, "Invalid input", msg)
			return
		}
	}

	// Reject duplicates before sending an OTP
	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration attempt failed - Duplicate email or username: %s", req.Email)
		utils.Conflict(c, "Email or username already registered", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration attempt failed - Password hashing error for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	registration := RegistrationData{
		Email:      req.Email,
		Password:   hashedPassword,
		OTP:        otp,
		OTPExpires: time.Now().Add(15 * time.Minute).Unix(),
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
	}

	session := sessions.Default(c)
	session.Set("registration", registration)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save registration session for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send OTP email to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send OTP email", nil)
		return
	}
	utils.LogInfo("OTP sent for registration of email: %s", req.Email)

	utils.Success(c, utils.MsgOTPSent, gin.H{
		"email": req.Email,
	})
}

// VerifyOTP completes registration once the emailed OTP matches
func VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("OTP verification failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	session := sessions.Default(c)
	regVal := session.Get("registration")
	if regVal == nil {
		utils.LogError("OTP verification failed - No pending registration for email: %s", req.Email)
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}

	registration, ok := regVal.(RegistrationData)
	if !ok || registration.Email != req.Email {
		utils.LogError("OTP verification failed - Session mismatch for email: %s", req.Email)
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}

	if time.Now().Unix() > registration.OTPExpires {
		utils.LogError("OTP verification failed - OTP expired for email: %s", req.Email)
		utils.BadRequest(c, "OTP has expired. Please register again.", nil)
		return
	}

	if registration.OTP != req.OTP {
		utils.LogError("OTP verification failed - Incorrect OTP for email: %s", req.Email)
		utils.BadRequest(c, "Incorrect OTP", nil)
		return
	}

	user := models.User{
		Username:   registration.Username,
		Email:      registration.Email,
		Password:   registration.Password,
		FirstName:  registration.FirstName,
		LastName:   registration.LastName,
		Phone:      registration.Phone,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user for email: %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}
	utils.LogInfo("User created for email: %s, ID: %d", user.Email, user.ID)

	session.Delete("registration")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear registration session for email: %s: %v", req.Email, err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for new user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.Created(c, utils.MsgRegisterSuccess, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}
