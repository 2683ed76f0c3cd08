package controllers

import (
	"encoding/json"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/profinder-dev/profinder/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ProfessionalApplication is the verification form submission body
type ProfessionalApplication struct {
	Name            string   `json:"name" binding:"required"`
	Profession      string   `json:"profession" binding:"required"`
	ExperienceYears int      `json:"experience_years"`
	Phone           string   `json:"phone" binding:"required"`
	City            string   `json:"city"`
	Pincode         string   `json:"pincode"`
	Village         string   `json:"village"`
	Taluka          string   `json:"taluka"`
	District        string   `json:"district"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Skills          []string `json:"skills"`
	Specializations []string `json:"specializations"`
	PriceRange      string   `json:"price_range"`
	About           string   `json:"about"`
}

// SubmitProfessionalProfile creates a pending professional profile from
// the verification form and notifies super admins
func SubmitProfessionalProfile(c *gin.Context) {
	utils.LogInfo("SubmitProfessionalProfile called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req ProfessionalApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid submission from user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. name, profession, and phone are required", err.Error())
		return
	}

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.LogError("Invalid name in submission from user %d: %s", user.ID, msg)
		utils.BadRequest(c, "Invalid name", msg)
		return
	}

	valid, formattedPhone := utils.ValidatePhone(req.Phone)
	if !valid {
		utils.LogError("Invalid phone in submission from user %d", user.ID)
		utils.BadRequest(c, "Invalid phone", formattedPhone)
		return
	}
	req.Phone = formattedPhone

	if req.Pincode != "" {
		if valid, msg := utils.ValidatePincode(req.Pincode); !valid {
			utils.LogError("Invalid pincode in submission from user %d: %s", user.ID, req.Pincode)
			utils.BadRequest(c, "Invalid pincode", msg)
			return
		}
	}

	var existing models.Professional
	if err := config.DB.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		utils.LogError("Duplicate submission from user %d, existing profile %d", user.ID, existing.ID)
		utils.Conflict(c, "A professional profile already exists for this account", gin.H{
			"verification_status": existing.VerificationStatus,
		})
		return
	}

	professional := models.Professional{
		UserID:             user.ID,
		Name:               req.Name,
		Email:              user.Email,
		Phone:              req.Phone,
		Profession:         utils.Title(req.Profession),
		ExperienceYears:    req.ExperienceYears,
		City:               utils.Title(req.City),
		Pincode:            req.Pincode,
		Village:            req.Village,
		Taluka:             req.Taluka,
		District:           req.District,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Skills:             models.StringList(req.Skills),
		Specializations:    models.StringList(req.Specializations),
		PriceRange:         req.PriceRange,
		About:              req.About,
		VerificationStatus: models.VerificationStatusPending,
	}

	// Fill missing address fields from coordinates
	if req.Latitude != 0 && req.Longitude != 0 {
		if addr, err := utils.ReverseGeocode(req.Latitude, req.Longitude); err != nil {
			utils.LogError("Reverse geocode failed for user %d: %v", user.ID, err)
		} else {
			professional.Address = addr.DisplayName
			if professional.City == "" {
				professional.City = addr.City
			}
			if professional.District == "" {
				professional.District = addr.District
			}
			if professional.Village == "" {
				professional.Village = addr.Village
			}
			if professional.Pincode == "" {
				professional.Pincode = addr.Pincode
			}
		}
	}

	if err := config.DB.Create(&professional).Error; err != nil {
		utils.LogError("Failed to create professional profile for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to submit profile", err.Error())
		return
	}
	utils.LogInfo("Professional profile %d submitted by user %d", professional.ID, user.ID)

	notifyVerificationRequest(&professional)

	utils.Created(c, "Profile submitted for verification", gin.H{
		"professional": gin.H{
			"id":                  professional.ID,
			"name":                professional.Name,
			"profession":          professional.Profession,
			"verification_status": professional.VerificationStatus,
		},
	})
}

// notifyVerificationRequest records a super-admin notification and
// pushes it over the websocket channel
func notifyVerificationRequest(professional *models.Professional) {
	payload, _ := json.Marshal(gin.H{
		"professional_id": professional.ID,
		"name":            professional.Name,
		"profession":      professional.Profession,
	})

	notification := models.Notification{
		Role:    models.NotificationRoleSuperAdmin,
		Type:    models.NotificationTypeVerificationRequest,
		Title:   "New verification request",
		Message: professional.Name + " applied as " + professional.Profession,
		Data:    datatypes.JSON(payload),
	}
	if err := config.DB.Create(&notification).Error; err != nil {
		utils.LogError("Failed to create verification notification for professional %d: %v", professional.ID, err)
		return
	}

	ws.SuperAdminHub.Broadcast(ws.Event{
		Type: models.NotificationTypeVerificationRequest,
		Data: gin.H{
			"notification_id": notification.ID,
			"professional_id": professional.ID,
			"name":            professional.Name,
			"profession":      professional.Profession,
		},
	})
}

// UploadProfessionalPhoto stores a profile photo for the caller's submission
func UploadProfessionalPhoto(c *gin.Context) {
	utils.LogInfo("UploadProfessionalPhoto called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var professional models.Professional
	if err := config.DB.Where("user_id = ?", user.ID).First(&professional).Error; err != nil {
		utils.LogError("No professional profile for user %d", user.ID)
		utils.NotFound(c, "No professional profile found for this account")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		utils.LogError("Missing photo in upload from user %d: %v", user.ID, err)
		utils.BadRequest(c, "Photo file is required", nil)
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads")
	if err != nil {
		utils.LogError("Failed to save photo for professional %d: %v", professional.ID, err)
		utils.BadRequest(c, "Failed to save photo", err.Error())
		return
	}

	if err := config.DB.Model(&professional).Update("photo_url", path).Error; err != nil {
		utils.LogError("Failed to update photo for professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to update photo", err.Error())
		return
	}

	utils.Success(c, utils.MsgUploadSuccess, gin.H{"photo_url": path})
}
