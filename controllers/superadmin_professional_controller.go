package controllers

import (
	"strconv"
	"time"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// ListProfessionalsForReview returns professional profiles filtered by
// verification status, pending first by default
func ListProfessionalsForReview(c *gin.Context) {
	utils.LogInfo("ListProfessionalsForReview called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Professional{}).Preload("User")

	status := c.DefaultQuery("status", models.VerificationStatusPending)
	if status != "all" {
		if status != models.VerificationStatusPending &&
			status != models.VerificationStatusVerified &&
			status != models.VerificationStatusRejected {
			utils.BadRequest(c, "Invalid status filter", gin.H{
				"allowed": []string{models.VerificationStatusPending, models.VerificationStatusVerified, models.VerificationStatusRejected, "all"},
			})
			return
		}
		query = query.Where("verification_status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		term := "%" + utils.SanitizeString(search) + "%"
		query = query.Where("name ILIKE ? OR profession ILIKE ? OR city ILIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count professionals: %v", err)
		utils.InternalServerError(c, "Failed to fetch professionals", err.Error())
		return
	}

	var professionals []models.Professional
	if err := query.Order("created_at ASC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&professionals).Error; err != nil {
		utils.LogError("Failed to fetch professionals: %v", err)
		utils.InternalServerError(c, "Failed to fetch professionals", err.Error())
		return
	}

	items := make([]gin.H, 0, len(professionals))
	for i := range professionals {
		p := &professionals[i]
		items = append(items, gin.H{
			"id":                  p.ID,
			"name":                p.Name,
			"email":               p.Email,
			"phone":               p.Phone,
			"profession":          p.Profession,
			"experience_years":    p.ExperienceYears,
			"city":                p.City,
			"district":            p.District,
			"pincode":             p.Pincode,
			"skills":              p.Skills,
			"price_range":         p.PriceRange,
			"verification_status": p.VerificationStatus,
			"rejection_reason":    p.RejectionReason,
			"applied_at":          p.CreatedAt,
		})
	}

	utils.SuccessWithPagination(c, "Professionals retrieved successfully", items, total, pagination.Page, pagination.Limit)
}

// VerifyProfessional marks a pending profile as verified and notifies
// the applicant by email
func VerifyProfessional(c *gin.Context) {
	utils.LogInfo("VerifyProfessional called")
	professionalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid professional ID", nil)
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, professionalID).Error; err != nil {
		utils.LogError("Professional not found for ID: %d", professionalID)
		utils.NotFound(c, "Professional not found")
		return
	}

	if professional.VerificationStatus == models.VerificationStatusVerified {
		utils.Conflict(c, "Professional is already verified", nil)
		return
	}

	now := time.Now()
	if err := config.DB.Model(&professional).Updates(map[string]interface{}{
		"verification_status": models.VerificationStatusVerified,
		"verified_at":         now,
		"rejection_reason":    "",
	}).Error; err != nil {
		utils.LogError("Failed to verify professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to verify professional", err.Error())
		return
	}
	utils.LogInfo("Professional %d verified", professional.ID)

	if professional.Email != "" {
		go func(email, name string) {
			if err := utils.SendVerificationApprovedEmail(email, name); err != nil {
				utils.LogError("Failed to send approval email to %s: %v", email, err)
			}
		}(professional.Email, professional.Name)
	}

	utils.Success(c, "Professional verified successfully", gin.H{
		"id":                  professional.ID,
		"verification_status": models.VerificationStatusVerified,
		"verified_at":         now,
	})
}

// RejectProfessional marks a pending profile as rejected with a reason
func RejectProfessional(c *gin.Context) {
	utils.LogInfo("RejectProfessional called")
	professionalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid professional ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid reject request: %v", err)
		utils.BadRequest(c, "A rejection reason is required", err.Error())
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, professionalID).Error; err != nil {
		utils.LogError("Professional not found for ID: %d", professionalID)
		utils.NotFound(c, "Professional not found")
		return
	}

	reason := utils.SanitizeString(req.Reason)
	if err := config.DB.Model(&professional).Updates(map[string]interface{}{
		"verification_status": models.VerificationStatusRejected,
		"rejection_reason":    reason,
	}).Error; err != nil {
		utils.LogError("Failed to reject professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to reject professional", err.Error())
		return
	}
	utils.LogInfo("Professional %d rejected: %s", professional.ID, reason)

	if professional.Email != "" {
		go func(email, name, reason string) {
			if err := utils.SendVerificationRejectedEmail(email, name, reason); err != nil {
				utils.LogError("Failed to send rejection email to %s: %v", email, err)
			}
		}(professional.Email, professional.Name, reason)
	}

	utils.Success(c, "Professional rejected", gin.H{
		"id":                  professional.ID,
		"verification_status": models.VerificationStatusRejected,
		"rejection_reason":    reason,
	})
}

// UpdateProfessionalByAdmin lets a super-admin correct profile details
func UpdateProfessionalByAdmin(c *gin.Context) {
	utils.LogInfo("UpdateProfessionalByAdmin called")
	professionalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid professional ID", nil)
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, professionalID).Error; err != nil {
		utils.NotFound(c, "Professional not found")
		return
	}

	var req struct {
		Name            *string            `json:"name"`
		Phone           *string            `json:"phone"`
		Profession      *string            `json:"profession"`
		ExperienceYears *int               `json:"experience_years"`
		City            *string            `json:"city"`
		Pincode         *string            `json:"pincode"`
		Skills          *models.StringList `json:"skills"`
		PriceRange      *string            `json:"price_range"`
		About           *string            `json:"about"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = utils.SanitizeString(*req.Name)
	}
	if req.Phone != nil {
		if valid, msg := utils.ValidatePhone(*req.Phone); !valid {
			utils.BadRequest(c, "Invalid phone", msg)
			return
		}
		updates["phone"] = *req.Phone
	}
	if req.Profession != nil {
		updates["profession"] = utils.Title(utils.SanitizeString(*req.Profession))
	}
	if req.ExperienceYears != nil {
		updates["experience_years"] = *req.ExperienceYears
	}
	if req.City != nil {
		updates["city"] = utils.Title(utils.SanitizeString(*req.City))
	}
	if req.Pincode != nil {
		if valid, msg := utils.ValidatePincode(*req.Pincode); !valid {
			utils.BadRequest(c, "Invalid pincode", msg)
			return
		}
		updates["pincode"] = *req.Pincode
	}
	if req.Skills != nil {
		updates["skills"] = *req.Skills
	}
	if req.PriceRange != nil {
		updates["price_range"] = utils.SanitizeString(*req.PriceRange)
	}
	if req.About != nil {
		updates["about"] = utils.SanitizeString(*req.About)
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&professional).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to update professional", err.Error())
		return
	}
	utils.LogInfo("Professional %d updated by super admin", professional.ID)

	utils.Success(c, "Professional updated successfully", gin.H{"id": professional.ID})
}

// DeleteProfessional soft-deletes a profile and hides it from listings
func DeleteProfessional(c *gin.Context) {
	utils.LogInfo("DeleteProfessional called")
	professionalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid professional ID", nil)
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, professionalID).Error; err != nil {
		utils.NotFound(c, "Professional not found")
		return
	}

	if err := config.DB.Delete(&professional).Error; err != nil {
		utils.LogError("Failed to delete professional %d: %v", professional.ID, err)
		utils.InternalServerError(c, "Failed to delete professional", err.Error())
		return
	}
	utils.LogInfo("Professional %d deleted by super admin", professional.ID)

	utils.Success(c, "Professional deleted successfully", gin.H{"id": professional.ID})
}
