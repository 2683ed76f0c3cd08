package controllers

import (
	"fmt"
	"strconv"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// professionalSummary is the listing card shape
func professionalSummary(p *models.Professional, distanceKm *float64) gin.H {
	item := gin.H{
		"id":               p.ID,
		"name":             p.Name,
		"profession":       p.Profession,
		"experience_years": p.ExperienceYears,
		"city":             p.City,
		"district":         p.District,
		"skills":           p.Skills,
		"specializations":  p.Specializations,
		"price_range":      p.PriceRange,
		"photo_url":        p.PhotoURL,
		"average_rating":   p.AverageRating,
		"total_ratings":    p.TotalRatings,
	}
	if distanceKm != nil {
		item["distance_km"] = fmt.Sprintf("%.1f", *distanceKm)
	}
	return item
}

// ListProfessionals returns verified professionals filtered by search
// term and dropdown selections. Filtering happens over the fetched set
// so the term semantics match the card search exactly: case-insensitive
// substring on name, profession, and city.
func ListProfessionals(c *gin.Context) {
	utils.LogInfo("ListProfessionals called")

	filter := utils.ProfessionalFilter{
		SearchTerm: utils.SanitizeString(c.Query("q")),
		Profession: utils.SanitizeString(c.Query("profession")),
		City:       utils.SanitizeString(c.Query("city")),
	}

	var professionals []models.Professional
	if err := config.DB.Where("verification_status = ?", models.VerificationStatusVerified).
		Order("average_rating DESC, created_at DESC").
		Find(&professionals).Error; err != nil {
		utils.LogError("Failed to fetch professionals: %v", err)
		utils.InternalServerError(c, "Failed to fetch professionals", err.Error())
		return
	}

	filtered := utils.FilterProfessionals(professionals, filter)
	utils.LogDebug("Filter matched %d of %d professionals", len(filtered), len(professionals))

	pagination := utils.NewPagination(c)
	page := utils.PaginateProfessionals(filtered, pagination)

	// Optional viewer position for distance display
	var viewerLat, viewerLng float64
	var hasPosition bool
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			viewerLat, viewerLng = lat, lng
			hasPosition = true
		}
	}

	items := make([]gin.H, 0, len(page))
	for i := range page {
		var distance *float64
		if hasPosition && (page[i].Latitude != 0 || page[i].Longitude != 0) {
			d := utils.HaversineKm(viewerLat, viewerLng, page[i].Latitude, page[i].Longitude)
			distance = &d
		}
		items = append(items, professionalSummary(&page[i], distance))
	}

	utils.SuccessWithPagination(c, "Professionals retrieved successfully", items,
		pagination.Total, pagination.Page, pagination.Limit)
}

// GetProfessionalDetails returns one verified professional's full profile
func GetProfessionalDetails(c *gin.Context) {
	utils.LogInfo("GetProfessionalDetails called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid professional ID: %v", err)
		utils.BadRequest(c, "Invalid professional ID", nil)
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, id).Error; err != nil {
		utils.LogError("Professional not found: %d", id)
		utils.NotFound(c, "Professional not found")
		return
	}

	if !professional.IsVerified() {
		utils.LogError("Attempt to view unverified professional: %d", id)
		utils.NotFound(c, "Professional not found")
		return
	}

	utils.Success(c, "Professional retrieved successfully", gin.H{
		"professional": professional,
	})
}

// ListProfessionFacets returns the distinct professions and cities used
// by the listing dropdowns
func ListProfessionFacets(c *gin.Context) {
	utils.LogInfo("ListProfessionFacets called")

	var professions []string
	if err := config.DB.Model(&models.Professional{}).
		Where("verification_status = ?", models.VerificationStatusVerified).
		Distinct().Order("profession").Pluck("profession", &professions).Error; err != nil {
		utils.LogError("Failed to fetch professions: %v", err)
		utils.InternalServerError(c, "Failed to fetch professions", err.Error())
		return
	}

	var cities []string
	if err := config.DB.Model(&models.Professional{}).
		Where("verification_status = ?", models.VerificationStatusVerified).
		Distinct().Order("city").Pluck("city", &cities).Error; err != nil {
		utils.LogError("Failed to fetch cities: %v", err)
		utils.InternalServerError(c, "Failed to fetch cities", err.Error())
		return
	}

	utils.Success(c, "Facets retrieved successfully", gin.H{
		"professions": professions,
		"cities":      cities,
	})
}
