package controllers

import (
	"strconv"

	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
)

// ReverseGeocode resolves a lat/lng pair to a structured address. The
// wizard and the professional application form both call this endpoint.
func ReverseGeocode(c *gin.Context) {
	utils.LogInfo("ReverseGeocode called")

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing lat", nil)
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing lng", nil)
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		utils.BadRequest(c, "Coordinates out of range", nil)
		return
	}

	address, err := utils.ReverseGeocode(lat, lng)
	if err != nil {
		utils.LogError("Reverse geocode failed for %.5f,%.5f: %v", lat, lng, err)
		utils.InternalServerError(c, "Failed to resolve location", err.Error())
		return
	}

	utils.Success(c, "Location resolved successfully", address)
}
