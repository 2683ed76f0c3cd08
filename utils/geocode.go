package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// GeocodedAddress is the normalized result of a reverse-geocode lookup.
// All address lookups go through this one boundary.
type GeocodedAddress struct {
	DisplayName string `json:"display_name"`
	Village     string `json:"village"`
	City        string `json:"city"`
	District    string `json:"district"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Village       string `json:"village"`
		Town          string `json:"town"`
		City          string `json:"city"`
		County        string `json:"county"`
		StateDistrict string `json:"state_district"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

var geocodeCache = make(map[string]*GeocodedAddress)
var geocodeCacheMu sync.RWMutex

var geocodeClient = &http.Client{Timeout: 10 * time.Second}

// ReverseGeocode resolves a lat/lng to an address using Nominatim.
// Results are cached per coordinate pair for the process lifetime.
func ReverseGeocode(lat, lng float64) (*GeocodedAddress, error) {
	key := fmt.Sprintf("%.5f,%.5f", lat, lng)

	geocodeCacheMu.RLock()
	if addr, ok := geocodeCache[key]; ok {
		geocodeCacheMu.RUnlock()
		return addr, nil
	}
	geocodeCacheMu.RUnlock()

	endpoint := fmt.Sprintf(
		"https://nominatim.openstreetmap.org/reverse?format=json&lat=%s&lon=%s",
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lng)),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", AppName)

	resp, err := geocodeClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var raw nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse geocode response: %v", err)
	}

	addr := &GeocodedAddress{
		DisplayName: raw.DisplayName,
		Village:     raw.Address.Village,
		City:        raw.Address.City,
		District:    raw.Address.StateDistrict,
		State:       raw.Address.State,
		Pincode:     raw.Address.Postcode,
	}
	if addr.City == "" {
		addr.City = raw.Address.Town
	}
	if addr.District == "" {
		addr.District = raw.Address.County
	}

	geocodeCacheMu.Lock()
	geocodeCache[key] = addr
	geocodeCacheMu.Unlock()

	return addr, nil
}

const earthRadiusKm = 6371.0

// HaversineKm calculates the great-circle distance (in km) between two lat/lng points
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
