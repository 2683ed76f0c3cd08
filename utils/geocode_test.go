package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Same point
	assert.InDelta(t, 0, HaversineKm(18.5204, 73.8567, 18.5204, 73.8567), 0.001)

	// Pune to Mumbai, roughly 120 km
	d := HaversineKm(18.5204, 73.8567, 19.0760, 72.8777)
	assert.InDelta(t, 120, d, 10)

	// Symmetric
	assert.InDelta(t, d, HaversineKm(19.0760, 72.8777, 18.5204, 73.8567), 0.001)

	// Antipodal-ish distance stays below half the circumference
	far := HaversineKm(0, 0, 0, 180)
	assert.InDelta(t, 20015, far, 50)
}
