package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() ServiceDetailsRequest {
	return ServiceDetailsRequest{
		ProfessionalID: 7,
		ServiceType:    "Electrical Repair",
		Description:    "Replace the main switchboard",
		PreferredDate:  "2026-09-15",
		PreferredTime:  "10:00",
		EstimatedDays:  2,
	}
}

func TestValidateServiceDetailsAccepts(t *testing.T) {
	req := validDetails()
	assert.Nil(t, ValidateServiceDetails(&req))

	for _, days := range []int{1, 2, 3, 5, 7, 14, 30} {
		req := validDetails()
		req.EstimatedDays = days
		assert.Nil(t, ValidateServiceDetails(&req), "days %d", days)
	}
}

func TestValidateServiceDetailsRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*ServiceDetailsRequest)
	}{
		{"service_type", func(r *ServiceDetailsRequest) { r.ServiceType = "" }},
		{"description", func(r *ServiceDetailsRequest) { r.Description = "   " }},
		{"preferred_date", func(r *ServiceDetailsRequest) { r.PreferredDate = "" }},
		{"preferred_time", func(r *ServiceDetailsRequest) { r.PreferredTime = "\t" }},
	}

	for _, tc := range cases {
		req := validDetails()
		tc.mutate(&req)
		errs := ValidateServiceDetails(&req)
		require.NotNil(t, errs, "field %s", tc.field)
		assert.Contains(t, errs, tc.field)
		assert.Len(t, errs, 1)
	}
}

func TestValidateServiceDetailsDuration(t *testing.T) {
	for _, days := range []int{0, 4, 10, -1, 31} {
		req := validDetails()
		req.EstimatedDays = days
		errs := ValidateServiceDetails(&req)
		require.NotNil(t, errs, "days %d", days)
		assert.Contains(t, errs, "estimated_days")
	}
}

func TestValidateServiceDetailsCollectsAll(t *testing.T) {
	req := ServiceDetailsRequest{ProfessionalID: 1}
	errs := ValidateServiceDetails(&req)
	require.NotNil(t, errs)
	assert.Len(t, errs, 5)
}
