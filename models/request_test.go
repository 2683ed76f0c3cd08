package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{RequestStatusPending, RequestStatusApproved, true},
		{RequestStatusPending, RequestStatusRejected, true},
		{RequestStatusPending, RequestStatusInProgress, false},
		{RequestStatusPending, RequestStatusCompleted, false},
		{RequestStatusApproved, RequestStatusInProgress, true},
		{RequestStatusApproved, RequestStatusCompleted, false},
		{RequestStatusApproved, RequestStatusRejected, false},
		{RequestStatusInProgress, RequestStatusCompleted, true},
		{RequestStatusInProgress, RequestStatusApproved, false},
		{RequestStatusRejected, RequestStatusApproved, false},
		{RequestStatusRejected, RequestStatusPending, false},
		{RequestStatusCompleted, RequestStatusInProgress, false},
		{"unknown", RequestStatusApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t, []string{RequestStatusApproved, RequestStatusRejected}, AllowedTransitions(RequestStatusPending))
	assert.Equal(t, []string{RequestStatusInProgress}, AllowedTransitions(RequestStatusApproved))
	assert.Equal(t, []string{RequestStatusCompleted}, AllowedTransitions(RequestStatusInProgress))
	assert.Empty(t, AllowedTransitions(RequestStatusRejected))
	assert.Empty(t, AllowedTransitions(RequestStatusCompleted))
	assert.Empty(t, AllowedTransitions("unknown"))
}

func TestAllowedTransitionsReturnsCopy(t *testing.T) {
	first := AllowedTransitions(RequestStatusPending)
	first[0] = "mutated"
	assert.True(t, CanTransition(RequestStatusPending, RequestStatusApproved))
}

func TestIsValidEstimatedDays(t *testing.T) {
	for _, days := range ValidEstimatedDays {
		assert.True(t, IsValidEstimatedDays(days), "days %d", days)
	}
	for _, days := range []int{0, -1, 4, 6, 8, 15, 29, 31, 100} {
		assert.False(t, IsValidEstimatedDays(days), "days %d", days)
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, status := range []string{PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusPending} {
		assert.True(t, IsValidPaymentStatus(status), "status %s", status)
	}
	// Statuses are case sensitive on the wire
	for _, status := range []string{"success", "failed", "cancelled", "refunded", ""} {
		assert.False(t, IsValidPaymentStatus(status), "status %s", status)
	}
}

func TestApplyRating(t *testing.T) {
	p := Professional{}
	p.ApplyRating(4)
	assert.Equal(t, 1, p.TotalRatings)
	assert.InDelta(t, 4.0, p.AverageRating, 0.0001)

	p.ApplyRating(2)
	assert.Equal(t, 2, p.TotalRatings)
	assert.InDelta(t, 3.0, p.AverageRating, 0.0001)

	p.ApplyRating(5)
	assert.Equal(t, 3, p.TotalRatings)
	assert.InDelta(t, 11.0/3.0, p.AverageRating, 0.0001)
}

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"plumbing", "wiring"}
	value, err := list.Value()
	assert.NoError(t, err)

	var decoded StringList
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)

	var empty StringList
	assert.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
