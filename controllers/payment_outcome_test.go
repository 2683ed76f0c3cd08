package controllers

import (
	"testing"

	"github.com/profinder-dev/profinder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *models.RequestDraft {
	draft := &models.RequestDraft{
		UserID:          11,
		ProfessionalID:  42,
		ServiceType:     "Plumbing Work",
		Description:     "Fix the kitchen sink",
		PreferredDate:   "2026-09-20",
		PreferredTime:   "14:00",
		EstimatedDays:   3,
		Amount:          199.00,
		Currency:        "INR",
		Step:            models.WizardStepPayment,
		RazorpayOrderID: "order_stored",
	}
	draft.ID = 5
	return draft
}

func TestBuildPaymentRecordSuccess(t *testing.T) {
	draft := sampleDraft()
	payment := BuildPaymentRecord(draft, CheckoutOutcome{
		Kind:              OutcomeSuccess,
		RazorpayOrderID:   "order_ABC",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "sig",
	})

	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, draft.UserID, payment.UserID)
	require.NotNil(t, payment.ProfessionalID)
	assert.Equal(t, draft.ProfessionalID, *payment.ProfessionalID)
	require.NotNil(t, payment.DraftID)
	assert.Equal(t, draft.ID, *payment.DraftID)
	assert.Equal(t, draft.Amount, payment.Amount)
	assert.Equal(t, "INR", payment.Currency)
	assert.Equal(t, "order_ABC", payment.RazorpayOrderID)
	assert.Equal(t, "pay_123", payment.RazorpayPaymentID)
	assert.Nil(t, payment.RequestID)
}

func TestBuildPaymentRecordFailed(t *testing.T) {
	draft := sampleDraft()
	payment := BuildPaymentRecord(draft, CheckoutOutcome{
		Kind:          OutcomeFailed,
		FailureCode:   "BAD_REQUEST_ERROR",
		FailureReason: "Payment declined by bank",
	})

	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Equal(t, "BAD_REQUEST_ERROR", payment.FailureCode)
	assert.Equal(t, "Payment declined by bank", payment.FailureReason)
	// Falls back to the order stored on the draft
	assert.Equal(t, "order_stored", payment.RazorpayOrderID)
	assert.Nil(t, payment.RequestID)
}

func TestBuildPaymentRecordCancelled(t *testing.T) {
	draft := sampleDraft()
	payment := BuildPaymentRecord(draft, CheckoutOutcome{Kind: OutcomeCancelled})

	assert.Equal(t, models.PaymentStatusCancelled, payment.Status)
	assert.Empty(t, payment.FailureCode)
	assert.Nil(t, payment.RequestID)
}

func TestBuildPaymentRecordUnknownKind(t *testing.T) {
	payment := BuildPaymentRecord(sampleDraft(), CheckoutOutcome{Kind: "weird"})
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestBuildServiceRequest(t *testing.T) {
	draft := sampleDraft()
	payment := BuildPaymentRecord(draft, CheckoutOutcome{
		Kind:              OutcomeSuccess,
		RazorpayOrderID:   "order_ABC",
		RazorpayPaymentID: "pay_123",
	})
	payment.ID = 77

	request := BuildServiceRequest(draft, &payment)

	assert.Equal(t, draft.UserID, request.UserID)
	assert.Equal(t, draft.ProfessionalID, request.ProfessionalID)
	assert.Equal(t, payment.ID, request.PaymentID)
	assert.Equal(t, draft.ServiceType, request.Title)
	assert.Equal(t, draft.Description, request.Description)
	assert.Equal(t, draft.PreferredDate, request.PreferredDate)
	assert.Equal(t, draft.PreferredTime, request.PreferredTime)
	assert.Equal(t, draft.EstimatedDays, request.EstimatedDays)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "completed", request.PaymentStatus)
}
