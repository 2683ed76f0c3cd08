package controllers

import (
	"github.com/profinder-dev/profinder/models"
)

// Checkout outcome names, mirroring the widget's three callback surfaces
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// CheckoutOutcome carries what the widget reported for one attempt
type CheckoutOutcome struct {
	Kind              string
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
	FailureCode       string
	FailureReason     string
}

// BuildPaymentRecord maps one checkout attempt outcome onto the single
// payment record persisted for it. Every attempt produces exactly one
// record with status Success, Failed, or Cancelled.
func BuildPaymentRecord(draft *models.RequestDraft, outcome CheckoutOutcome) models.Payment {
	payment := models.Payment{
		UserID:            draft.UserID,
		ProfessionalID:    &draft.ProfessionalID,
		DraftID:           &draft.ID,
		Amount:            draft.Amount,
		Currency:          draft.Currency,
		RazorpayOrderID:   outcome.RazorpayOrderID,
		RazorpayPaymentID: outcome.RazorpayPaymentID,
		RazorpaySignature: outcome.RazorpaySignature,
	}
	if payment.RazorpayOrderID == "" {
		payment.RazorpayOrderID = draft.RazorpayOrderID
	}

	switch outcome.Kind {
	case OutcomeSuccess:
		payment.Status = models.PaymentStatusSuccess
	case OutcomeFailed:
		payment.Status = models.PaymentStatusFailed
		payment.FailureCode = outcome.FailureCode
		payment.FailureReason = outcome.FailureReason
	case OutcomeCancelled:
		payment.Status = models.PaymentStatusCancelled
	default:
		payment.Status = models.PaymentStatusPending
	}

	return payment
}

// BuildServiceRequest creates the request record shape for a draft whose
// payment succeeded. The payment must already be persisted: a service
// request references exactly one Success payment created before it.
func BuildServiceRequest(draft *models.RequestDraft, payment *models.Payment) models.ServiceRequest {
	return models.ServiceRequest{
		UserID:         draft.UserID,
		ProfessionalID: draft.ProfessionalID,
		PaymentID:      payment.ID,
		Title:          draft.ServiceType,
		Description:    draft.Description,
		PreferredDate:  draft.PreferredDate,
		PreferredTime:  draft.PreferredTime,
		EstimatedDays:  draft.EstimatedDays,
		Status:         models.RequestStatusPending,
		PaymentStatus:  "completed",
	}
}
