package models

import (
	"time"

	"gorm.io/gorm"
)

// Service request status constants
const (
	RequestStatusPending    = "pending"
	RequestStatusApproved   = "approved"
	RequestStatusRejected   = "rejected"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
)

// Wizard step constants for a request draft
const (
	WizardStepServiceDetails = "service_details"
	WizardStepPayment        = "payment"
	WizardStepDone           = "done"
)

// ValidEstimatedDays lists the accepted estimated-duration choices
var ValidEstimatedDays = []int{1, 2, 3, 5, 7, 14, 30}

// requestTransitions is the single source of truth for status changes.
// Both UI gating (allowed_actions) and server-side validation read it.
var requestTransitions = map[string][]string{
	RequestStatusPending:    {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved:   {RequestStatusInProgress},
	RequestStatusInProgress: {RequestStatusCompleted},
	RequestStatusRejected:   {},
	RequestStatusCompleted:  {},
}

// CanTransition reports whether a status change is permitted
func CanTransition(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one
func AllowedTransitions(from string) []string {
	next, ok := requestTransitions[from]
	if !ok {
		return []string{}
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// IsValidEstimatedDays reports whether the duration is one of the accepted choices
func IsValidEstimatedDays(days int) bool {
	for _, d := range ValidEstimatedDays {
		if d == days {
			return true
		}
	}
	return false
}

// RequestDraft is the immutable snapshot the wizard hands from the
// service-details step to the payment step. The draft never moves
// backwards once a checkout attempt has started.
type RequestDraft struct {
	gorm.Model
	UserID          uint    `json:"user_id" gorm:"index;not null"`
	ProfessionalID  uint    `json:"professional_id" gorm:"not null"`
	ServiceType     string  `json:"service_type" gorm:"not null"`
	Description     string  `json:"description" gorm:"not null"`
	PreferredDate   string  `json:"preferred_date" gorm:"not null"`
	PreferredTime   string  `json:"preferred_time" gorm:"not null"`
	EstimatedDays   int     `json:"estimated_days" gorm:"not null"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency" gorm:"default:'INR'"`
	Step            string  `json:"step" gorm:"default:'payment'"`
	RazorpayOrderID string  `json:"razorpay_order_id" gorm:"index"`
}

// ServiceRequest is a user's payment-gated request for a professional's
// services. It references exactly one Success payment, created strictly
// before the request record.
type ServiceRequest struct {
	gorm.Model
	UserID         uint         `json:"user_id" gorm:"index;not null"`
	User           User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProfessionalID uint         `json:"professional_id" gorm:"index;not null"`
	Professional   Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	PaymentID      uint         `json:"payment_id" gorm:"uniqueIndex;not null"`
	Payment        Payment      `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`

	Title         string `json:"title" gorm:"not null"`
	Description   string `json:"description"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	EstimatedDays int    `json:"estimated_days"`

	Status        string     `json:"status" gorm:"default:'pending';index"`
	PaymentStatus string     `json:"payment_status" gorm:"default:'completed'"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	AdminNotes    string     `json:"admin_notes"`

	// Professional rates the user when completing the request
	ProRatingStars    *int   `json:"pro_rating_stars"`
	ProRatingFeedback string `json:"pro_rating_feedback"`

	// User rates the professional after completion
	UserRatingStars    *int   `json:"user_rating_stars"`
	UserRatingFeedback string `json:"user_rating_feedback"`
}
