package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment status constants
const (
	PaymentStatusSuccess   = "Success"
	PaymentStatusFailed    = "Failed"
	PaymentStatusCancelled = "Cancelled"
	PaymentStatusPending   = "Pending"
)

// IsValidPaymentStatus reports whether the status is one of the known values
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusPending:
		return true
	}
	return false
}

// Payment records one checkout attempt outcome. Exactly one row is
// persisted per attempt, whichever of the three callback paths fires.
// Rows are immutable afterwards except the explicit status-update call
// and the partial-failure annotation in Metadata.
type Payment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         uint          `json:"user_id" gorm:"index;not null"`
	User           User          `json:"-" gorm:"foreignKey:UserID"`
	ProfessionalID *uint         `json:"professional_id"`
	Professional   *Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	DraftID        *uint         `json:"draft_id"`
	RequestID      *uint         `json:"request_id"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" gorm:"default:'INR'"`

	RazorpayOrderID   string `json:"razorpay_order_id" gorm:"index"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"-"`

	Status        string         `json:"status" gorm:"index;not null"`
	FailureCode   string         `json:"failure_code"`
	FailureReason string         `json:"failure_reason"`
	Metadata      datatypes.JSON `json:"metadata"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
