package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	const secret = "test_secret_key"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)

	assert.True(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, secret))

	// Wrong secret
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, "other_secret"))

	// Tampered order or payment id
	assert.False(t, VerifyRazorpaySignature("order_ABC124", "pay_XYZ789", sig, secret))
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ790", sig, secret))

	// Garbage signature
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "deadbeef", secret))
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "", secret))
}
