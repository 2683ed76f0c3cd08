package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePincode(t *testing.T) {
	for _, pin := range []string{"411001", "110001", "999999"} {
		valid, _ := ValidatePincode(pin)
		assert.True(t, valid, "pincode %s", pin)
	}
	for _, pin := range []string{"", "41100", "4110011", "041100", "41100a", "41 100"} {
		valid, _ := ValidatePincode(pin)
		assert.False(t, valid, "pincode %s", pin)
	}
}

func TestValidateStars(t *testing.T) {
	for stars := 1; stars <= 5; stars++ {
		valid, _ := ValidateStars(stars)
		assert.True(t, valid, "stars %d", stars)
	}
	for _, stars := range []int{0, -1, 6, 100} {
		valid, msg := ValidateStars(stars)
		assert.False(t, valid, "stars %d", stars)
		assert.Equal(t, ErrInvalidRating, msg)
	}
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("Str0ng!Pass")
	assert.True(t, valid)

	for _, pw := range []string{"short1!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSpecial11A"} {
		valid, _ := ValidatePassword(pw)
		assert.False(t, valid, "password %s", pw)
	}
}

func TestValidatePhoneFormats(t *testing.T) {
	valid, cleaned := ValidatePhone("+91 98765 43210")
	assert.True(t, valid)
	assert.Equal(t, "+919876543210", cleaned)

	valid, _ = ValidatePhone("98765-43210")
	assert.True(t, valid)

	for _, phone := range []string{"12345", "abcdefghij", "+91 98765"} {
		valid, _ := ValidatePhone(phone)
		assert.False(t, valid, "phone %s", phone)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeString("  hello world\n"))
	assert.Equal(t, "tabfree", SanitizeString("tab\tfree"))
	assert.Equal(t, "", SanitizeString("   "))
}

func TestFieldValidationErrorsError(t *testing.T) {
	errs := FieldValidationErrors{"service_type": "Service type is required"}
	assert.Contains(t, errs.Error(), "service_type")
	assert.Contains(t, errs.Error(), "required")
}
