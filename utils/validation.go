package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationErrors maps field names to validation messages
type FieldValidationErrors map[string]string

func (e FieldValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	pincodeRegex  = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s.'\-]+$`)
)

// SanitizeString trims whitespace and strips control characters
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, input)
}

// ValidateSQLInjection checks for common SQL injection patterns
func ValidateSQLInjection(input string) (bool, string) {
	lowered := strings.ToLower(input)
	patterns := []string{
		"--", ";--", "/*", "*/", "@@",
		" or 1=1", " and 1=1", "union select", "drop table",
		"insert into", "delete from", "xp_cmdshell",
	}
	for _, p := range patterns {
		if strings.Contains(lowered, p) {
			return false, "Input contains disallowed characters"
		}
	}
	return true, ""
}

// ValidateXSS checks for common script injection patterns
func ValidateXSS(input string) (bool, string) {
	lowered := strings.ToLower(input)
	patterns := []string{"<script", "javascript:", "onerror=", "onload=", "<iframe"}
	for _, p := range patterns {
		if strings.Contains(lowered, p) {
			return false, "Input contains disallowed characters"
		}
	}
	return true, ""
}

// ValidateUsername validates a username
func ValidateUsername(username string) (bool, string) {
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-30 characters and contain only letters, numbers, and underscores"
	}
	return true, ""
}

// ValidateEmail validates an email address
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, ErrInvalidEmail
	}
	return true, ""
}

// ValidatePassword validates password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false, ErrInvalidPassword
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return false, ErrInvalidPassword
	}
	return true, ""
}

// ValidatePhone validates a phone number and returns the formatted value
func ValidatePhone(phone string) (bool, string) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(cleaned) {
		return false, ErrInvalidPhone
	}
	return true, cleaned
}

// ValidateName validates a first/last name
func ValidateName(name string) (bool, string) {
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return false, fmt.Sprintf("Name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return false, "Name contains invalid characters"
	}
	return true, ""
}

// ValidatePincode validates an Indian postal code
func ValidatePincode(pincode string) (bool, string) {
	if !pincodeRegex.MatchString(pincode) {
		return false, "Pincode must be a 6-digit postal code"
	}
	return true, ""
}

// ValidateStars validates a star rating
func ValidateStars(stars int) (bool, string) {
	if stars < MinRating || stars > MaxRating {
		return false, ErrInvalidRating
	}
	return true, ""
}
