package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up
const MinPasswordLength = 6

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	controlRegex    = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	// local part can't start or end with dots, domain labels can't start or end with dashes
	return emailRegex.MatchString(email)
}

// IsStrongPassword reports whether a password meets the minimum length
func IsStrongPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// IsValidPhoneNumber checks if a string is a valid phone number.
// Spaces and dashes are ignored.
func IsValidPhoneNumber(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phoneRegex.MatchString(clean)
}

// SanitizeString removes control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlRegex.ReplaceAllString(s, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) <= 2 {
		return email
	}

	return localPart[:2] + strings.Repeat("*", len(localPart)-2) + "@" + parts[1]
}
