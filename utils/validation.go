// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number looks dialable
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Optional + prefix followed by 7-15 digits; local numbers with a
	// leading 0 are accepted
	regex := `^\+?\d{7,15}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
