package handlers

import (
	"regexp"
	"strings"
)

// Browsers submit this value for a checked checkbox.
const depositCheckedSentinel = "on"

var phonePattern = regexp.MustCompile(`^\d{8}$`)

// validPhone reports whether phone is exactly 8 decimal digits. No trimming
// happens here: a value with surrounding whitespace fails.
func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// allPresent reports whether every field is non-empty after trimming.
func allPresent(fields ...string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

func depositConfirmed(value string) bool {
	return value == depositCheckedSentinel
}
