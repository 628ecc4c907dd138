package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - dataset keys and indicator codes
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateCountryName checks a country name taken from the query string. World Bank
// names contain commas, parentheses and apostrophes ("Korea, Dem. People's Rep."),
// so only length and injection patterns are rejected.
func ValidateCountryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("country name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("country name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("country name contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
