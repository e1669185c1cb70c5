package application

import (
	"fmt"
	"strings"

	"devotional/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to readable words
// (e.g., "outputDir" -> "output directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"date":       "date",
		"providers":  "provider list",
		"outputDir":  "output directory",
		"contentDir": "content directory",
		"app":        "app name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDate checks that value is a real YYYY-MM-DD calendar date.
// The returned error matches ErrInvalidDate.
func ValidateDate(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if _, err := domain.ParseDate(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", value),
		})
	}
	return nil
}
