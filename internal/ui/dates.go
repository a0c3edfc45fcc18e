package ui

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format dates are typed in.
const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD date in the local time zone.
// Blank input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return &t, nil
}

// FormatDate renders an optional date for a form field.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(DateLayout)
}

// ValidateDate is a huh validator for optional date inputs.
func ValidateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// ValidateRequired returns a huh validator rejecting blank input.
func ValidateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// FormWidth clamps a form to a readable width.
func FormWidth(width int) int {
	return min(max(width-4, 40), 100)
}

// FormHeight leaves room around a form.
func FormHeight(height int) int {
	return max(height-4, 10)
}
