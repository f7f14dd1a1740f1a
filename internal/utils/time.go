package utils

import (
	"strings"
	"time"
)

const LayoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, strings.TrimSpace(s), time.Local)
}

// ValidDate reports whether s is empty or a well-formed YYYY-MM-DD.
func ValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := ParseDate(s)
	return err == nil
}
