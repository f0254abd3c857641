package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and console format for stay dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
