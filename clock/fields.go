package clock

import (
	"strconv"
	"strings"
	"unicode"
)

// maxFieldDigits is the width of the typed hour and minute fields.
const maxFieldDigits = 2

// SanitizeField strips everything but ASCII digits and keeps at most two.
func SanitizeField(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
	if len(digits) > maxFieldDigits {
		digits = digits[:maxFieldDigits]
	}
	return digits
}

// ParseField parses a typed numeric field. Non-digits are dropped, an empty
// field reads as 0 and the result is clamped to [0, max]. It never fails.
func ParseField(raw string, max int) int {
	n, err := strconv.Atoi(SanitizeField(raw))
	if err != nil {
		n = 0
	}
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return n
}

// ParseHour parses a typed hour in [0, 23].
func ParseHour(raw string) int {
	return ParseField(raw, 23)
}

// ParseMinute parses a typed minute in [0, 59].
func ParseMinute(raw string) int {
	return ParseField(raw, 59)
}
