package usecase

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// PhoneVariants strips everything but digits from a raw phone string and
// returns the dial forms a contact may have been stored under, in lookup
// order. No length or country-code validation is done on purpose: a garbage
// input just produces variants that will never match.
func PhoneVariants(raw string) []string {
	digits := nonDigits.ReplaceAllString(raw, "")
	return []string{
		"+1" + digits,
		"+" + digits,
		digits,
	}
}

// NormalizePhone is the canonical storage form: +1<digits>, or +<digits>
// when the digits already carry the leading 1.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "1") {
		return "+" + digits
	}
	return "+1" + digits
}
