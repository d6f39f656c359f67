// Package phone validates and normalizes seller phone numbers.
//
// Numbers are accepted either in international format (+ and 10-15 digits)
// or in Nigerian local format, which is rewritten to its +234 equivalent.
package phone

import (
	"regexp"
	"strings"
)

var (
	internationalRe = regexp.MustCompile(`^\+\d{10,15}$`)
	nigerianLocalRe = regexp.MustCompile(`^(\d{11}|234\d{10})$`)
	loginCodeRe     = regexp.MustCompile(`^\d{5}$`)
)

// IsValid reports whether the input can be normalized to a usable number.
func IsValid(raw string) bool {
	cleaned := clean(raw)
	if internationalRe.MatchString(cleaned) {
		return true
	}
	return nigerianLocalRe.MatchString(cleaned)
}

// Normalize rewrites the input to international format. Nigerian local
// numbers (11 digits starting with 0, bare 10 digits, or a 234 prefix
// without +) become +234 numbers. Inputs that match no known shape are
// returned cleaned but otherwise untouched.
func Normalize(raw string) string {
	cleaned := clean(raw)

	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "0"):
		return "+234" + cleaned[1:]
	case len(cleaned) == 10:
		return "+234" + cleaned
	case len(cleaned) == 13 && strings.HasPrefix(cleaned, "234"):
		return "+" + cleaned
	}
	return cleaned
}

// IsValidLoginCode reports whether the input is a well-formed one-time
// login code: exactly five digits.
func IsValidLoginCode(code string) bool {
	return loginCodeRe.MatchString(strings.TrimSpace(code))
}

// clean strips everything except digits and a leading +.
func clean(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
