package impl

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailPattern is a deliberately lenient local@domain.tld check; real
// deliverability is not verified.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validatePhone strips everything that is not a digit or '+' and accepts when
// at least 10 characters remain and the result either starts with '+' or is
// all digits. Deliberately permissive; no country code or exact length rules.
func validatePhone(phone string) bool {
	var cleaned strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' {
			cleaned.WriteRune(r)
		}
	}

	s := cleaned.String()
	if len(s) < 10 {
		return false
	}
	if strings.HasPrefix(s, "+") {
		return true
	}

	return !strings.Contains(s, "+")
}

// validateEmail reports whether the whole string looks like an email address.
func validateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// parseKeywords splits on commas, trims and lowercases each token, and drops
// empty or single-character tokens. Order of the surviving tokens is kept.
func parseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		keyword := strings.ToLower(strings.TrimSpace(part))
		if utf8.RuneCountInString(keyword) > 1 {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}
