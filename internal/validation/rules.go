package validation

import (
	"regexp"
	"strings"
)

// PasswordSpecialChars lists the special characters a password must draw from.
const PasswordSpecialChars = "@$!%*#?&"

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmailFormat reports whether s looks like local-part@domain.tld.
func IsEmailFormat(s string) bool {
	return emailRegex.MatchString(s)
}

// HasPasswordCharClasses reports whether s contains at least one ASCII letter,
// one digit and one of PasswordSpecialChars, in any order.
func HasPasswordCharClasses(s string) bool {
	var letter, digit, special bool
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}
	return letter && digit && special
}
