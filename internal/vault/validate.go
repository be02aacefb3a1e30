package vault

import "strings"

// MinPasswordLength is the minimum accepted password length. Six characters
// is a weak floor kept for compatibility with the existing user base; do
// not raise it here without migrating the registration flow.
const MinPasswordLength = 6

// ValidateName reports whether s is an acceptable display name: 2 to 50
// characters after trimming, containing only ASCII letters, spaces,
// hyphens, and apostrophes.
func ValidateName(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 50 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == ' ' || r == '-' || r == '\'':
		default:
			return false
		}
	}
	return true
}

// ValidatePhone reports whether s contains 7 to 15 digits once every
// non-digit character is stripped. Formatting like "(555) 123-4567" is
// accepted; the stored value keeps the caller's formatting (see Sanitize).
func ValidatePhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// ValidatePassword applies the password policy to a candidate password.
func ValidatePassword(s string) bool {
	return len(s) >= MinPasswordLength
}

// Sanitize strips leading/trailing whitespace and removes the characters
// < > " ' from s. It is applied to name and phone before storage as a
// defense against naive markup injection when the values are later
// rendered by the view layer.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>', '"', '\'':
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
