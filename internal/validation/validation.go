// Package validation holds the field-format rules shared by the advisory
// form-validation endpoint and the authoritative order builder. Keeping them
// in one place means the interactive checkout form and the server enforce the
// same rules.
package validation

import (
	"regexp"
	"strings"
)

var (
	eMoneyNumberRe = regexp.MustCompile(`^\d{9}$`)
	eMoneyPinRe    = regexp.MustCompile(`^\d{4}$`)
	nameRe         = regexp.MustCompile(`^[A-Za-z0-9]+(?:[ _-][A-Za-z0-9]+)*$`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe        = regexp.MustCompile(`^[0-9+\-]+$`)
	addressRe      = regexp.MustCompile(`\w+`)
	zipCodeRe      = regexp.MustCompile(`^\d{5}(?:[-\s]\d{4})?$`)
)

// ValidEMoneyNumber reports whether s is exactly nine decimal digits.
func ValidEMoneyNumber(s string) bool {
	return eMoneyNumberRe.MatchString(s)
}

// ValidEMoneyPin reports whether s is exactly four decimal digits.
func ValidEMoneyPin(s string) bool {
	return eMoneyPinRe.MatchString(s)
}

// ValidName accepts alphanumeric words separated by a single space, dash or
// underscore.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidEmail checks the standard local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone accepts digits, '+' and '-' only.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidAddress requires at least one word character.
func ValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// ValidZipCode accepts US-style ZIP codes: 12345 or 12345-6789.
func ValidZipCode(s string) bool {
	return zipCodeRe.MatchString(s)
}

// ValidPlaceName covers city and country: trimmed length of at least two.
func ValidPlaceName(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}
