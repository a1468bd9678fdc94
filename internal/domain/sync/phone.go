package sync

import "strings"

// Phone numbers arrive from the legacy service in freeform: spaces, dashes,
// parentheses, a domestic leading zero, sometimes the country code already
// attached. NormalizePhone maps all of them to one canonical form.
const (
	phoneCountryCode   = "90"
	domesticPhoneLen   = 10
	withCountryLen     = 12
	mobileLeadingDigit = '5'
)

// NormalizePhone converts a freeform phone string to the canonical
// +<country><digits> form. It returns the empty string when the input does
// not contain enough digits to form a number. The function is total and
// deterministic; it never fails.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// A single leading zero is the domestic dialing prefix, not part of
	// the number.
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	switch {
	case len(digits) == domesticPhoneLen && digits[0] == mobileLeadingDigit:
		return "+" + phoneCountryCode + digits
	case len(digits) == withCountryLen && strings.HasPrefix(digits, phoneCountryCode):
		return "+" + digits
	case len(digits) >= domesticPhoneLen:
		// Best effort: assume the digits already form an international
		// number.
		return "+" + digits
	default:
		return ""
	}
}
