package normalize

import "strings"

// Phone canonicalizes a phone number by stripping leading zeros, so that
// "0921000223" and "921000223" identify the same participant. No other
// cleanup is performed: spacing, dashes and country codes are kept as-is,
// which is a known limitation of the matching rule.
func Phone(s string) string {
	return strings.TrimLeft(s, "0")
}
