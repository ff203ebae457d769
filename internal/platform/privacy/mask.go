// Package privacy masks account identifiers before they reach logs.
package privacy

import "strings"

const (
	visiblePrefix = 4
	visibleSuffix = 4
	maskRune      = '*'
)

// MaskIdentifier keeps the country code and check digit (first four
// characters) and the last four characters of an identifier and masks the
// rest, e.g. "DE89370400440532013000" -> "DE89**************3000".
//
// Identifiers too short to keep both ends are masked entirely. Returns
// "empty" for an empty string.
func MaskIdentifier(s string) string {
	if s == "" {
		return "empty"
	}
	runes := []rune(s)
	if len(runes) <= visiblePrefix+visibleSuffix {
		return strings.Repeat(string(maskRune), len(runes))
	}
	for i := visiblePrefix; i < len(runes)-visibleSuffix; i++ {
		if runes[i] != ' ' {
			runes[i] = maskRune
		}
	}
	return string(runes)
}
