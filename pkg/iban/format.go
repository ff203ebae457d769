package iban

import (
	"strings"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
)

const groupSize = 4

// formatDefault inserts a single space after every group of four characters.
// The result never ends in a space.
func formatDefault(s string) string {
	if len(s) <= groupSize {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/groupSize)
	for i := 0; i < len(s); i += groupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+groupSize, len(s))])
	}
	return b.String()
}

// The accessors below operate on raw strings and expect them to have passed
// validation; on shorter input they return whatever prefix is available and
// never panic.

// CountryCode returns the first two characters of s.
func CountryCode(s string) string {
	return s[:min(countryCodeLength, len(s))]
}

// CheckDigit returns the third and fourth characters of s.
func CheckDigit(s string) string {
	return s[min(checkDigitIndex, len(s)):min(bbanIndex, len(s))]
}

// CountryCodeAndCheckDigit returns the first four characters of s.
func CountryCodeAndCheckDigit(s string) string {
	return s[:min(bbanIndex, len(s))]
}

// Bban returns everything after the check digit.
func Bban(s string) string {
	return s[min(bbanIndex, len(s)):]
}

func BankCode(s string) (string, bool)   { return extract(s, bban.BankCode) }
func BranchCode(s string) (string, bool) { return extract(s, bban.BranchCode) }

func AccountNumber(s string) (string, bool)      { return extract(s, bban.AccountNumber) }
func NationalCheckDigit(s string) (string, bool) { return extract(s, bban.NationalCheckDigit) }
func AccountType(s string) (string, bool)        { return extract(s, bban.AccountType) }
func OwnerAccountType(s string) (string, bool)   { return extract(s, bban.OwnerAccountType) }

func IdentificationNumber(s string) (string, bool) {
	return extract(s, bban.IdentificationNumber)
}

// Field returns the value of role t, or false if the country of s has no
// structure or the structure has no such role.
func Field(s string, t bban.EntryType) (string, bool) {
	return extract(s, t)
}

func extract(s string, t bban.EntryType) (string, bool) {
	structure, ok := bban.Default().Lookup(country.Code(CountryCode(s)))
	if !ok {
		return "", false
	}
	return structure.Field(Bban(s), t)
}

// IsSupportedCountry reports whether code has a registered BBAN structure.
func IsSupportedCountry(code country.Code) bool {
	_, ok := bban.Default().Lookup(code)
	return ok
}

// Length returns the full IBAN length for code: country code, check digit and
// BBAN. ok is false for unsupported countries.
func Length(code country.Code) (int, bool) {
	structure, ok := bban.Default().Lookup(code)
	if !ok {
		return 0, false
	}
	return bbanIndex + structure.Length(), true
}
