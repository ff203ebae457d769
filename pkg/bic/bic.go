// Package bic validates and parses Business Identifier Codes (ISO 9362).
//
// A BIC is 8 or 11 characters: a 4-letter bank code, a 2-letter country code,
// a 2-character location code and an optional 3-character branch code.
package bic

import (
	"fmt"
	"strings"

	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
)

const (
	shortLength = 8
	longLength  = 11

	bankCodeIndex      = 0
	bankCodeLength     = 4
	countryCodeIndex   = bankCodeIndex + bankCodeLength
	countryCodeLength  = 2
	locationCodeIndex  = countryCodeIndex + countryCodeLength
	locationCodeLength = 2
	branchCodeIndex    = locationCodeIndex + locationCodeLength
	branchCodeLength   = 3

	primaryOfficeBranch = "XXX"
)

// BIC is a validated bank identifier code. Values are immutable and comparable.
type BIC struct {
	value string
}

// Parse validates s and wraps it.
func Parse(s string) (BIC, error) {
	if err := Validate(s); err != nil {
		return BIC{}, err
	}
	return BIC{value: s}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) BIC {
	b, err := Parse(s)
	if err != nil {
		panic("bic: MustParse(" + s + "): " + err.Error())
	}
	return b
}

// IsValid reports whether s is a valid BIC.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// Validate runs the gates in order and returns the first violation.
func Validate(s string) error {
	if s == "" {
		return dErrors.Violation(dErrors.CodeBicNotEmpty, "", "", "empty string can't be a valid BIC")
	}
	if len(s) != shortLength && len(s) != longLength {
		return dErrors.Violation(dErrors.CodeBicLengthEightOrEleven, fmt.Sprint(len(s)), "8 or 11",
			fmt.Sprintf("BIC length must be %d or %d", shortLength, longLength))
	}
	if strings.ToUpper(s) != s {
		return dErrors.Violation(dErrors.CodeBicUpperCaseOnly, s, "", "BIC must contain only upper case letters")
	}

	bank := s[bankCodeIndex:countryCodeIndex]
	if bad, ok := firstNot(bank, isLetter); !ok {
		return segmentViolation(dErrors.CodeBankCodeLettersOnly, "bank_code", bank, bad,
			"bank code must contain only letters")
	}

	code := s[countryCodeIndex:locationCodeIndex]
	if _, ok := firstNot(code, isLetter); !ok {
		return dErrors.Violation(dErrors.CodeCountryCodeUpperCaseLettersForBic, code, "",
			"BIC country code must contain upper case letters")
	}
	if !country.Exists(code) {
		return dErrors.Violation(dErrors.CodeUnsupportedCountry, code, "",
			"country code is not supported: "+code)
	}

	location := s[locationCodeIndex:branchCodeIndex]
	if bad, ok := firstNot(location, isAlnum); !ok {
		return segmentViolation(dErrors.CodeLocationCodeAlnum, "location_code", location, bad,
			"location code must contain only letters or digits")
	}

	if len(s) == longLength {
		branch := s[branchCodeIndex:]
		if bad, ok := firstNot(branch, isAlnum); !ok {
			return segmentViolation(dErrors.CodeBranchCodeAlnum, "branch_code", branch, bad,
				"branch code must contain only letters or digits")
		}
	}
	return nil
}

func (b BIC) String() string { return b.value }

// IsZero reports whether b is the zero value.
func (b BIC) IsZero() bool { return b.value == "" }

func (b BIC) BankCode() string          { return b.value[bankCodeIndex:countryCodeIndex] }
func (b BIC) CountryCode() country.Code { return country.Code(b.value[countryCodeIndex:locationCodeIndex]) }
func (b BIC) LocationCode() string      { return b.value[locationCodeIndex:branchCodeIndex] }

// BranchCode returns the branch code of an 11-character BIC.
func (b BIC) BranchCode() (string, bool) {
	if !b.HasBranchCode() {
		return "", false
	}
	return b.value[branchCodeIndex : branchCodeIndex+branchCodeLength], true
}

func (b BIC) HasBranchCode() bool { return len(b.value) == longLength }

// IsTestBIC reports whether the location code marks a test and training
// address (second location character '0').
func (b BIC) IsTestBIC() bool {
	return b.value[locationCodeIndex+1] == '0'
}

// IsPrimaryOffice reports whether b addresses the institution's primary
// office: no branch code, or branch code "XXX".
func (b BIC) IsPrimaryOffice() bool {
	branch, ok := b.BranchCode()
	return !ok || branch == primaryOfficeBranch
}

// MarshalText implements encoding.TextMarshaler.
func (b BIC) MarshalText() ([]byte, error) {
	return []byte(b.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BIC) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func segmentViolation(code dErrors.Code, field, value string, bad rune, msg string) error {
	return &dErrors.Error{
		Code:    code,
		Actual:  value,
		Field:   field,
		Char:    bad,
		Message: fmt.Sprintf("%s, found %q", msg, bad),
	}
}

func firstNot(s string, allowed func(rune) bool) (rune, bool) {
	for _, ch := range s {
		if !allowed(ch) {
			return ch, false
		}
	}
	return 0, true
}

func isLetter(ch rune) bool { return ch >= 'A' && ch <= 'Z' }

func isAlnum(ch rune) bool { return isLetter(ch) || (ch >= '0' && ch <= '9') }
