package iban

import (
	"fmt"
	"strconv"
	"strings"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
)

// Policy selects how a failed check is reported.
type Policy int

const (
	// Raise returns the violation describing the first failed gate.
	Raise Policy = iota
	// Suppress reports only the boolean result and discards all detail.
	Suppress
)

func (p Policy) String() string {
	if p == Suppress {
		return "suppress"
	}
	return "raise"
}

// ParsePolicy accepts "raise" or "suppress" in any case. An empty string
// means Raise.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raise":
		return Raise, nil
	case "suppress":
		return Suppress, nil
	default:
		return Raise, dErrors.Newf(dErrors.CodeBadRequest, "unknown reporting policy %q", s)
	}
}

// Format selects the textual form a checked string must be in.
type Format int

const (
	// FormatNone is the canonical form: no separators.
	FormatNone Format = iota
	// FormatDefault is the display form: groups of four separated by a single space.
	FormatDefault
)

func (f Format) String() string {
	if f == FormatDefault {
		return "default"
	}
	return "none"
}

// ParseFormat accepts "none" or "default" in any case. An empty string means FormatNone.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FormatNone, nil
	case "default":
		return FormatDefault, nil
	default:
		return FormatNone, dErrors.Newf(dErrors.CodeBadRequest, "unknown IBAN format %q", s)
	}
}

// Check runs s through the validation gates and stops at the first failure.
// Under Raise a failure is returned as a *domainerrors.Error; under Suppress
// the result is (false, nil).
func Check(s string, format Format, policy Policy) (bool, error) {
	var err error
	if format == FormatDefault {
		err = validateFormatted(s)
	} else {
		err = validate(s)
	}
	if err == nil {
		return true, nil
	}
	if policy == Suppress {
		return false, nil
	}
	return false, err
}

// Validate checks a canonical string and returns the first violation.
func Validate(s string) error {
	_, err := Check(s, FormatNone, Raise)
	return err
}

// IsValid reports whether s is a valid canonical IBAN.
func IsValid(s string) bool {
	ok, _ := Check(s, FormatNone, Suppress)
	return ok
}

func validateFormatted(s string) error {
	compact := strings.ReplaceAll(s, " ", "")
	if err := validate(compact); err != nil {
		return err
	}
	if expected := formatDefault(compact); expected != s {
		return dErrors.Violation(dErrors.CodeIbanFormatting, s, expected,
			fmt.Sprintf("IBAN must be formatted in groups of 4 characters separated by a space, expected [%s] instead of [%s]", expected, s))
	}
	return nil
}

func validate(s string) error {
	if s == "" {
		return dErrors.Violation(dErrors.CodeNotEmpty, "", "", "empty string can't be a valid IBAN")
	}

	structure, err := checkCountryCode(s)
	if err != nil {
		return err
	}
	if err := checkCheckDigitPresence(s); err != nil {
		return err
	}

	account := s[bbanIndex:]
	if len(account) != structure.Length() {
		return dErrors.Violation(dErrors.CodeBbanLength,
			strconv.Itoa(len(account)), strconv.Itoa(structure.Length()),
			fmt.Sprintf("[%s] length is %d, expected BBAN length is: %d", account, len(account), structure.Length()))
	}
	for _, seg := range structure.Split(account) {
		if bad, ok := seg.Entry.Check(seg.Value); !ok {
			return entryViolation(seg, bad)
		}
	}

	mod, err := mod97(s)
	if err != nil {
		return err
	}
	if mod != 1 {
		expected, err := CalculateCheckDigit(s)
		if err != nil {
			return err
		}
		actual := s[checkDigitIndex:bbanIndex]
		return dErrors.Violation(dErrors.CodeInvalidCheckDigit, actual, expected,
			fmt.Sprintf("[%s] has invalid check digit: %s, expected check digit is: %s", s, actual, expected))
	}
	return nil
}

func checkCountryCode(s string) (*bban.Structure, error) {
	if len(s) < countryCodeLength {
		return nil, dErrors.Violation(dErrors.CodeCountryCodeTwoLetters, s, "",
			"IBAN must contain 2 char country code")
	}
	code := s[:countryCodeLength]
	if !isUpperLetter(code[0]) || !isUpperLetter(code[1]) {
		return nil, dErrors.Violation(dErrors.CodeCountryCodeUpperCase, code, "",
			"IBAN country code must contain upper case letters")
	}
	if !country.Exists(code) {
		return nil, dErrors.Violation(dErrors.CodeCountryCodeExists, code, "",
			"IBAN contains non existing country code")
	}
	structure, ok := bban.Default().Lookup(country.Code(code))
	if !ok {
		return nil, dErrors.Violation(dErrors.CodeUnsupportedCountry, code, "",
			"country code is not supported: "+code)
	}
	return structure, nil
}

func checkCheckDigitPresence(s string) error {
	if len(s) < bbanIndex {
		return dErrors.Violation(dErrors.CodeCheckDigitTwoDigits, s[checkDigitIndex:], "",
			"IBAN must contain 2 digit check digit")
	}
	checkDigit := s[checkDigitIndex:bbanIndex]
	if !isDigit(checkDigit[0]) || !isDigit(checkDigit[1]) {
		return dErrors.Violation(dErrors.CodeCheckDigitOnlyDigits, checkDigit, "",
			"IBAN's check digit should contain only digits")
	}
	return nil
}

var entryViolationCodes = map[bban.CharType]struct {
	code dErrors.Code
	must string
}{
	bban.UpperLetters: {dErrors.CodeBbanOnlyUpperCaseLetters, "only upper case letters"},
	bban.Alphanumeric: {dErrors.CodeBbanOnlyDigitsOrLetters, "only digits or letters"},
	bban.Digits:       {dErrors.CodeBbanOnlyDigits, "only digits"},
}

func entryViolation(seg bban.Segment, bad rune) error {
	v := entryViolationCodes[seg.Entry.CharType()]
	return &dErrors.Error{
		Code:    v.code,
		Actual:  seg.Value,
		Field:   seg.Entry.Type().String(),
		Char:    bad,
		Message: fmt.Sprintf("%s [%s] must contain %s, found %q", seg.Entry.Type(), seg.Value, v.must, bad),
	}
}

func isUpperLetter(ch byte) bool { return ch >= 'A' && ch <= 'Z' }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
