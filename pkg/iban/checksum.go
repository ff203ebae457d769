package iban

import (
	"fmt"
	"unicode/utf8"

	dErrors "ibankit/pkg/domain-errors"
)

const (
	countryCodeLength = 2
	checkDigitIndex   = countryCodeLength
	checkDigitLength  = 2
	bbanIndex         = checkDigitIndex + checkDigitLength

	// placeholderCheckDigit stands in for the check digit while computing it.
	placeholderCheckDigit = "00"

	modulus   = 97
	foldAbove = 999_999_999
)

// CalculateCheckDigit returns the two-digit check digit that makes s satisfy
// the modulo-97 rule. The check digit currently in s is ignored. It always
// reports failures, independent of any reporting policy.
func CalculateCheckDigit(s string) (string, error) {
	if len(s) < countryCodeLength {
		return "", dErrors.Violation(dErrors.CodeCountryCodeTwoLetters, s, "",
			"IBAN must contain 2 char country code")
	}
	if len(s) < bbanIndex {
		return "", dErrors.Violation(dErrors.CodeCheckDigitTwoDigits, s[checkDigitIndex:], "",
			"IBAN must contain 2 digit check digit")
	}
	mod, err := mod97(replaceCheckDigit(s, placeholderCheckDigit))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", 98-mod), nil
}

// mod97 moves the leading country code and check digit behind the BBAN and
// reduces the result, read as a base-36 number, modulo 97. s must hold at
// least the country code and check digit.
func mod97(s string) (int, error) {
	rotated := s[bbanIndex:] + s[:bbanIndex]
	var total int64
	for i := 0; i < len(rotated); i++ {
		v, ok := base36(rotated[i])
		if !ok {
			ch, _ := utf8.DecodeRuneInString(rotated[i:])
			return 0, &dErrors.Error{
				Code:    dErrors.CodeUnknown,
				Actual:  s,
				Char:    ch,
				Message: fmt.Sprintf("invalid character %q at position %d", ch, i),
			}
		}
		if v > 9 {
			total = total*100 + v
		} else {
			total = total*10 + v
		}
		if total > foldAbove {
			total %= modulus
		}
	}
	return int(total % modulus), nil
}

// base36 maps 0-9 to 0-9 and letters of either case to 10-35.
func base36(ch byte) (int64, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int64(ch - '0'), true
	case ch >= 'A' && ch <= 'Z':
		return int64(ch-'A') + 10, true
	case ch >= 'a' && ch <= 'z':
		return int64(ch-'a') + 10, true
	default:
		return 0, false
	}
}

func replaceCheckDigit(s, checkDigit string) string {
	return s[:countryCodeLength] + checkDigit + s[bbanIndex:]
}
