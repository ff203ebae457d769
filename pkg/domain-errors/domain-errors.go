package domainerrors

import (
	"errors"
	"fmt"
)

// Code represents a domain error category independent of transport layer.
// Violation codes describe which validation gate rejected an identifier;
// the generic codes cover request plumbing and unexpected failures.
type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_failed"
	CodeInternal   Code = "internal_error"
	CodeConflict   Code = "conflict"

	// CodeUnknown wraps unexpected failures inside a validation gate
	// (e.g. a character the checksum cannot convert).
	CodeUnknown Code = "unknown"

	// Account identifier (IBAN) violations, in pipeline order.
	CodeNotNull                  Code = "iban_not_null"
	CodeNotEmpty                 Code = "iban_not_empty"
	CodeCountryCodeTwoLetters    Code = "country_code_two_letters"
	CodeCountryCodeUpperCase     Code = "country_code_upper_case_letters"
	CodeCountryCodeExists        Code = "country_code_exists"
	CodeUnsupportedCountry       Code = "unsupported_country"
	CodeCheckDigitTwoDigits      Code = "check_digit_two_digits"
	CodeCheckDigitOnlyDigits     Code = "check_digit_only_digits"
	CodeBbanLength               Code = "bban_length"
	CodeBbanOnlyUpperCaseLetters Code = "bban_only_upper_case_letters"
	CodeBbanOnlyDigitsOrLetters  Code = "bban_only_digits_or_letters"
	CodeBbanOnlyDigits           Code = "bban_only_digits"
	CodeInvalidCheckDigit        Code = "invalid_check_digit"
	CodeIbanFormatting           Code = "iban_formatting"

	// Builder violations: one per component the builder may require.
	CodeCountryCodeRequired          Code = "country_code_required"
	CodeBankCodeRequired             Code = "bank_code_required"
	CodeBranchCodeRequired           Code = "branch_code_required"
	CodeAccountNumberRequired        Code = "account_number_required"
	CodeNationalCheckDigitRequired   Code = "national_check_digit_required"
	CodeAccountTypeRequired          Code = "account_type_required"
	CodeOwnerAccountTypeRequired     Code = "owner_account_type_required"
	CodeIdentificationNumberRequired Code = "identification_number_required"

	// Bank identifier code (BIC) violations.
	CodeBicNotNull                        Code = "bic_not_null"
	CodeBicNotEmpty                       Code = "bic_not_empty"
	CodeBicLengthEightOrEleven            Code = "bic_length_8_or_11"
	CodeBicUpperCaseOnly                  Code = "bic_only_upper_case_letters"
	CodeBankCodeLettersOnly               Code = "bank_code_only_letters"
	CodeCountryCodeUpperCaseLettersForBic Code = "bic_country_code_only_upper_case_letters"
	CodeLocationCodeAlnum                 Code = "location_code_only_letters_or_digits"
	CodeBranchCodeAlnum                   Code = "branch_code_only_letters_or_digits"

	// CodeDuplicateStructure is returned when a country already has a BBAN structure.
	CodeDuplicateStructure Code = "duplicate_structure"
)

// Error wraps domain or infrastructure failures with a stable code.
// Validation gates also fill Actual and Expected (either may be empty),
// and per-field gates name the offending Field and Char.
type Error struct {
	Code     Code
	Message  string
	Actual   string
	Expected string
	Field    string
	Char     rune
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Newf is New with fmt.Sprintf formatting of the message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Violation creates a validation error carrying the actual and expected values.
func Violation(code Code, actual, expected, msg string) *Error {
	return &Error{Code: code, Actual: actual, Expected: expected, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		// Preserve the original domain code, update message
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the domain code of err, or CodeInternal for foreign errors.
// A nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsViolation reports whether code belongs to the identifier validation taxonomy
// rather than to request plumbing.
func IsViolation(code Code) bool {
	switch code {
	case CodeNotFound, CodeBadRequest, CodeValidation, CodeInternal, CodeConflict, CodeDuplicateStructure:
		return false
	}
	return code != ""
}
