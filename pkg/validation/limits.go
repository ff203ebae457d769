package validation

import (
	"fmt"

	dErrors "ibankit/pkg/domain-errors"
)

// MaxIdentifierLength bounds a single IBAN or BIC in a request. The longest
// IBAN is 34 characters (42 in display form); anything far beyond that is
// rejected before it reaches the validation gates.
const MaxIdentifierLength = 64

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates that each string in a slice does not exceed
// the maximum length. The error names the first offending index.
func CheckEachStringLength(fieldName string, values []string, max int) error {
	for i, v := range values {
		if len(v) > max {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s[%d] exceeds max length of %d", fieldName, i, max))
		}
	}
	return nil
}
