// Package models holds the results the identifier service returns to its
// transports. They wrap the library value types with the lookups a caller
// usually needs next (country metadata, layout, violation detail).
package models

import (
	"errors"

	"ibankit/pkg/bban"
	"ibankit/pkg/bic"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
	"ibankit/pkg/iban"
)

// Violation is the transport-neutral detail of a rejected identifier.
type Violation struct {
	Code     dErrors.Code
	Message  string
	Field    string
	Actual   string
	Expected string
}

// ViolationFrom extracts violation detail from err. Errors outside the
// domain taxonomy are reported as internal.
func ViolationFrom(err error) *Violation {
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if !errors.As(err, &de) {
		return &Violation{Code: dErrors.CodeInternal, Message: "internal error"}
	}
	return &Violation{
		Code:     de.Code,
		Message:  de.Message,
		Field:    de.Field,
		Actual:   de.Actual,
		Expected: de.Expected,
	}
}

// ValidationResult is the outcome of validating one identifier.
// Violation is set only when the caller asked for detail (batch items).
type ValidationResult struct {
	Input     string
	Valid     bool
	Violation *Violation
}

// BatchResult holds per-item outcomes in request order.
type BatchResult struct {
	Results []ValidationResult
	Invalid int
}

// ParsedIBAN is a validated IBAN plus its country metadata.
type ParsedIBAN struct {
	IBAN    iban.IBAN
	Country country.Country
}

// CountryLayout describes the IBAN scheme of one supported country.
type CountryLayout struct {
	Country   country.Country
	Length    int
	Structure *bban.Structure
}

// ParsedBIC is a validated BIC plus its country metadata.
type ParsedBIC struct {
	BIC     bic.BIC
	Country country.Country
}
