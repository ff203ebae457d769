// Package iban validates, parses and builds International Bank Account
// Numbers against the country layouts registered in package bban.
package iban

import (
	"strings"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
)

// IBAN is a validated account identifier in canonical form (no separators).
// Values are immutable and comparable; the zero value is not a valid IBAN.
type IBAN struct {
	value string
}

// Parse validates a canonical string and wraps it.
func Parse(s string) (IBAN, error) {
	if err := Validate(s); err != nil {
		return IBAN{}, err
	}
	return IBAN{value: s}, nil
}

// ParseFormatted validates s in the given format. With FormatDefault, s must
// be exactly the grouped display form of a valid IBAN.
func ParseFormatted(s string, format Format) (IBAN, error) {
	if format != FormatDefault {
		return Parse(s)
	}
	if _, err := Check(s, FormatDefault, Raise); err != nil {
		return IBAN{}, err
	}
	return IBAN{value: strings.ReplaceAll(s, " ", "")}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) IBAN {
	i, err := Parse(s)
	if err != nil {
		panic("iban: MustParse(" + s + "): " + err.Error())
	}
	return i
}

// String returns the canonical form.
func (i IBAN) String() string { return i.value }

// Formatted returns the display form, e.g. "AT61 1904 3002 3457 3201".
func (i IBAN) Formatted() string { return formatDefault(i.value) }

// IsZero reports whether i is the zero value.
func (i IBAN) IsZero() bool { return i.value == "" }

func (i IBAN) CountryCode() country.Code { return country.Code(CountryCode(i.value)) }
func (i IBAN) CheckDigit() string        { return CheckDigit(i.value) }
func (i IBAN) Bban() string              { return Bban(i.value) }

// Country returns the metadata of the IBAN's country.
func (i IBAN) Country() (country.Country, bool) {
	return country.ByCode(CountryCode(i.value))
}

func (i IBAN) BankCode() (string, bool)             { return extract(i.value, bban.BankCode) }
func (i IBAN) BranchCode() (string, bool)           { return extract(i.value, bban.BranchCode) }
func (i IBAN) AccountNumber() (string, bool)        { return extract(i.value, bban.AccountNumber) }
func (i IBAN) NationalCheckDigit() (string, bool)   { return extract(i.value, bban.NationalCheckDigit) }
func (i IBAN) AccountType() (string, bool)          { return extract(i.value, bban.AccountType) }
func (i IBAN) OwnerAccountType() (string, bool)     { return extract(i.value, bban.OwnerAccountType) }
func (i IBAN) IdentificationNumber() (string, bool) { return extract(i.value, bban.IdentificationNumber) }

// Fields returns every BBAN field keyed by role name, in no particular order.
func (i IBAN) Fields() map[string]string {
	structure, ok := bban.Default().Lookup(i.CountryCode())
	if !ok {
		return nil
	}
	out := make(map[string]string, len(structure.Entries()))
	for _, seg := range structure.Split(i.Bban()) {
		out[seg.Entry.Type().String()] = seg.Value
	}
	return out
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input containing spaces
// must be in the default display form.
func (i *IBAN) UnmarshalText(text []byte) error {
	s := string(text)
	format := FormatNone
	if strings.Contains(s, " ") {
		format = FormatDefault
	}
	parsed, err := ParseFormatted(s, format)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
