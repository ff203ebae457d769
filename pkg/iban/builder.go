package iban

import (
	"strings"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
)

// requiredCodes maps each role to the violation reported when a builder
// lacks a value the country's structure needs.
var requiredCodes = map[bban.EntryType]dErrors.Code{
	bban.BankCode:             dErrors.CodeBankCodeRequired,
	bban.BranchCode:           dErrors.CodeBranchCodeRequired,
	bban.AccountNumber:        dErrors.CodeAccountNumberRequired,
	bban.NationalCheckDigit:   dErrors.CodeNationalCheckDigitRequired,
	bban.AccountType:          dErrors.CodeAccountTypeRequired,
	bban.OwnerAccountType:     dErrors.CodeOwnerAccountTypeRequired,
	bban.IdentificationNumber: dErrors.CodeIdentificationNumberRequired,
}

// Builder assembles an IBAN from its components and computes the check digit.
// A Builder has a single owner and is not safe for concurrent use.
type Builder struct {
	countryCode country.Code
	fields      map[bban.EntryType]string
	src         bban.RandomSource
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{fields: make(map[bban.EntryType]string)}
}

func (b *Builder) CountryCode(code country.Code) *Builder {
	b.countryCode = code
	return b
}

func (b *Builder) BankCode(v string) *Builder           { return b.Field(bban.BankCode, v) }
func (b *Builder) BranchCode(v string) *Builder         { return b.Field(bban.BranchCode, v) }
func (b *Builder) AccountNumber(v string) *Builder      { return b.Field(bban.AccountNumber, v) }
func (b *Builder) NationalCheckDigit(v string) *Builder { return b.Field(bban.NationalCheckDigit, v) }
func (b *Builder) AccountType(v string) *Builder        { return b.Field(bban.AccountType, v) }
func (b *Builder) OwnerAccountType(v string) *Builder   { return b.Field(bban.OwnerAccountType, v) }

func (b *Builder) IdentificationNumber(v string) *Builder {
	return b.Field(bban.IdentificationNumber, v)
}

// Field sets the value for role t. Setting a role the country's structure
// does not use is allowed; the value is ignored on build.
func (b *Builder) Field(t bban.EntryType, v string) *Builder {
	b.fields[t] = v
	return b
}

// Random sets the source BuildRandom draws from.
func (b *Builder) Random(src bban.RandomSource) *Builder {
	b.src = src
	return b
}

// Build assembles and validates the IBAN.
func (b *Builder) Build() (IBAN, error) {
	return b.BuildWith(true)
}

// BuildWith assembles the IBAN and, when validate is true, runs the result
// through the full validation pipeline. Errors are always returned.
func (b *Builder) BuildWith(validate bool) (IBAN, error) {
	if b.countryCode == "" {
		return IBAN{}, dErrors.New(dErrors.CodeCountryCodeRequired, "country code is required")
	}
	structure, ok := bban.Default().Lookup(b.countryCode)
	if !ok {
		return IBAN{}, unsupported(b.countryCode)
	}

	var sb strings.Builder
	sb.Grow(bbanIndex + structure.Length())
	sb.WriteString(string(b.countryCode))
	sb.WriteString(placeholderCheckDigit)
	for _, e := range structure.Entries() {
		v, set := b.fields[e.Type()]
		if !set {
			return IBAN{}, &dErrors.Error{
				Code:    requiredCodes[e.Type()],
				Field:   e.Type().String(),
				Message: e.Type().String() + " is required for country " + string(b.countryCode),
			}
		}
		sb.WriteString(v)
	}

	assembled := sb.String()
	checkDigit, err := CalculateCheckDigit(assembled)
	if err != nil {
		return IBAN{}, err
	}
	value := replaceCheckDigit(assembled, checkDigit)
	if validate {
		if err := Validate(value); err != nil {
			return IBAN{}, err
		}
	}
	return IBAN{value: value}, nil
}

// BuildRandom fills every role the structure needs and the builder lacks
// with random characters, then builds. Values already set are kept. When no
// country is set one is picked uniformly from the supported countries. The
// chosen country and generated values stay on the builder.
func (b *Builder) BuildRandom() (IBAN, error) {
	if b.src == nil {
		b.src = bban.NewSource()
	}
	if b.countryCode == "" {
		codes := bban.Default().SupportedCountries()
		b.countryCode = codes[b.src.IntN(len(codes))]
	}
	structure, ok := bban.Default().Lookup(b.countryCode)
	if !ok {
		return IBAN{}, unsupported(b.countryCode)
	}
	for _, e := range structure.Entries() {
		if _, set := b.fields[e.Type()]; !set {
			b.fields[e.Type()] = e.Random(b.src)
		}
	}
	return b.Build()
}

func unsupported(code country.Code) error {
	return dErrors.Violation(dErrors.CodeUnsupportedCountry, string(code), "",
		"country code is not supported: "+string(code))
}
