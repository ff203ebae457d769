package service

import (
	"ibankit/pkg/bban"
	"ibankit/pkg/country"
	"ibankit/pkg/iban"
)

// ValidateCommand asks for one IBAN to be checked. A nil Policy means the
// service default.
type ValidateCommand struct {
	IBAN   string
	Format iban.Format
	Policy *iban.Policy
}

// BatchCommand checks many IBANs independently. Batch results always carry
// violation detail, so no policy applies.
type BatchCommand struct {
	IBANs  []string
	Format iban.Format
}

type ParseCommand struct {
	IBAN   string
	Format iban.Format
}

// BuildCommand assembles an IBAN from its components. Roles the country's
// layout does not use are ignored.
type BuildCommand struct {
	CountryCode    country.Code
	Fields         map[bban.EntryType]string
	SkipValidation bool
}

// RandomCommand synthesizes an IBAN. Empty CountryCode picks a supported
// country; Fields are kept and the remaining roles are generated. A Seed
// makes the output reproducible.
type RandomCommand struct {
	CountryCode country.Code
	Fields      map[bban.EntryType]string
	Seed        *uint64
}

type ValidateBICCommand struct {
	BIC    string
	Policy *iban.Policy
}
