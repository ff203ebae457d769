package handler

import (
	"strings"

	"ibankit/internal/identifier/service"
	"ibankit/pkg/bban"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
	"ibankit/pkg/iban"
	"ibankit/pkg/validation"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// Identifier values are never trimmed or case-folded here: whitespace and
// case are part of what validation judges.

type ValidateIBANRequest struct {
	IBAN   *string `json:"iban"`
	Format string  `json:"format" validate:"omitempty,oneof=none default"`
	Policy string  `json:"policy" validate:"omitempty,oneof=raise suppress"`
}

func (r *ValidateIBANRequest) Normalize() {
	if r == nil {
		return
	}
	r.Format = normalizeOption(r.Format)
	r.Policy = normalizeOption(r.Policy)
}

func (r *ValidateIBANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.IBAN == nil {
		return dErrors.New(dErrors.CodeNotNull, "iban must not be null")
	}
	if err := validation.CheckStringLength("iban", *r.IBAN, validation.MaxIdentifierLength); err != nil {
		return err
	}
	return validation.Validate(r)
}

func (r *ValidateIBANRequest) ToCommand() *service.ValidateCommand {
	return &service.ValidateCommand{
		IBAN:   *r.IBAN,
		Format: format(r.Format),
		Policy: policy(r.Policy),
	}
}

type ValidateBatchRequest struct {
	IBANs  []string `json:"ibans" validate:"required,min=1"`
	Format string   `json:"format" validate:"omitempty,oneof=none default"`
}

func (r *ValidateBatchRequest) Normalize() {
	if r == nil {
		return
	}
	r.Format = normalizeOption(r.Format)
}

func (r *ValidateBatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validation.CheckEachStringLength("ibans", r.IBANs, validation.MaxIdentifierLength)
}

func (r *ValidateBatchRequest) ToCommand() *service.BatchCommand {
	return &service.BatchCommand{IBANs: r.IBANs, Format: format(r.Format)}
}

type ParseIBANRequest struct {
	IBAN   *string `json:"iban"`
	Format string  `json:"format" validate:"omitempty,oneof=none default"`
}

func (r *ParseIBANRequest) Normalize() {
	if r == nil {
		return
	}
	r.Format = normalizeOption(r.Format)
}

func (r *ParseIBANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.IBAN == nil {
		return dErrors.New(dErrors.CodeNotNull, "iban must not be null")
	}
	if err := validation.CheckStringLength("iban", *r.IBAN, validation.MaxIdentifierLength); err != nil {
		return err
	}
	return validation.Validate(r)
}

func (r *ParseIBANRequest) ToCommand() *service.ParseCommand {
	return &service.ParseCommand{IBAN: *r.IBAN, Format: format(r.Format)}
}

// Components are the optional IBAN parts accepted by build and random.
// A present but empty value counts as set.
type Components struct {
	BankCode             *string `json:"bank_code" validate:"omitempty,max=34"`
	BranchCode           *string `json:"branch_code" validate:"omitempty,max=34"`
	AccountNumber        *string `json:"account_number" validate:"omitempty,max=34"`
	NationalCheckDigit   *string `json:"national_check_digit" validate:"omitempty,max=34"`
	AccountType          *string `json:"account_type" validate:"omitempty,max=34"`
	OwnerAccountType     *string `json:"owner_account_type" validate:"omitempty,max=34"`
	IdentificationNumber *string `json:"identification_number" validate:"omitempty,max=34"`
}

func (c *Components) fields() map[bban.EntryType]string {
	out := make(map[bban.EntryType]string)
	for t, v := range map[bban.EntryType]*string{
		bban.BankCode:             c.BankCode,
		bban.BranchCode:           c.BranchCode,
		bban.AccountNumber:        c.AccountNumber,
		bban.NationalCheckDigit:   c.NationalCheckDigit,
		bban.AccountType:          c.AccountType,
		bban.OwnerAccountType:     c.OwnerAccountType,
		bban.IdentificationNumber: c.IdentificationNumber,
	} {
		if v != nil {
			out[t] = *v
		}
	}
	return out
}

type BuildIBANRequest struct {
	CountryCode string `json:"country_code" validate:"omitempty,len=2,iban_country"`
	Components
	SkipValidation bool `json:"skip_validation"`
}

func (r *BuildIBANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *BuildIBANRequest) ToCommand() *service.BuildCommand {
	return &service.BuildCommand{
		CountryCode:    country.Code(r.CountryCode),
		Fields:         r.fields(),
		SkipValidation: r.SkipValidation,
	}
}

type RandomIBANRequest struct {
	CountryCode string  `json:"country_code" validate:"omitempty,len=2,iban_country"`
	Seed        *uint64 `json:"seed"`
	Components
}

func (r *RandomIBANRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *RandomIBANRequest) ToCommand() *service.RandomCommand {
	return &service.RandomCommand{
		CountryCode: country.Code(r.CountryCode),
		Fields:      r.fields(),
		Seed:        r.Seed,
	}
}

type CheckDigitRequest struct {
	IBAN *string `json:"iban"`
}

func (r *CheckDigitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.IBAN == nil {
		return dErrors.New(dErrors.CodeNotNull, "iban must not be null")
	}
	return validation.CheckStringLength("iban", *r.IBAN, validation.MaxIdentifierLength)
}

type ValidateBICRequest struct {
	BIC    *string `json:"bic"`
	Policy string  `json:"policy" validate:"omitempty,oneof=raise suppress"`
}

func (r *ValidateBICRequest) Normalize() {
	if r == nil {
		return
	}
	r.Policy = normalizeOption(r.Policy)
}

func (r *ValidateBICRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.BIC == nil {
		return dErrors.New(dErrors.CodeBicNotNull, "bic must not be null")
	}
	if err := validation.CheckStringLength("bic", *r.BIC, validation.MaxIdentifierLength); err != nil {
		return err
	}
	return validation.Validate(r)
}

func (r *ValidateBICRequest) ToCommand() *service.ValidateBICCommand {
	return &service.ValidateBICCommand{BIC: *r.BIC, Policy: policy(r.Policy)}
}

type ParseBICRequest struct {
	BIC *string `json:"bic"`
}

func (r *ParseBICRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.BIC == nil {
		return dErrors.New(dErrors.CodeBicNotNull, "bic must not be null")
	}
	return validation.CheckStringLength("bic", *r.BIC, validation.MaxIdentifierLength)
}

func normalizeOption(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// format and policy run after validation, so parse errors cannot occur.
func format(s string) iban.Format {
	f, _ := iban.ParseFormat(s)
	return f
}

func policy(s string) *iban.Policy {
	if s == "" {
		return nil
	}
	p, _ := iban.ParsePolicy(s)
	return &p
}
