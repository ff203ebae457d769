package handler

import (
	"ibankit/internal/identifier/models"
	"ibankit/pkg/bban"
	"ibankit/pkg/iban"
)

// HTTP Response DTOs.

type ViolationResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
	Field    string `json:"field,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Expected string `json:"expected,omitempty"`
}

type ValidationResponse struct {
	Valid     bool               `json:"valid"`
	Violation *ViolationResponse `json:"violation,omitempty"`
}

type BatchItemResponse struct {
	Index int    `json:"index"`
	Input string `json:"input"`
	ValidationResponse
}

type BatchResponse struct {
	Total   int                 `json:"total"`
	Invalid int                 `json:"invalid"`
	Results []BatchItemResponse `json:"results"`
}

type IBANResponse struct {
	IBAN        string            `json:"iban"`
	Formatted   string            `json:"formatted"`
	CountryCode string            `json:"country_code"`
	CheckDigit  string            `json:"check_digit"`
	Bban        string            `json:"bban"`
	Fields      map[string]string `json:"fields"`
}

type ParsedIBANResponse struct {
	IBANResponse
	CountryName string `json:"country_name"`
}

type CheckDigitResponse struct {
	CheckDigit string `json:"check_digit"`
}

type EntryResponse struct {
	Role     string `json:"role"`
	Length   int    `json:"length"`
	CharType string `json:"char_type"`
}

type CountryResponse struct {
	CountryCode string          `json:"country_code"`
	Alpha3      string          `json:"alpha3"`
	Name        string          `json:"name"`
	IBANLength  int             `json:"iban_length"`
	BbanLength  int             `json:"bban_length"`
	Structure   string          `json:"structure"`
	Entries     []EntryResponse `json:"entries"`
}

type CountriesResponse struct {
	Countries []CountryResponse `json:"countries"`
}

type BICResponse struct {
	BIC           string `json:"bic"`
	BankCode      string `json:"bank_code"`
	CountryCode   string `json:"country_code"`
	CountryName   string `json:"country_name"`
	LocationCode  string `json:"location_code"`
	BranchCode    string `json:"branch_code,omitempty"`
	PrimaryOffice bool   `json:"primary_office"`
	TestBIC       bool   `json:"test_bic"`
}

func toValidationResponse(r *models.ValidationResult) ValidationResponse {
	return ValidationResponse{Valid: r.Valid, Violation: toViolationResponse(r.Violation)}
}

func toViolationResponse(v *models.Violation) *ViolationResponse {
	if v == nil {
		return nil
	}
	return &ViolationResponse{
		Code:     string(v.Code),
		Message:  v.Message,
		Field:    v.Field,
		Actual:   v.Actual,
		Expected: v.Expected,
	}
}

func toBatchResponse(r *models.BatchResult) *BatchResponse {
	out := &BatchResponse{
		Total:   len(r.Results),
		Invalid: r.Invalid,
		Results: make([]BatchItemResponse, len(r.Results)),
	}
	for i := range r.Results {
		out.Results[i] = BatchItemResponse{
			Index:              i,
			Input:              r.Results[i].Input,
			ValidationResponse: toValidationResponse(&r.Results[i]),
		}
	}
	return out
}

func toIBANResponse(i iban.IBAN) IBANResponse {
	return IBANResponse{
		IBAN:        i.String(),
		Formatted:   i.Formatted(),
		CountryCode: string(i.CountryCode()),
		CheckDigit:  i.CheckDigit(),
		Bban:        i.Bban(),
		Fields:      i.Fields(),
	}
}

func toParsedIBANResponse(p *models.ParsedIBAN) *ParsedIBANResponse {
	return &ParsedIBANResponse{
		IBANResponse: toIBANResponse(p.IBAN),
		CountryName:  p.Country.Name,
	}
}

func toCountryResponse(l *models.CountryLayout) CountryResponse {
	entries := l.Structure.Entries()
	out := CountryResponse{
		CountryCode: l.Country.Alpha2,
		Alpha3:      l.Country.Alpha3,
		Name:        l.Country.Name,
		IBANLength:  l.Length,
		BbanLength:  l.Structure.Length(),
		Structure:   l.Structure.String(),
		Entries:     make([]EntryResponse, len(entries)),
	}
	for i, e := range entries {
		out.Entries[i] = toEntryResponse(e)
	}
	return out
}

func toEntryResponse(e bban.Entry) EntryResponse {
	return EntryResponse{Role: e.Type().String(), Length: e.Length(), CharType: e.CharType().String()}
}

func toBICResponse(p *models.ParsedBIC) *BICResponse {
	branch, _ := p.BIC.BranchCode()
	return &BICResponse{
		BIC:           p.BIC.String(),
		BankCode:      p.BIC.BankCode(),
		CountryCode:   string(p.BIC.CountryCode()),
		CountryName:   p.Country.Name,
		LocationCode:  p.BIC.LocationCode(),
		BranchCode:    branch,
		PrimaryOffice: p.BIC.IsPrimaryOffice(),
		TestBIC:       p.BIC.IsTestBIC(),
	}
}
