package iban

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
)

// ValidateSuite covers the validation gates, the checksum and the IBAN value.
//
// Justification: every gate maps to a distinct violation code that callers
// and the HTTP layer branch on; the reference set pins the checksum and the
// per-country layouts together.
type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) violation(err error) *dErrors.Error {
	var de *dErrors.Error
	s.Require().ErrorAs(err, &de)
	return de
}

func (s *ValidateSuite) TestReferenceSet() {
	s.Run("covers every supported country", func() {
		seen := make(map[country.Code]bool, len(referenceIBANs))
		for _, v := range referenceIBANs {
			seen[country.Code(v[:2])] = true
		}
		for _, code := range bban.Default().SupportedCountries() {
			s.True(seen[code], "no reference IBAN for %s", code)
		}
	})

	for _, v := range referenceIBANs {
		s.Run(v, func() {
			s.Require().NoError(Validate(v))
			s.True(IsValid(v))

			parsed, err := Parse(v)
			s.Require().NoError(err)
			s.Equal(v, parsed.String())

			n, ok := Length(parsed.CountryCode())
			s.True(ok)
			s.Equal(len(v), n)

			cd, err := CalculateCheckDigit(v)
			s.Require().NoError(err)
			s.Equal(v[2:4], cd)

			again, err := ParseFormatted(parsed.Formatted(), FormatDefault)
			s.Require().NoError(err)
			s.Equal(parsed, again)
		})
	}
}

func (s *ValidateSuite) TestAustrianExample() {
	i := MustParse("AT611904300234573201")
	s.Equal(country.Code("AT"), i.CountryCode())
	s.Equal("61", i.CheckDigit())
	s.Equal("1904300234573201", i.Bban())
	s.Equal("AT61 1904 3002 3457 3201", i.Formatted())

	bank, ok := i.BankCode()
	s.True(ok)
	s.Equal("19043", bank)
	account, ok := i.AccountNumber()
	s.True(ok)
	s.Equal("00234573201", account)
	_, ok = i.BranchCode()
	s.False(ok)

	c, ok := i.Country()
	s.True(ok)
	s.Equal("AUT", c.Alpha3)
}

func (s *ValidateSuite) TestInvalidCheckDigit() {
	err := Validate("AT621904300234573201")
	de := s.violation(err)
	s.Equal(dErrors.CodeInvalidCheckDigit, de.Code)
	s.Equal("62", de.Actual)
	s.Equal("61", de.Expected)
	s.ErrorIs(err, &dErrors.Error{Code: dErrors.CodeInvalidCheckDigit})
}

func (s *ValidateSuite) TestGates() {
	tests := []struct {
		name     string
		input    string
		code     dErrors.Code
		actual   string
		expected string
	}{
		{name: "empty", input: "", code: dErrors.CodeNotEmpty},
		{name: "single char", input: "A", code: dErrors.CodeCountryCodeTwoLetters, actual: "A"},
		{name: "lower case country", input: "at611904300234573201", code: dErrors.CodeCountryCodeUpperCase, actual: "at"},
		{name: "digit in country", input: "A1611904300234573201", code: dErrors.CodeCountryCodeUpperCase, actual: "A1"},
		{name: "unknown country", input: "ZZ611904300234573201", code: dErrors.CodeCountryCodeExists, actual: "ZZ"},
		{name: "country without scheme", input: "US611904300234573201", code: dErrors.CodeUnsupportedCountry, actual: "US"},
		{name: "country only", input: "AT", code: dErrors.CodeCheckDigitTwoDigits, actual: ""},
		{name: "one check digit", input: "AT6", code: dErrors.CodeCheckDigitTwoDigits, actual: "6"},
		{name: "letter check digit", input: "AT6A1904300234573201", code: dErrors.CodeCheckDigitOnlyDigits, actual: "6A"},
		{name: "short bban", input: "AT611904300234573", code: dErrors.CodeBbanLength, actual: "13", expected: "16"},
		{name: "long bban", input: "AT6119043002345732011", code: dErrors.CodeBbanLength, actual: "17", expected: "16"},
		{name: "letter in digits", input: "DE89370400440532O13000", code: dErrors.CodeBbanOnlyDigits, actual: "0532O13000"},
		{name: "lower case in letters", input: "GB29nWBK60161331926819", code: dErrors.CodeBbanOnlyUpperCaseLetters, actual: "nWBK"},
		{name: "punctuation in alphanumeric", input: "FR1420041010050500013-02606", code: dErrors.CodeBbanOnlyDigitsOrLetters, actual: "0500013-026"},
		{name: "space is not a character", input: "AT61 1904300234573201", code: dErrors.CodeBbanLength, actual: "17", expected: "16"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ok, err := Check(tt.input, FormatNone, Raise)
			s.False(ok)
			de := s.violation(err)
			s.Equal(tt.code, de.Code, de.Message)
			s.Equal(tt.actual, de.Actual)
			s.Equal(tt.expected, de.Expected)
			s.NotEmpty(de.Message)

			ok, err = Check(tt.input, FormatNone, Suppress)
			s.False(ok)
			s.NoError(err)
			s.False(IsValid(tt.input))
		})
	}
}

func (s *ValidateSuite) TestEntryViolationNamesFieldAndCharacter() {
	de := s.violation(Validate("DE89370400440532O13000"))
	s.Equal("account_number", de.Field)
	s.Equal('O', de.Char)
	s.Contains(de.Message, "account_number")

	de = s.violation(Validate("GB29nWBK60161331926819"))
	s.Equal("bank_code", de.Field)
	s.Equal('n', de.Char)
}

func (s *ValidateSuite) TestAlphanumericFieldsAcceptLowerCase() {
	// base-36 conversion treats both cases alike, so the checksum still holds
	s.NoError(Validate("FR1420041010050500013m02606"))
}

func (s *ValidateSuite) TestFormattedInput() {
	s.Run("display form is accepted", func() {
		ok, err := Check("AT61 1904 3002 3457 3201", FormatDefault, Raise)
		s.True(ok)
		s.NoError(err)
	})

	s.Run("trailing partial group", func() {
		i, err := ParseFormatted("NO93 8601 1117 947", FormatDefault)
		s.Require().NoError(err)
		s.Equal("NO9386011117947", i.String())
		s.Equal("NO93 8601 1117 947", i.Formatted())
	})

	s.Run("wrong grouping", func() {
		de := s.violation(func() error {
			_, err := ParseFormatted("AT61 19043002 3457 3201", FormatDefault)
			return err
		}())
		s.Equal(dErrors.CodeIbanFormatting, de.Code)
		s.Equal("AT61 1904 3002 3457 3201", de.Expected)
	})

	s.Run("canonical form is not the display form", func() {
		_, err := Check("AT611904300234573201", FormatDefault, Raise)
		s.True(dErrors.HasCode(err, dErrors.CodeIbanFormatting))
	})

	s.Run("trailing space", func() {
		_, err := Check("AT61 1904 3002 3457 3201 ", FormatDefault, Raise)
		s.True(dErrors.HasCode(err, dErrors.CodeIbanFormatting))
	})

	s.Run("underlying violation wins", func() {
		_, err := Check("AT62 1904 3002 3457 3201", FormatDefault, Raise)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidCheckDigit))
	})

	s.Run("suppressed", func() {
		ok, err := Check("AT61 19043002 3457 3201", FormatDefault, Suppress)
		s.False(ok)
		s.NoError(err)
	})

	s.Run("formatting is idempotent", func() {
		once := MustParse("GB29NWBK60161331926819").Formatted()
		again, err := ParseFormatted(once, FormatDefault)
		s.Require().NoError(err)
		s.Equal(once, again.Formatted())
	})
}

func (s *ValidateSuite) TestCalculateCheckDigit() {
	s.Run("ignores the current check digit", func() {
		cd, err := CalculateCheckDigit("DE00370400440532013000")
		s.Require().NoError(err)
		s.Equal("89", cd)
	})

	s.Run("non alphanumeric input is reported", func() {
		_, err := CalculateCheckDigit("AT00!904300234573201")
		de := s.violation(err)
		s.Equal(dErrors.CodeUnknown, de.Code)
		s.Equal('!', de.Char)
	})

	s.Run("short input is reported", func() {
		_, err := CalculateCheckDigit("A")
		s.True(dErrors.HasCode(err, dErrors.CodeCountryCodeTwoLetters))
		_, err = CalculateCheckDigit("AT1")
		s.True(dErrors.HasCode(err, dErrors.CodeCheckDigitTwoDigits))
	})
}

func (s *ValidateSuite) TestRawAccessors() {
	s.Equal("DE", CountryCode("DE89370400440532013000"))
	s.Equal("89", CheckDigit("DE89370400440532013000"))
	s.Equal("DE89", CountryCodeAndCheckDigit("DE89370400440532013000"))
	s.Equal("370400440532013000", Bban("DE89370400440532013000"))

	bank, ok := BankCode("DE89370400440532013000")
	s.True(ok)
	s.Equal("37040044", bank)

	s.Run("brazilian account types", func() {
		v := "BR9700360305000010009795493P1"
		at, ok := AccountType(v)
		s.True(ok)
		s.Equal("P", at)
		oat, ok := OwnerAccountType(v)
		s.True(ok)
		s.Equal("1", oat)
		branch, ok := BranchCode(v)
		s.True(ok)
		s.Equal("00001", branch)
	})

	s.Run("italian national check digit", func() {
		ncd, ok := NationalCheckDigit("IT60X0542811101000000123456")
		s.True(ok)
		s.Equal("X", ncd)
		_, ok = IdentificationNumber("IT60X0542811101000000123456")
		s.False(ok)
	})

	s.Run("short input does not panic", func() {
		s.Equal("A", CountryCode("A"))
		s.Equal("", CheckDigit("A"))
		s.Equal("", Bban("AT6"))
		_, ok := AccountNumber("")
		s.False(ok)
		_, ok = Field("US00", bban.AccountNumber)
		s.False(ok)
	})

	s.Run("fields by role name", func() {
		fields := MustParse("FR1420041010050500013M02606").Fields()
		s.Equal(map[string]string{
			"bank_code":            "20041",
			"branch_code":          "01005",
			"account_number":       "0500013M026",
			"national_check_digit": "06",
		}, fields)
	})
}

func (s *ValidateSuite) TestCountrySupport() {
	s.True(IsSupportedCountry("DE"))
	s.False(IsSupportedCountry("US"))

	n, ok := Length("DE")
	s.True(ok)
	s.Equal(22, n)
	_, ok = Length("US")
	s.False(ok)
}

func (s *ValidateSuite) TestParseOptions() {
	s.Run("parse policies", func() {
		p, err := ParsePolicy("")
		s.NoError(err)
		s.Equal(Raise, p)
		p, err = ParsePolicy("Suppress")
		s.NoError(err)
		s.Equal(Suppress, p)
		_, err = ParsePolicy("ignore")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("parse formats", func() {
		f, err := ParseFormat("default")
		s.NoError(err)
		s.Equal(FormatDefault, f)
		f, err = ParseFormat("")
		s.NoError(err)
		s.Equal(FormatNone, f)
		_, err = ParseFormat("compact")
		s.Error(err)
	})
}

func (s *ValidateSuite) TestMustParsePanics() {
	s.Panics(func() { MustParse("AT621904300234573201") })
}

func (s *ValidateSuite) TestTextMarshaling() {
	type payload struct {
		Account IBAN `json:"account"`
	}

	s.Run("marshals the canonical form", func() {
		out, err := json.Marshal(payload{Account: MustParse("AT611904300234573201")})
		s.Require().NoError(err)
		s.JSONEq(`{"account":"AT611904300234573201"}`, string(out))
	})

	s.Run("unmarshals canonical and display forms", func() {
		var p payload
		s.Require().NoError(json.Unmarshal([]byte(`{"account":"AT61 1904 3002 3457 3201"}`), &p))
		s.Equal("AT611904300234573201", p.Account.String())

		s.Require().NoError(json.Unmarshal([]byte(`{"account":"DE89370400440532013000"}`), &p))
		s.Equal("DE89370400440532013000", p.Account.String())
	})

	s.Run("rejects invalid input", func() {
		var p payload
		err := json.Unmarshal([]byte(`{"account":"AT621904300234573201"}`), &p)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidCheckDigit))
	})

	s.Run("usable as a map key", func() {
		seen := map[IBAN]int{}
		seen[MustParse("AT611904300234573201")]++
		seen[MustParse("AT611904300234573201")]++
		s.Equal(2, seen[MustParse("AT611904300234573201")])
		s.True(IBAN{}.IsZero())
	})
}
