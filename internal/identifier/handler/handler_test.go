package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ibankit/internal/identifier/handler/mocks"
	"ibankit/internal/identifier/models"
	"ibankit/internal/identifier/service"
	"ibankit/pkg/bban"
	"ibankit/pkg/bic"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
	"ibankit/pkg/iban"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
	logs        *bytes.Buffer
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, nil))
	h := New(s.mockService, logger)

	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HandlerSuite) TestValidateIBAN() {
	s.Run("valid", func() {
		s.mockService.EXPECT().ValidateIBAN(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *service.ValidateCommand) (*models.ValidationResult, error) {
				s.Equal("AT61 1904 3002 3457 3201", cmd.IBAN)
				s.Equal(iban.FormatDefault, cmd.Format)
				s.Nil(cmd.Policy)
				return &models.ValidationResult{Input: cmd.IBAN, Valid: true}, nil
			})

		rec := s.do(http.MethodPost, "/v1/iban/validate", `{"iban":"AT61 1904 3002 3457 3201","format":"DEFAULT"}`)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"valid":true}`, rec.Body.String())
	})

	s.Run("violation maps to 422 with detail", func() {
		s.mockService.EXPECT().ValidateIBAN(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.Violation(dErrors.CodeInvalidCheckDigit, "62", "61", "invalid check digit"))

		rec := s.do(http.MethodPost, "/v1/iban/validate", `{"iban":"AT621904300234573201"}`)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("invalid_check_digit", body["error"])
		s.Equal("62", body["actual"])
		s.Equal("61", body["expected"])
		s.Contains(s.logs.String(), `"level":"WARN"`)
	})

	s.Run("suppress policy is forwarded", func() {
		s.mockService.EXPECT().ValidateIBAN(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *service.ValidateCommand) (*models.ValidationResult, error) {
				s.Require().NotNil(cmd.Policy)
				s.Equal(iban.Suppress, *cmd.Policy)
				return &models.ValidationResult{Input: cmd.IBAN}, nil
			})

		rec := s.do(http.MethodPost, "/v1/iban/validate", `{"iban":"XX","policy":"suppress"}`)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"valid":false}`, rec.Body.String())
	})

	s.Run("missing iban is a null violation", func() {
		rec := s.do(http.MethodPost, "/v1/iban/validate", `{}`)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("iban_not_null", body["error"])
	})

	s.Run("unknown format is rejected", func() {
		rec := s.do(http.MethodPost, "/v1/iban/validate", `{"iban":"DE89370400440532013000","format":"spaced"}`)

		s.Equal(http.StatusBadRequest, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("validation_error", body["error"])
		s.Contains(body["error_description"], "format must be one of")
	})

	s.Run("invalid JSON", func() {
		rec := s.do(http.MethodPost, "/v1/iban/validate", `not json`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestValidateBatch() {
	s.Run("per item results", func() {
		s.mockService.EXPECT().ValidateIBANBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *service.BatchCommand) (*models.BatchResult, error) {
				s.Len(cmd.IBANs, 2)
				return &models.BatchResult{
					Invalid: 1,
					Results: []models.ValidationResult{
						{Input: cmd.IBANs[0], Valid: true},
						{Input: cmd.IBANs[1], Violation: &models.Violation{Code: dErrors.CodeBbanLength, Actual: "15", Expected: "16"}},
					},
				}, nil
			})

		rec := s.do(http.MethodPost, "/v1/iban/validate/batch", `{"ibans":["AT611904300234573201","AT61190430023457320"]}`)

		s.Equal(http.StatusOK, rec.Code)
		var body BatchResponse
		s.decode(rec, &body)
		s.Equal(2, body.Total)
		s.Equal(1, body.Invalid)
		s.True(body.Results[0].Valid)
		s.Equal(1, body.Results[1].Index)
		s.Require().NotNil(body.Results[1].Violation)
		s.Equal("bban_length", body.Results[1].Violation.Code)
	})

	s.Run("empty batch", func() {
		rec := s.do(http.MethodPost, "/v1/iban/validate/batch", `{"ibans":[]}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("oversized item", func() {
		rec := s.do(http.MethodPost, "/v1/iban/validate/batch", `{"ibans":["`+strings.Repeat("A", 65)+`"]}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("service limit", func() {
		s.mockService.EXPECT().ValidateIBANBatch(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "batch must contain at most 500 identifiers"))

		rec := s.do(http.MethodPost, "/v1/iban/validate/batch", `{"ibans":["x"]}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestParseIBAN() {
	s.mockService.EXPECT().ParseIBAN(gomock.Any(), gomock.Any()).
		Return(&models.ParsedIBAN{
			IBAN:    iban.MustParse("AT611904300234573201"),
			Country: country.Country{Alpha2: "AT", Alpha3: "AUT", Name: "Austria"},
		}, nil)

	rec := s.do(http.MethodPost, "/v1/iban/parse", `{"iban":"AT611904300234573201"}`)

	s.Equal(http.StatusOK, rec.Code)
	var body ParsedIBANResponse
	s.decode(rec, &body)
	s.Equal("AT61 1904 3002 3457 3201", body.Formatted)
	s.Equal("AT", body.CountryCode)
	s.Equal("61", body.CheckDigit)
	s.Equal("Austria", body.CountryName)
	s.Equal("19043", body.Fields["bank_code"])
	s.Equal("00234573201", body.Fields["account_number"])
}

func (s *HandlerSuite) TestBuildIBAN() {
	s.Run("components become fields", func() {
		s.mockService.EXPECT().BuildIBAN(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *service.BuildCommand) (iban.IBAN, error) {
				s.Equal(country.Code("DE"), cmd.CountryCode)
				s.Equal(map[bban.EntryType]string{
					bban.BankCode:      "37040044",
					bban.AccountNumber: "0532013000",
					bban.BranchCode:    "",
				}, cmd.Fields)
				return iban.MustParse("DE89370400440532013000"), nil
			})

		rec := s.do(http.MethodPost, "/v1/iban/build",
			`{"country_code":"DE","bank_code":"37040044","account_number":"0532013000","branch_code":""}`)

		s.Equal(http.StatusCreated, rec.Code)
		var body IBANResponse
		s.decode(rec, &body)
		s.Equal("DE89370400440532013000", body.IBAN)
	})

	s.Run("missing component", func() {
		s.mockService.EXPECT().BuildIBAN(gomock.Any(), gomock.Any()).
			Return(iban.IBAN{}, &dErrors.Error{Code: dErrors.CodeBankCodeRequired, Field: "bank_code", Message: "bank_code is required"})

		rec := s.do(http.MethodPost, "/v1/iban/build", `{"country_code":"DE"}`)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("bank_code_required", body["error"])
		s.Equal("bank_code", body["field"])
	})

	s.Run("oversized component", func() {
		rec := s.do(http.MethodPost, "/v1/iban/build",
			`{"country_code":"DE","bank_code":"`+strings.Repeat("1", 35)+`"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestRandomIBAN() {
	s.mockService.EXPECT().RandomIBAN(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *service.RandomCommand) (iban.IBAN, error) {
			s.Require().NotNil(cmd.Seed)
			s.Equal(uint64(7), *cmd.Seed)
			s.Equal(country.Code(""), cmd.CountryCode)
			s.Empty(cmd.Fields)
			return iban.Random(iban.NewSeededSource(*cmd.Seed))
		})

	rec := s.do(http.MethodPost, "/v1/iban/random", `{"seed":7}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body IBANResponse
	s.decode(rec, &body)
	s.True(iban.IsValid(body.IBAN))
}

func (s *HandlerSuite) TestCheckDigit() {
	s.mockService.EXPECT().CheckDigit(gomock.Any(), "AT001904300234573201").Return("61", nil)

	rec := s.do(http.MethodPost, "/v1/iban/check-digit", `{"iban":"AT001904300234573201"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"check_digit":"61"}`, rec.Body.String())
}

func (s *HandlerSuite) TestCountries() {
	structure, ok := bban.Default().Lookup("AT")
	s.Require().True(ok)
	austria := models.CountryLayout{
		Country:   country.Country{Alpha2: "AT", Alpha3: "AUT", Name: "Austria"},
		Length:    20,
		Structure: structure,
	}

	s.Run("list", func() {
		s.mockService.EXPECT().Countries(gomock.Any()).Return([]models.CountryLayout{austria})

		rec := s.do(http.MethodGet, "/v1/iban/countries", "")

		s.Equal(http.StatusOK, rec.Code)
		var body CountriesResponse
		s.decode(rec, &body)
		s.Require().Len(body.Countries, 1)
		s.Equal(20, body.Countries[0].IBANLength)
		s.Equal(16, body.Countries[0].BbanLength)
		s.Equal("bank_code", body.Countries[0].Entries[0].Role)
		s.Equal("n", body.Countries[0].Entries[0].CharType)
	})

	s.Run("lower case code", func() {
		s.mockService.EXPECT().Country(gomock.Any(), country.Code("AT")).Return(&austria, nil)

		rec := s.do(http.MethodGet, "/v1/iban/countries/at", "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unsupported country", func() {
		s.mockService.EXPECT().Country(gomock.Any(), country.Code("US")).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "no IBAN layout"))

		rec := s.do(http.MethodGet, "/v1/iban/countries/US", "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed code", func() {
		for _, code := range []string{"USA", "D1", "1!"} {
			rec := s.do(http.MethodGet, "/v1/iban/countries/"+code, "")
			s.Equal(http.StatusBadRequest, rec.Code, code)
		}
	})
}

func (s *HandlerSuite) TestBIC() {
	s.Run("validate", func() {
		s.mockService.EXPECT().ValidateBIC(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *service.ValidateBICCommand) (*models.ValidationResult, error) {
				s.Equal("DEUTDEFF", cmd.BIC)
				return &models.ValidationResult{Input: cmd.BIC, Valid: true}, nil
			})

		rec := s.do(http.MethodPost, "/v1/bic/validate", `{"bic":"DEUTDEFF"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("null bic", func() {
		rec := s.do(http.MethodPost, "/v1/bic/validate", `{"bic":null}`)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body map[string]string
		s.decode(rec, &body)
		s.Equal("bic_not_null", body["error"])
	})

	s.Run("parse", func() {
		s.mockService.EXPECT().ParseBIC(gomock.Any(), "DEUTDEFF500").
			Return(&models.ParsedBIC{
				BIC:     bic.MustParse("DEUTDEFF500"),
				Country: country.Country{Alpha2: "DE", Alpha3: "DEU", Name: "Germany"},
			}, nil)

		rec := s.do(http.MethodPost, "/v1/bic/parse", `{"bic":"DEUTDEFF500"}`)

		s.Equal(http.StatusOK, rec.Code)
		var body BICResponse
		s.decode(rec, &body)
		s.Equal("DEUT", body.BankCode)
		s.Equal("500", body.BranchCode)
		s.Equal("Germany", body.CountryName)
		s.False(body.PrimaryOffice)
	})
}

func (s *HandlerSuite) TestInternalErrorIsLoggedAndHidden() {
	s.mockService.EXPECT().ParseBIC(gomock.Any(), gomock.Any()).Return(nil, errors.New("country table corrupted"))

	rec := s.do(http.MethodPost, "/v1/bic/parse", `{"bic":"DEUTDEFF"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "corrupted")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
}
