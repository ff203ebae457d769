package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ibankit/internal/identifier/models"
	"ibankit/internal/identifier/service"
	"ibankit/internal/platform/middleware"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
	"ibankit/pkg/iban"
	"ibankit/pkg/platform/httputil"
)

// Service defines the identifier operations the handler exposes.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	ValidateIBAN(ctx context.Context, cmd *service.ValidateCommand) (*models.ValidationResult, error)
	ValidateIBANBatch(ctx context.Context, cmd *service.BatchCommand) (*models.BatchResult, error)
	ParseIBAN(ctx context.Context, cmd *service.ParseCommand) (*models.ParsedIBAN, error)
	BuildIBAN(ctx context.Context, cmd *service.BuildCommand) (iban.IBAN, error)
	RandomIBAN(ctx context.Context, cmd *service.RandomCommand) (iban.IBAN, error)
	CheckDigit(ctx context.Context, value string) (string, error)
	Countries(ctx context.Context) []models.CountryLayout
	Country(ctx context.Context, code country.Code) (*models.CountryLayout, error)
	ValidateBIC(ctx context.Context, cmd *service.ValidateBICCommand) (*models.ValidationResult, error)
	ParseBIC(ctx context.Context, value string) (*models.ParsedBIC, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/iban/validate", h.HandleValidateIBAN)
	r.Post("/v1/iban/validate/batch", h.HandleValidateBatch)
	r.Post("/v1/iban/parse", h.HandleParseIBAN)
	r.Post("/v1/iban/build", h.HandleBuildIBAN)
	r.Post("/v1/iban/random", h.HandleRandomIBAN)
	r.Post("/v1/iban/check-digit", h.HandleCheckDigit)
	r.Get("/v1/iban/countries", h.HandleListCountries)
	r.Get("/v1/iban/countries/{code}", h.HandleGetCountry)
	r.Post("/v1/bic/validate", h.HandleValidateBIC)
	r.Post("/v1/bic/parse", h.HandleParseBIC)
}

// HandleValidateIBAN checks one IBAN. Under the raise policy a rejected IBAN
// is answered with 422 and the violation; under suppress with {"valid":false}.
func (h *Handler) HandleValidateIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.ValidateIBAN(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "validate iban failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toValidationResponse(res))
}

// HandleValidateBatch checks many IBANs; every item carries its own outcome.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.ValidateIBANBatch(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "validate iban batch failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBatchResponse(res))
}

func (h *Handler) HandleParseIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.ParseIBAN(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "parse iban failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toParsedIBANResponse(res))
}

// HandleBuildIBAN assembles an IBAN from components.
func (h *Handler) HandleBuildIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BuildIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.BuildIBAN(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "build iban failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toIBANResponse(res))
}

// HandleRandomIBAN synthesizes an IBAN; a seed makes the answer reproducible.
func (h *Handler) HandleRandomIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RandomIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.RandomIBAN(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "random iban failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toIBANResponse(res))
}

func (h *Handler) HandleCheckDigit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CheckDigitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cd, err := h.service.CheckDigit(ctx, *req.IBAN)
	if err != nil {
		h.fail(ctx, w, "check digit failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CheckDigitResponse{CheckDigit: cd})
}

func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	layouts := h.service.Countries(r.Context())
	out := CountriesResponse{Countries: make([]CountryResponse, len(layouts))}
	for i := range layouts {
		out.Countries[i] = toCountryResponse(&layouts[i])
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleGetCountry returns one country's layout. Codes are matched case-insensitively.
func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if len(code) != 2 || !isLetters(code) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "country code must be two letters"))
		return
	}

	layout, err := h.service.Country(ctx, country.Code(code))
	if err != nil {
		h.fail(ctx, w, "get country failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCountryResponse(layout))
}

func (h *Handler) HandleValidateBIC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateBICRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.ValidateBIC(ctx, req.ToCommand())
	if err != nil {
		h.fail(ctx, w, "validate bic failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toValidationResponse(res))
}

func (h *Handler) HandleParseBIC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseBICRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.ParseBIC(ctx, *req.BIC)
	if err != nil {
		h.fail(ctx, w, "parse bic failed", err, requestID)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBICResponse(res))
}

// fail logs at Warn for rejected input and at Error for everything else,
// then writes the mapped error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, requestID string) {
	if httputil.DomainCodeToHTTPStatus(dErrors.CodeOf(err)) < http.StatusInternalServerError {
		h.logger.WarnContext(ctx, msg, "error", err, "code", string(dErrors.CodeOf(err)), "request_id", requestID)
	} else {
		h.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestID)
	}
	httputil.WriteError(w, err)
}

func isLetters(s string) bool {
	for _, ch := range s {
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
