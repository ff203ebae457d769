// Package service implements the identifier operations exposed over HTTP:
// IBAN validation (single and batch), parsing, building, random synthesis,
// check digit calculation, country layouts and BIC validation.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"ibankit/internal/identifier/models"
	idmetrics "ibankit/internal/identifier/metrics"
	"ibankit/internal/platform/privacy"
	"ibankit/internal/platform/tracer"
	"ibankit/pkg/bban"
	"ibankit/pkg/bic"
	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
	"ibankit/pkg/iban"
)

const (
	defaultMaxBatch     = 500
	defaultBatchWorkers = 8

	kindIBAN = "iban"
	kindBIC  = "bic"
)

// Service is stateless apart from its configuration and is safe for
// concurrent use.
type Service struct {
	logger        *slog.Logger
	metrics       *idmetrics.Metrics
	tracer        tracer.Tracer
	defaultPolicy iban.Policy
	maxBatch      int
	batchWorkers  int
}

func New(opts ...Option) *Service {
	cfg := &serviceConfig{
		defaultPolicy: iban.Raise,
		maxBatch:      defaultMaxBatch,
		batchWorkers:  defaultBatchWorkers,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.NewNoop()
	}
	return &Service{
		logger:        cfg.logger,
		metrics:       cfg.metrics,
		tracer:        cfg.tracer,
		defaultPolicy: cfg.defaultPolicy,
		maxBatch:      cfg.maxBatch,
		batchWorkers:  cfg.batchWorkers,
	}
}

// ValidateIBAN checks one IBAN. Under Raise a failed gate is returned as the
// error; under Suppress the result reports Valid=false with no detail.
func (s *Service) ValidateIBAN(ctx context.Context, cmd *ValidateCommand) (res *models.ValidationResult, err error) {
	defer s.observe("validate_iban", time.Now())
	policy := s.policy(cmd.Policy)
	_, span := s.tracer.Start(ctx, tracer.SpanValidateIBAN,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(cmd.IBAN)),
		tracer.String(tracer.AttrFormat, cmd.Format.String()),
		tracer.String(tracer.AttrPolicy, policy.String()),
	)
	defer func() { span.End(spanError(err)) }()

	_, checkErr := iban.Check(cmd.IBAN, cmd.Format, iban.Raise)
	s.record(span, kindIBAN, checkErr)
	return s.apply(ctx, cmd.IBAN, policy, checkErr)
}

// ValidateIBANBatch checks every IBAN concurrently and returns one result per
// input, in input order.
func (s *Service) ValidateIBANBatch(ctx context.Context, cmd *BatchCommand) (res *models.BatchResult, err error) {
	defer s.observe("validate_iban_batch", time.Now())
	if len(cmd.IBANs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "ibans is required")
	}
	if len(cmd.IBANs) > s.maxBatch {
		return nil, dErrors.Newf(dErrors.CodeValidation, "batch must contain at most %d identifiers", s.maxBatch)
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanValidateIBANBatch,
		tracer.Int(tracer.AttrBatchSize, len(cmd.IBANs)),
		tracer.String(tracer.AttrFormat, cmd.Format.String()),
	)
	defer func() { span.End(err) }()

	results := make([]models.ValidationResult, len(cmd.IBANs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)
	for i, raw := range cmd.IBANs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, checkErr := iban.Check(raw, cmd.Format, iban.Raise)
			results[i] = models.ValidationResult{
				Input:     raw,
				Valid:     checkErr == nil,
				Violation: models.ViolationFrom(checkErr),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "batch validation interrupted")
	}

	out := &models.BatchResult{Results: results}
	for _, r := range results {
		var violation error
		if r.Violation != nil {
			out.Invalid++
			violation = dErrors.New(r.Violation.Code, r.Violation.Message)
		}
		s.count(kindIBAN, violation)
	}
	if s.metrics != nil {
		s.metrics.ObserveBatchSize(len(results))
	}
	span.SetAttributes(tracer.Int(tracer.AttrBatchInvalid, out.Invalid))
	s.logger.DebugContext(ctx, "iban batch validated", "size", len(results), "invalid", out.Invalid)
	return out, nil
}

// ParseIBAN validates an IBAN in the given format and returns it with its
// country metadata.
func (s *Service) ParseIBAN(ctx context.Context, cmd *ParseCommand) (res *models.ParsedIBAN, err error) {
	defer s.observe("parse_iban", time.Now())
	_, span := s.tracer.Start(ctx, tracer.SpanParseIBAN,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(cmd.IBAN)),
		tracer.String(tracer.AttrFormat, cmd.Format.String()),
	)
	defer func() { span.End(spanError(err)) }()

	parsed, err := iban.ParseFormatted(cmd.IBAN, cmd.Format)
	s.record(span, kindIBAN, err)
	if err != nil {
		return nil, err
	}
	c, _ := parsed.Country()
	return &models.ParsedIBAN{IBAN: parsed, Country: c}, nil
}

// BuildIBAN assembles an IBAN from components and computes its check digit.
func (s *Service) BuildIBAN(ctx context.Context, cmd *BuildCommand) (res iban.IBAN, err error) {
	defer s.observe("build_iban", time.Now())
	_, span := s.tracer.Start(ctx, tracer.SpanBuildIBAN,
		tracer.String(tracer.AttrCountryCode, string(cmd.CountryCode)),
	)
	defer func() { span.End(spanError(err)) }()

	b := iban.NewBuilder().CountryCode(cmd.CountryCode)
	setFields(b, cmd.Fields)
	res, err = b.BuildWith(!cmd.SkipValidation)
	if err != nil {
		span.SetAttributes(tracer.String(tracer.AttrViolation, string(dErrors.CodeOf(err))))
		return iban.IBAN{}, err
	}
	s.generated(res)
	return res, nil
}

// RandomIBAN synthesizes a valid IBAN, keeping any components supplied.
func (s *Service) RandomIBAN(ctx context.Context, cmd *RandomCommand) (res iban.IBAN, err error) {
	defer s.observe("random_iban", time.Now())
	_, span := s.tracer.Start(ctx, tracer.SpanRandomIBAN,
		tracer.String(tracer.AttrCountryCode, string(cmd.CountryCode)),
		tracer.Bool(tracer.AttrSeeded, cmd.Seed != nil),
	)
	defer func() { span.End(spanError(err)) }()

	b := iban.NewBuilder()
	if cmd.Seed != nil {
		b.Random(iban.NewSeededSource(*cmd.Seed))
	}
	if cmd.CountryCode != "" {
		b.CountryCode(cmd.CountryCode)
	}
	setFields(b, cmd.Fields)
	res, err = b.BuildRandom()
	if err != nil {
		span.SetAttributes(tracer.String(tracer.AttrViolation, string(dErrors.CodeOf(err))))
		return iban.IBAN{}, err
	}
	s.generated(res)
	return res, nil
}

// CheckDigit computes the check digit for value, ignoring the two digits
// currently in the check digit position.
func (s *Service) CheckDigit(ctx context.Context, value string) (cd string, err error) {
	defer s.observe("check_digit", time.Now())
	_, span := s.tracer.Start(ctx, tracer.SpanCheckDigit,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(value)),
	)
	defer func() { span.End(spanError(err)) }()

	return iban.CalculateCheckDigit(value)
}

// Countries lists the layout of every supported country, ordered by code.
func (s *Service) Countries(_ context.Context) []models.CountryLayout {
	registry := bban.Default()
	codes := registry.SupportedCountries()
	out := make([]models.CountryLayout, 0, len(codes))
	for _, code := range codes {
		if layout, ok := layoutOf(registry, code); ok {
			out = append(out, layout)
		}
	}
	return out
}

// Country returns the layout of one supported country.
func (s *Service) Country(_ context.Context, code country.Code) (*models.CountryLayout, error) {
	layout, ok := layoutOf(bban.Default(), code)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no IBAN layout for country %q", string(code))
	}
	return &layout, nil
}

// ValidateBIC checks one BIC under the requested policy.
func (s *Service) ValidateBIC(ctx context.Context, cmd *ValidateBICCommand) (res *models.ValidationResult, err error) {
	defer s.observe("validate_bic", time.Now())
	policy := s.policy(cmd.Policy)
	_, span := s.tracer.Start(ctx, tracer.SpanValidateBIC,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(cmd.BIC)),
		tracer.String(tracer.AttrPolicy, policy.String()),
	)
	defer func() { span.End(spanError(err)) }()

	checkErr := bic.Validate(cmd.BIC)
	s.record(span, kindBIC, checkErr)
	return s.apply(ctx, cmd.BIC, policy, checkErr)
}

// ParseBIC validates a BIC and returns it with its country metadata.
func (s *Service) ParseBIC(ctx context.Context, value string) (res *models.ParsedBIC, err error) {
	defer s.observe("parse_bic", time.Now())
	_, span := s.tracer.Start(ctx, tracer.SpanParseBIC,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(value)),
	)
	defer func() { span.End(spanError(err)) }()

	parsed, err := bic.Parse(value)
	s.record(span, kindBIC, err)
	if err != nil {
		return nil, err
	}
	c, _ := country.ByCode(string(parsed.CountryCode()))
	return &models.ParsedBIC{BIC: parsed, Country: c}, nil
}

func (s *Service) policy(p *iban.Policy) iban.Policy {
	if p == nil {
		return s.defaultPolicy
	}
	return *p
}

func (s *Service) apply(ctx context.Context, input string, policy iban.Policy, checkErr error) (*models.ValidationResult, error) {
	if checkErr == nil {
		return &models.ValidationResult{Input: input, Valid: true}, nil
	}
	s.logger.DebugContext(ctx, "identifier rejected",
		"identifier", privacy.MaskIdentifier(input),
		"code", string(dErrors.CodeOf(checkErr)),
		"policy", policy.String(),
	)
	if policy == iban.Raise {
		return nil, checkErr
	}
	return &models.ValidationResult{Input: input, Valid: false}, nil
}

func (s *Service) record(span tracer.Span, kind string, checkErr error) {
	span.SetAttributes(tracer.Bool(tracer.AttrValid, checkErr == nil))
	if checkErr != nil {
		span.SetAttributes(tracer.String(tracer.AttrViolation, string(dErrors.CodeOf(checkErr))))
	}
	s.count(kind, checkErr)
}

func (s *Service) count(kind string, checkErr error) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementValidation(kind, checkErr == nil)
	if checkErr != nil {
		s.metrics.IncrementViolation(string(dErrors.CodeOf(checkErr)))
	}
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start)
	}
}

func (s *Service) generated(i iban.IBAN) {
	if s.metrics != nil {
		s.metrics.IncrementGenerated(string(i.CountryCode()))
	}
}

func setFields(b *iban.Builder, fields map[bban.EntryType]string) {
	for t, v := range fields {
		b.Field(t, v)
	}
}

func layoutOf(registry *bban.Registry, code country.Code) (models.CountryLayout, bool) {
	structure, ok := registry.Lookup(code)
	if !ok {
		return models.CountryLayout{}, false
	}
	c, _ := country.ByCode(string(code))
	length, _ := iban.Length(code)
	return models.CountryLayout{Country: c, Length: length, Structure: structure}, true
}

// spanError hides rejected identifiers from span status: a violation is a
// successful answer, not a failed operation.
func spanError(err error) error {
	if err != nil && dErrors.IsViolation(dErrors.CodeOf(err)) {
		return nil
	}
	return err
}
