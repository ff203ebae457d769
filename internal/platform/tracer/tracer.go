// Package tracer provides a small tracing abstraction for the identifier service.
//
// The service emits spans through the Tracer interface so it never depends on
// OpenTelemetry APIs directly. Account identifiers are personal data: they are
// only attached to spans as a truncated hash (see HashIdentifier).
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err if it is non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanValidateIBAN,
	//       tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(raw)),
	//   )
	//   defer func() { span.End(err) }()
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashIdentifier returns the first 8 bytes of the SHA-256 of an account or
// bank identifier, hex encoded, so traces can be correlated without exposing
// the identifier itself.
func HashIdentifier(identifier string) string {
	if identifier == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(hash[:8])
}

// Span names used by the identifier service.
const (
	SpanValidateIBAN      = "iban.validate"
	SpanValidateIBANBatch = "iban.validate_batch"
	SpanParseIBAN         = "iban.parse"
	SpanBuildIBAN         = "iban.build"
	SpanRandomIBAN        = "iban.random"
	SpanCheckDigit        = "iban.check_digit"
	SpanValidateBIC       = "bic.validate"
	SpanParseBIC          = "bic.parse"
)

// Attribute keys used by the identifier service.
const (
	AttrIdentifierHash = "identifier.hash"
	AttrCountryCode    = "country_code"
	AttrFormat         = "format"
	AttrPolicy         = "policy"
	AttrValid          = "valid"
	AttrViolation      = "violation"
	AttrBatchSize      = "batch.size"
	AttrBatchInvalid   = "batch.invalid"
	AttrSeeded         = "seeded"
)
