package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why an upload could not be decoded
type ErrorKind string

const (
	KindUnsupportedFormat    ErrorKind = "unsupported_format"
	KindDecodeFailure        ErrorKind = "decode_failure"
	KindEncodingExhausted    ErrorKind = "encoding_exhausted"
	KindMissingOptionalCodec ErrorKind = "missing_optional_codec"
)

// Sentinel errors for errors.Is matching
var (
	ErrUnsupportedFormat    = errors.New("unsupported file format")
	ErrDecodeFailure        = errors.New("file could not be decoded")
	ErrEncodingExhausted    = errors.New("no candidate text encoding could decode the file")
	ErrMissingOptionalCodec = errors.New("no codec available for this format")
	ErrSchema               = errors.New("required columns are missing")
)

var kindSentinels = map[ErrorKind]error{
	KindUnsupportedFormat:    ErrUnsupportedFormat,
	KindDecodeFailure:        ErrDecodeFailure,
	KindEncodingExhausted:    ErrEncodingExhausted,
	KindMissingOptionalCodec: ErrMissingOptionalCodec,
}

// DecodeError is returned when an upload cannot be turned into a table
type DecodeError struct {
	Kind   ErrorKind
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(kindSentinels[e.Kind].Error())
	if e.Format != "" {
		fmt.Fprintf(&b, " (%s)", e.Format)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for the error's kind
func (e *DecodeError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// SchemaError lists every required column absent from the table, in declaration order
type SchemaError struct {
	MissingFields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingFields, ", "))
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// KindOf returns the error kind for logging and metrics labels
func KindOf(err error) string {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return string(decodeErr.Kind)
	}
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return "schema"
	}
	return "internal"
}

func decodeFailure(format Format, cause error) *DecodeError {
	return &DecodeError{Kind: KindDecodeFailure, Format: string(format), Cause: cause}
}
