package ensure

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind classifies an argument error.
type Kind uint8

const (
	// KindNullArgument means a required value was absent.
	KindNullArgument Kind = iota + 1
	// KindOutOfRange means a value was present but violated a length, pattern or bound.
	KindOutOfRange
	// KindInvalidArgument means the check itself was called with unusable parameters.
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNullArgument:
		return "null_argument"
	case KindOutOfRange:
		return "out_of_range"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by errors.Is against any *Error of the same kind.
var (
	// ErrNullArgument is matched by errors produced for absent values.
	ErrNullArgument = errors.New("argument is null")

	// ErrOutOfRange is matched by errors produced for values outside an allowed range.
	ErrOutOfRange = errors.New("argument is out of range")

	// ErrInvalidArgument is matched by errors produced for unusable check parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPattern is joined with the regexp compile error of a malformed pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Error describes a single argument violation.
// Message is human-readable; TranslationKey and TranslationValues let callers
// render a localized variant of the same message.
type Error struct {
	Kind              Kind
	Param             string
	Value             any
	HasValue          bool
	Message           string
	TranslationKey    string
	TranslationValues map[string]any

	cause error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Param != "" {
		msg = fmt.Sprintf("%s (Parameter '%s')", msg, e.Param)
	}
	if e.HasValue {
		msg = fmt.Sprintf("%s Actual value was %v.", msg, e.Value)
	}
	return msg
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNullArgument:
		return target == ErrNullArgument
	case KindOutOfRange:
		return target == ErrOutOfRange
	case KindInvalidArgument:
		return target == ErrInvalidArgument
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.cause
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.String("param", e.Param),
		slog.String("message", e.Message),
	}
	if e.HasValue {
		attrs = append(attrs, slog.Any("value", e.Value))
	}
	return slog.GroupValue(attrs...)
}

// NullArgument builds the error reported when param is required but absent.
func NullArgument(param string) *Error {
	return &Error{
		Kind:           KindNullArgument,
		Param:          param,
		Message:        "Value cannot be null.",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": param,
		},
	}
}

// OutOfRange builds an out-of-range error. A nil value is not recorded.
func OutOfRange(param string, value any, message string) *Error {
	if message == "" {
		message = "Specified argument was out of the range of valid values."
	}
	return &Error{
		Kind:           KindOutOfRange,
		Param:          param,
		Value:          value,
		HasValue:       value != nil,
		Message:        message,
		TranslationKey: "validation.out_of_range",
		TranslationValues: map[string]any{
			"field": param,
		},
	}
}

// InvalidArgument builds the error reported when a check receives unusable parameters.
func InvalidArgument(param string, value any, message string) *Error {
	return &Error{
		Kind:           KindInvalidArgument,
		Param:          param,
		Value:          value,
		HasValue:       value != nil,
		Message:        message,
		TranslationKey: "validation.invalid_argument",
		TranslationValues: map[string]any{
			"field": param,
		},
	}
}

// WithCause records err as the underlying cause, reachable through
// errors.Is and errors.As, and returns e.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// withTranslation replaces the translation metadata, always keeping "field".
func (e *Error) withTranslation(key string, values map[string]any) *Error {
	e.TranslationKey = key
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = e.Param
	e.TranslationValues = values
	return e
}
