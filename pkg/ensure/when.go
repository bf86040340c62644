package ensure

import (
	"errors"
	"fmt"
	"time"
)

// WhenNull returns a NullArgument error if value is null, otherwise nil.
func WhenNull(value any, param string) error {
	if IsNull(value) {
		return NullArgument(param)
	}
	return nil
}

// WhenNullOrEmpty checks for null first, then for the empty string.
func WhenNullOrEmpty[S Text](value S, param string) error {
	if err := WhenNull(value, param); err != nil {
		return err
	}
	if IsNullOrEmpty(value) {
		return OutOfRange(param, nil, "Value was out of range. Must not be empty.").
			withTranslation("validation.not_empty", nil)
	}
	return nil
}

// WhenNullOrWhitespace checks for null, then empty, then white space only,
// so the most specific cause is reported.
func WhenNullOrWhitespace[S Text](value S, param string) error {
	if err := WhenNullOrEmpty(value, param); err != nil {
		return err
	}
	if IsNullOrWhitespace(value) {
		return OutOfRange(param, nil, "Value was out of range. Must not be whitespace.").
			withTranslation("validation.not_whitespace", nil)
	}
	return nil
}

// WhenLengthIsIncorrect returns an OutOfRange error carrying the value when
// its length falls outside [min, max]. Null counts as length 0.
func WhenLengthIsIncorrect[S Text](value S, min, max int, param string) error {
	ok, err := HasCorrectLength(value, min, max)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	var actual any
	if s, null := textValue(value); !null {
		actual = s
	}
	msg := fmt.Sprintf("Value was out of range. The length must be between %d and %d.", min, max)
	if min == 0 {
		msg = fmt.Sprintf("Value was out of range. The length must be at most %d.", max)
	}
	return OutOfRange(param, actual, msg).
		withTranslation("validation.length_between", map[string]any{
			"min": min,
			"max": max,
		})
}

// WhenDoesNotMatchPattern returns an OutOfRange error carrying the value when
// it does not match pattern. A null value yields NullArgument.
func WhenDoesNotMatchPattern[S Text](value S, pattern, param string) error {
	if err := WhenNull(value, param); err != nil {
		return err
	}
	ok, err := MatchesPattern(value, pattern)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	s, _ := textValue(value)
	return OutOfRange(param, s, fmt.Sprintf("Value was out of range. Must match the pattern %s.", pattern)).
		withTranslation("validation.regex_pattern", map[string]any{
			"pattern": pattern,
		})
}

// WhenOutOfRange returns an OutOfRange error when value is before min.
func WhenOutOfRange(value, min time.Time, param string) error {
	if IsInRange(value, min) {
		return nil
	}
	bound := min.UTC().Format(time.RFC3339)
	return OutOfRange(param, value, fmt.Sprintf("Value was out of range. Must be at or after %s.", bound)).
		withTranslation("validation.date_min", map[string]any{
			"min": bound,
		})
}

// Any reports whether at least one of errs is non-nil.
func Any(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			return true
		}
	}
	return false
}

// First returns the first non-nil error in errs.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Throw panics with err if it is non-nil.
func Throw(err error) {
	if err != nil {
		panic(err)
	}
}

// MustNotBeNull panics with a NullArgument error if value is null, otherwise returns it.
func MustNotBeNull[T any](value T, param string) T {
	Throw(WhenNull(value, param))
	return value
}

func MustNotBeNullOrEmpty[S Text](value S, param string) S {
	Throw(WhenNullOrEmpty(value, param))
	return value
}

func MustNotBeNullOrWhitespace[S Text](value S, param string) S {
	Throw(WhenNullOrWhitespace(value, param))
	return value
}

func MustHaveLength[S Text](value S, min, max int, param string) S {
	Throw(WhenLengthIsIncorrect(value, min, max, param))
	return value
}

func MustMatchPattern[S Text](value S, pattern, param string) S {
	Throw(WhenDoesNotMatchPattern(value, pattern, param))
	return value
}

func MustBeInRange(value, min time.Time, param string) time.Time {
	Throw(WhenOutOfRange(value, min, param))
	return value
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
