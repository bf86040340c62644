package ensure

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ValidationErrors is an ordered collection of argument errors.
type ValidationErrors []*Error

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Param, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, e := range ve {
		errs[i] = e
	}
	return errs
}

// Get returns the messages recorded for param in insertion order.
func (ve ValidationErrors) Get(param string) []string {
	var messages []string
	for _, e := range ve {
		if e.Param == param {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns the distinct parameter names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var params []string
	for _, e := range ve {
		if !slices.Contains(params, e.Param) {
			params = append(params, e.Param)
		}
	}
	return params
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Collect gathers every non-nil result of independent checks into
// ValidationErrors without stopping at the first failure. It returns nil
// when all results are nil. Errors that are not *Error are wrapped as
// InvalidArgument; nested ValidationErrors are flattened.
//
//	err := ensure.Collect(
//	    ensure.WhenNullOrWhitespace(name, "name"),
//	    ensure.WhenLengthIsIncorrect(name, 1, 64, "name"),
//	    ensure.WhenOutOfRange(startsAt, now, "startsAt"),
//	)
func Collect(errs ...error) error {
	var out ValidationErrors

	for _, err := range errs {
		if err == nil {
			continue
		}

		var nested ValidationErrors
		if errors.As(err, &nested) {
			out = append(out, nested...)
			continue
		}

		if e, ok := AsError(err); ok {
			out = append(out, e)
			continue
		}

		out = append(out, InvalidArgument("", nil, err.Error()).WithCause(err))
	}

	if out.IsEmpty() {
		return nil
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var ve ValidationErrors
	return errors.As(err, &ve)
}
