package outcome

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/ensured/pkg/ensure"
)

// Void is the payload of an outcome that carries no value.
type Void struct{}

// Outcome is the success or failure of an operation, with an optional value
// and the errors recorded for it.
//
// The success flag is fixed at construction. WithError and WithMessage only
// append to the error list; they never turn a success into a failure.
// An Outcome is owned by the code path that built it and is not safe for
// concurrent mutation.
type Outcome[T any] struct {
	success bool
	value   T
	errors  []error
}

// Success returns a successful outcome without a payload.
func Success() *Outcome[Void] {
	return &Outcome[Void]{success: true}
}

// SuccessOf returns a successful outcome holding the zero value of T.
func SuccessOf[T any]() *Outcome[T] {
	return &Outcome[T]{success: true}
}

func SuccessWith[T any](value T) *Outcome[T] {
	return &Outcome[T]{success: true, value: value}
}

// Failure returns a failed outcome seeded with the given errors.
// Nil errors are skipped. It panics with an InvalidArgument error if no
// non-nil error is given.
func Failure(err error, more ...error) *Outcome[Void] {
	return FailureOf[Void](err, more...)
}

// FailureOf is Failure for an outcome with a payload type.
func FailureOf[T any](err error, more ...error) *Outcome[T] {
	o := &Outcome[T]{}
	o.WithError(err).WithError(more...)
	if len(o.errors) == 0 {
		panic(errNoFailureCause("errors"))
	}
	return o
}

func errNoFailureCause(param string) *ensure.Error {
	return ensure.InvalidArgument(param, nil, "A failed outcome requires at least one error.")
}

// FailureMessage returns a failed outcome seeded with DomainErrors built from the messages.
func FailureMessage(msg string, more ...string) *Outcome[Void] {
	return FailureMessageOf[Void](msg, more...)
}

func FailureMessageOf[T any](msg string, more ...string) *Outcome[T] {
	return FailureOf[T](NewDomainError(msg), domainErrors(more)...)
}

// Determine returns Success when err is nil and a failure holding exactly err otherwise.
func Determine(err error) *Outcome[Void] {
	return DetermineOf[Void](err)
}

// DetermineOf returns SuccessOf[T] when err is nil and FailureOf[T](err) otherwise.
func DetermineOf[T any](err error) *Outcome[T] {
	if err == nil {
		return SuccessOf[T]()
	}
	return FailureOf[T](err)
}

func (o *Outcome[T]) IsSuccess() bool {
	return o.success
}

func (o *Outcome[T]) IsFailure() bool {
	return !o.success
}

// Errors returns a copy of the recorded errors in insertion order.
func (o *Outcome[T]) Errors() []error {
	if len(o.errors) == 0 {
		return nil
	}
	out := make([]error, len(o.errors))
	copy(out, o.errors)
	return out
}

// FirstError returns the first recorded error, or nil.
func (o *Outcome[T]) FirstError() error {
	if len(o.errors) == 0 {
		return nil
	}
	return o.errors[0]
}

// Err joins all recorded errors. It is nil when none were recorded,
// including for a successful outcome.
func (o *Outcome[T]) Err() error {
	return errors.Join(o.errors...)
}

// WithError appends the non-nil errors and returns o for chaining.
func (o *Outcome[T]) WithError(errs ...error) *Outcome[T] {
	for _, err := range errs {
		if err != nil {
			o.errors = append(o.errors, err)
		}
	}
	return o
}

// WithMessage appends each message as a DomainError and returns o for chaining.
func (o *Outcome[T]) WithMessage(msgs ...string) *Outcome[T] {
	return o.WithError(domainErrors(msgs)...)
}

// UnwrapOrDefault returns the value of a successful outcome and the zero
// value of T for a failed one. Check IsSuccess before trusting the result.
func (o *Outcome[T]) UnwrapOrDefault() T {
	if !o.success {
		var zero T
		return zero
	}
	return o.value
}

func (o *Outcome[T]) UnwrapOr(fallback T) T {
	if !o.success {
		return fallback
	}
	return o.value
}

// Unwrap returns the value of a successful outcome, or the zero value and
// the first recorded error of a failed one.
func (o *Outcome[T]) Unwrap() (T, error) {
	if !o.success {
		var zero T
		return zero, o.failureCause()
	}
	return o.value, nil
}

// failureCause is the first recorded error of a failed outcome. A failure
// with no errors, such as the zero Outcome, yields InvalidArgument so it is
// never mistaken for a success.
func (o *Outcome[T]) failureCause() error {
	if err := o.FirstError(); err != nil {
		return err
	}
	return errNoFailureCause("outcome")
}

// LogValue implements slog.LogValuer. A nil outcome logs as an empty group.
func (o *Outcome[T]) LogValue() slog.Value {
	if o == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{slog.Bool("success", o.success)}
	if len(o.errors) > 0 {
		errs := make([]string, 0, len(o.errors))
		for _, err := range o.errors {
			errs = append(errs, err.Error())
		}
		attrs = append(attrs, slog.Any("errors", errs))
	}
	return slog.GroupValue(attrs...)
}

// Append adds the value of a successful outcome to dst. For a failed outcome
// it returns dst unchanged together with the first recorded error.
func Append[T any](dst []T, o *Outcome[T]) ([]T, error) {
	if o == nil {
		return dst, ensure.NullArgument("outcome")
	}
	if !o.success {
		return dst, o.failureCause()
	}
	return append(dst, o.value), nil
}
