package outcome

import "errors"

// ErrDomain is matched by every DomainError.
var ErrDomain = errors.New("domain error")

// DomainError is a free-form message recorded on an outcome.
type DomainError struct {
	Message string
}

func NewDomainError(msg string) *DomainError {
	return &DomainError{Message: msg}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErrors(msgs []string) []error {
	errs := make([]error, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, NewDomainError(m))
	}
	return errs
}
