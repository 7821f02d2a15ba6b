package projection

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroRate is returned when an effective monthly rate is exactly zero and
	// the annuity-due formula would divide by zero.
	ErrZeroRate = errors.New("effective monthly rate is zero")

	// ErrNonFinite is returned when a projection overflows float64.
	ErrNonFinite = errors.New("projection is not a finite number")

	// ErrInvalidInput is wrapped by every input validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError reports a calculation that is undefined for otherwise valid input.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func domainError(op string, err error) error {
	return &DomainError{Op: op, Err: err}
}
