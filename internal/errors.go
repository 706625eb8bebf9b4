package internal

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecords = errors.New("no records")

	ErrFieldsRequired   = &ValidationError{Message: "All fields are required."}
	ErrPriceNotNumber   = &ValidationError{Message: "Price must be a number."}
	ErrPriceNegative    = &ValidationError{Message: "Price must not be negative."}
	ErrPriceTooLarge    = &ValidationError{Message: "Price is too large."}
	ErrInvalidBody      = &ValidationError{Message: "Invalid request body."}
	ErrGraphQLResponse  = errors.New("graphql response carried errors")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// ValidationError is a caller mistake. It is reported as 400 and nothing
// downstream is called.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError wraps any failure of an external provider call: network,
// auth, rejection or timeout.
type UpstreamError struct {
	Provider string
	Err      error
}

func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type SignatureVerificationError struct {
	Err error
}

func (e *SignatureVerificationError) Error() string {
	return e.Err.Error()
}

func (e *SignatureVerificationError) Unwrap() error {
	return e.Err
}
