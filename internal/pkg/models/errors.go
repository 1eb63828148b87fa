package models

import "errors"

// Domain errors shared by the services. Wrap them with fmt.Errorf("...: %w", err)
// and check with errors.Is at the transport boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// DomainError carries a client facing message for one of the sentinel errors above
type DomainError struct {
	Kind    error
	Message string
}

// NewDomainError creates a DomainError of the given kind
func NewDomainError(kind error, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}
