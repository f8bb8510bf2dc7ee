package domain

import "fmt"

// Error types for consistent error handling across the service.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrExternalService indicates a failure in an external service call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrCatalogUnavailable indicates the catalog document could not be
// fetched or decoded, or came back without movies. The handler turns it
// into the fixed user-facing apology; Err is logged only.
type ErrCatalogUnavailable struct {
	Err error
}

func (e *ErrCatalogUnavailable) Error() string {
	return fmt.Sprintf("catalog unavailable: %v", e.Err)
}

func (e *ErrCatalogUnavailable) Unwrap() error {
	return e.Err
}

// ErrIncompleteRecord indicates a catalog record is missing a field the
// detail renderer requires. Raised instead of rendering a broken block.
type ErrIncompleteRecord struct {
	Title string
	Field string
}

func (e *ErrIncompleteRecord) Error() string {
	return fmt.Sprintf("incomplete movie record '%s': missing %s", e.Title, e.Field)
}
