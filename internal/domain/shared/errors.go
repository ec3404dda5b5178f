package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrEmptyRecipe   = NewDomainError("EMPTY_RECIPE", "Recipe has no lines")
	ErrImportParse   = NewDomainError("IMPORT_PARSE_ERROR", "Malformed import payload")
	ErrInvalidQuantity = NewDomainError("INVALID_QUANTITY", "Quantity is invalid or exceeds available stock")
)

// NewInsufficientStockError reports that aggregate availability of the named
// material cannot cover a recipe line's requirement.
func NewInsufficientStockError(material string) *DomainError {
	return NewDomainError("INSUFFICIENT_STOCK", fmt.Sprintf("Insufficient stock: %s", material))
}

// NewNotFoundError creates a NOT_FOUND error with a specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError("NOT_FOUND", message)
}
