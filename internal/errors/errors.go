// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ValidationError means the request payload is malformed or incomplete.
type ValidationError struct {
    Msg string
}

func (e *ValidationError) Error() string {
    return e.Msg
}

// Helper constructors
func NewValidation(format string, args ...any) error {
    return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func NewMissingField(field string) error {
    return &ValidationError{Msg: fmt.Sprintf("missing required field: %s", field)}
}

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
    Entity string
    ID     int
}

func (e *NotFoundError) Error() string {
    return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewOrderNotFound(id int) error {
    return &NotFoundError{Entity: "order", ID: id}
}

func NewProductNotFound(id int) error {
    return &NotFoundError{Entity: "product", ID: id}
}

func IsValidation(err error) bool {
    var ve *ValidationError
    return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
    var nf *NotFoundError
    return errors.As(err, &nf)
}
