package errs

import (
    "errors"
    "fmt"
)

// Common sentinel errors for cross-layer signaling.
var (
    ErrNotFound = errors.New("not_found")
    // ErrConflict is returned when a create targets a key that already exists.
    ErrConflict = errors.New("conflict")
    // ErrInvalid covers wrong-shaped input: bad key, unknown type tag, non-integer quantity.
    ErrInvalid = errors.New("invalid")
    // ErrMissingField is used when a required field is absent from an otherwise well-formed input.
    ErrMissingField = errors.New("missing_field")
)

// FieldError carries the context of a rejected operation so the HTTP layer can
// render a precise message. Err is always one of the sentinels above.
type FieldError struct {
    Op    string
    Key   string
    Field string
    // Got holds the offending value or its type, whichever is more useful.
    Got   string
    Err   error
}

func (e *FieldError) Error() string {
    msg := e.Op + ": " + e.Err.Error()
    if e.Key != "" { msg += " key=" + e.Key }
    if e.Field != "" { msg += " field=" + e.Field }
    if e.Got != "" { msg += " got=" + e.Got }
    return msg
}

func (e *FieldError) Unwrap() error { return e.Err }

// Wrap builds a FieldError for op/key with no field context.
func Wrap(op, key string, err error) error {
    return &FieldError{Op: op, Key: key, Err: err}
}

// Field builds a FieldError naming the field and the offending value's type.
func Field(op, key, field string, got any, err error) error {
    fe := &FieldError{Op: op, Key: key, Field: field, Err: err}
    if got != nil { fe.Got = fmt.Sprintf("%T", got) }
    return fe
}

// Kind reports which sentinel err wraps, or "" for unclassified errors.
func Kind(err error) string {
    switch {
    case errors.Is(err, ErrNotFound):
        return ErrNotFound.Error()
    case errors.Is(err, ErrConflict):
        return ErrConflict.Error()
    case errors.Is(err, ErrMissingField):
        return ErrMissingField.Error()
    case errors.Is(err, ErrInvalid):
        return ErrInvalid.Error()
    default:
        return ""
    }
}
