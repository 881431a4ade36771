package classify

import (
	"errors"
	"fmt"
)

var ErrUnsupportedType = errors.New("unsupported type")

// UnsupportedTypeError is returned when a value resolves to a category
// outside of Categories().
type UnsupportedTypeError struct {
	Category Category
	Value    any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unable to describe a type called %q (%T)", e.Category, e.Value)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
