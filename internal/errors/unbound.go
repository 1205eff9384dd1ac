package errors

import "fmt"

// UnboundPlaceholderError reports a {name} token in a template's pattern that
// has no matching variable declaration. It identifies both the offending
// placeholder and the template it appeared in, since catalog templates carry
// no other stable identity than their bias type and test type.
//
// Catalog data is expected to be internally consistent, so callers treat this
// as fatal to the whole extraction run rather than skipping the template.
type UnboundPlaceholderError struct {
	Placeholder string
	BiasType    string
	TestType    string
}

// Error implements the error interface
func (e *UnboundPlaceholderError) Error() string {
	return fmt.Sprintf("unbound placeholder {%s} in template %s/%s",
		e.Placeholder, e.BiasType, e.TestType)
}

// NewUnboundPlaceholderError creates an UnboundPlaceholderError for the given
// placeholder and template identity.
func NewUnboundPlaceholderError(placeholder, biasType, testType string) *UnboundPlaceholderError {
	return &UnboundPlaceholderError{
		Placeholder: placeholder,
		BiasType:    biasType,
		TestType:    testType,
	}
}

// AsAppError converts the unbound placeholder error into the standardized
// AppError representation used by the interface layer.
func (e *UnboundPlaceholderError) AsAppError() *AppError {
	return Wrap(e, ErrCodeUnboundPlaceholder, e.Error())
}
