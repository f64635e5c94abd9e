package material

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingProperty indicates a law was used without a required property
	ErrMissingProperty = errors.New("material: missing property")

	// ErrMissingInput indicates a per-call input required by a law was not given
	ErrMissingInput = errors.New("material: missing input")

	// ErrUnknownModel indicates a model name absent from the registry
	ErrUnknownModel = errors.New("material: unknown model")
)

// PropertyError names the law and the property it could not find
type PropertyError struct {
	Model    string
	Property string
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("material: model %q requires property %q", e.Model, e.Property)
}

func (e *PropertyError) Unwrap() error {
	return ErrMissingProperty
}

// InputError names the law and the per-call input it was not given
type InputError struct {
	Model string
	Input string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("material: model %q requires input %q", e.Model, e.Input)
}

func (e *InputError) Unwrap() error {
	return ErrMissingInput
}
