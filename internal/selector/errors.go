package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationNotFound means a label in the specifier is not in the generation table.
	ErrGenerationNotFound = errors.New("generation not found")
	// ErrInvalidRange means a range specifier ends before it starts.
	ErrInvalidRange = errors.New("generation range ends before it starts")
)

// GenerationError reports a specifier that could not be resolved. It carries
// the raw specifier as the user typed it.
type GenerationError struct {
	Specifier string
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Invalid generation '%s'", e.Specifier)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
