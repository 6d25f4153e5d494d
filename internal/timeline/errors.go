package timeline

import (
	"errors"
	"fmt"
)

// Build-time configuration errors. Construction fails fast, before any
// tick runs; none of these can surface mid-animation.
var (
	// ErrNonPositiveDuration indicates an effective duration <= 0, which
	// leaves progress undefined.
	ErrNonPositiveDuration = errors.New("timeline: duration must be positive")

	// ErrNegativeDelay indicates an effective delay < 0.
	ErrNegativeDelay = errors.New("timeline: delay must not be negative")

	// ErrDuplicateProperty indicates two properties targeting the same
	// output key within one timeline.
	ErrDuplicateProperty = errors.New("timeline: duplicate property name")

	// ErrUnnamedProperty indicates a property without an output key.
	ErrUnnamedProperty = errors.New("timeline: property name must not be empty")
)

// ConfigError wraps a build failure with the offending property name.
type ConfigError struct {
	Property string
	Wrapped  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("property %q: %v", e.Property, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
