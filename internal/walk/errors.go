package walk

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates an engine was built (or a walk requested) with
// an inconsistent move set or weight distribution.
var ErrConfiguration = errors.New("walk: invalid configuration")

// ConfigurationError wraps ErrConfiguration with the offending field.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration.Error(), e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
