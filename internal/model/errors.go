package model

import "fmt"

// InvalidInputError reports a caller-supplied value that fails validation.
// These surface directly to the caller and are never retried.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// InvalidInput builds an InvalidInputError for a named input.
func InvalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports configuration that is malformed or internally
// inconsistent. Fatal at load time: the process must refuse to serve with an
// invalid configuration rather than degrade silently.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %q: %s", e.Field, e.Reason)
}

// ConfigErrorf builds a ConfigError for a named config field.
func ConfigErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
