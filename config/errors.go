package config

import "fmt"

// ConfigurationError reports a settings source that could not be turned into
// a valid Settings value. Key is empty when the failure is not tied to a
// single variable, such as an unreadable env file.
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s=%q: %v", e.Key, e.Value, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
