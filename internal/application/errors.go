package application

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the Kind of every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a platform or file spec that cannot be built.
// Index is the position of the offending file spec, or -1 for platform-level
// problems.
type ConfigurationError struct {
	Platform    string
	Destination string
	Index       int
	Reason      string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	msg := ErrConfiguration.Error()
	if e.Platform != "" {
		msg += fmt.Sprintf(" in platform %q", e.Platform)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" for file #%d %q", e.Index, e.Destination)
	}
	return msg + ": " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// StrategyError wraps an error returned by a template or format function.
type StrategyError struct {
	Destination string
	Kind        string
	Err         error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("failed to generate %s (%s): %v", e.Destination, e.Kind, e.Err)
}

func (e *StrategyError) Unwrap() error { return e.Err }

// WriteError wraps an error returned by the writer.
type WriteError struct {
	Destination string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Destination, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func platformError(platform, reason string) error {
	return &ConfigurationError{Platform: platform, Index: -1, Reason: reason}
}

func fileError(platform string, index int, destination, reason string) error {
	return &ConfigurationError{Platform: platform, Destination: destination, Index: index, Reason: reason}
}
