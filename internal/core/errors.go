package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a construction parameter an engine refused.
// Engines only return errors from their constructors; everything that
// happens during play is a state transition.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) true for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// RequirePositive returns a ConfigError unless v > 0. NaN is rejected.
func RequirePositive[T int | float64](field string, v T) error {
	if !(v > 0) {
		return &ConfigError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}
