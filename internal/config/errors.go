package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoad is matched by errors raised while reading a present but unusable file.
	ErrLoad = errors.New("configuration file could not be loaded")
	// ErrMissing is matched when a setting has no value in any source.
	ErrMissing = errors.New("configuration value missing")
	// ErrType is matched when a value cannot be coerced to the setting's type.
	ErrType = errors.New("configuration value has wrong type")
	// ErrValidation is matched when a value is outside its accepted set.
	ErrValidation = errors.New("configuration value not accepted")
	// ErrSafety is matched when a value selects a trading mode that is refused outright.
	ErrSafety = errors.New("configuration value refused for safety")
)

// LoadError reports a configuration file that exists but cannot be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// MissingError names a setting that no source provides.
type MissingError struct {
	Setting string
	Env     string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("setting %s is required: set %s or add it to [%s]", e.Setting, e.Env, UserSection)
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// TypeError reports a value that could not be coerced.
type TypeError struct {
	Setting string
	Value   string
	Kind    Kind
	Err     error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("setting %s: %q is not a valid %s", e.Setting, e.Value, e.Kind)
}

func (e *TypeError) Unwrap() error { return e.Err }

func (e *TypeError) Is(target error) bool { return target == ErrType }

// ValidationError reports an enumerated value outside its accepted set.
type ValidationError struct {
	Setting  string
	Value    string
	Accepted []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s expected, got %q for %s", strings.Join(e.Accepted, " or "), e.Value, e.Setting)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// SafetyError reports a setting value that is valid but refused.
type SafetyError struct {
	Setting string
	Value   string
	Reason  string
}

func (e *SafetyError) Error() string {
	return fmt.Sprintf("%s=%s refused: %s", e.Setting, e.Value, e.Reason)
}

func (e *SafetyError) Is(target error) bool { return target == ErrSafety }

// ErrorKind returns a short label for the error class, or "unknown" for errors
// that did not originate in resolution.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrSafety):
		return "safety"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrType):
		return "type"
	case errors.Is(err, ErrMissing):
		return "missing"
	case errors.Is(err, ErrLoad):
		return "load"
	default:
		return "unknown"
	}
}
