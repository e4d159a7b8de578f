package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every configuration error
// New returns, so callers can check with errors.Is(err, cache.ErrInvalidConfig)
// without caring about the specific reason.
var ErrInvalidConfig = errors.New("cache: invalid config")

// InvalidConfig describes why Options failed validation.
type InvalidConfig struct {
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("cache: invalid config: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) succeed for any InvalidConfig.
func (e *InvalidConfig) Unwrap() error { return ErrInvalidConfig }

func invalidConfig(reason string) error {
	return &InvalidConfig{Reason: reason}
}

// LoaderError wraps an error returned by Options.Loader, identifying the
// key that failed to load.
type LoaderError struct {
	Key any
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("cache: loader failed for key %v: %v", e.Key, e.Err)
}

// Unwrap exposes the underlying loader error to errors.Is/errors.As.
func (e *LoaderError) Unwrap() error { return e.Err }
