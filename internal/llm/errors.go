package llm

import (
	"errors"
	"fmt"
)

// ConfigError indicates the client cannot be used because required
// configuration (credentials, provider) is absent. It is always detected
// before any network call, so callers can render a "set up credentials"
// message instead of a transient-failure one.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("erro de configuração: %s", e.Message)
}

// CallError indicates a provider call failed after the client was
// correctly configured (network error, API error, empty response).
type CallError struct {
	Message string
	Cause   error
}

func (e *CallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("erro na chamada ao provedor: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("erro na chamada ao provedor: %s", e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Cause
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
