package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSupported is returned when a provider lacks an optional capability.
var ErrNotSupported = errors.New("operation not supported by provider")

// NotFoundError is returned when the provider does not know a symbol.
type NotFoundError struct {
	Symbol string
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("symbol %q not found: %s", e.Symbol, e.Detail)
	}
	return fmt.Sprintf("symbol %q not found", e.Symbol)
}

// UpstreamError covers network failures, timeouts, non-success statuses and
// malformed responses.
type UpstreamError struct {
	Provider string
	Op       string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider %q %s: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidParamError is returned before any request when an enumerated
// parameter has an unknown value.
type InvalidParamError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *InvalidParamError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Param, e.Value)
	}
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// ErrProviderNotFound is returned when a requested provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %q not found", e.Name)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUpstream reports whether err carries an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
