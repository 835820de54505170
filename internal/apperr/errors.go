package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so handlers can map it to a status code
// without inspecting error strings.
type Kind int

const (
	Unauthenticated Kind = iota
	RateLimited
	InvalidRequest
	ConfigurationError
	UpstreamAuthError
	UpstreamRateLimited
	GenerationFailed
	DeploymentFailed
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case RateLimited:
		return "rate_limited"
	case InvalidRequest:
		return "invalid_request"
	case ConfigurationError:
		return "configuration_error"
	case UpstreamAuthError:
		return "upstream_auth_error"
	case UpstreamRateLimited:
		return "upstream_rate_limited"
	case GenerationFailed:
		return "generation_failed"
	case DeploymentFailed:
		return "deployment_failed"
	}
	return "unknown"
}

// Error carries a kind plus a caller-safe message. The wrapped cause is for
// server-side logs only and never reaches a response body.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an Error with a caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause that stays server-side.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the Kind from err, defaulting to GenerationFailed for
// unclassified errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return GenerationFailed
}

// PublicMessage returns the message safe to echo to the caller.
// Configuration errors are replaced with a generic message so internal
// detail (paths, env var names, secret state) never leaks.
func PublicMessage(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return "internal error"
	}
	if ae.Kind == ConfigurationError {
		return "server configuration error"
	}
	return ae.Message
}

// HTTPStatus maps a failure kind to the response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated, UpstreamAuthError:
		return http.StatusUnauthorized
	case RateLimited, UpstreamRateLimited:
		return http.StatusTooManyRequests
	case InvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
