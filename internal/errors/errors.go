package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three failure kinds of a render pass.
var (
	// ErrConfiguration is returned when required configuration is missing or invalid
	ErrConfiguration = errors.New("configuration error")

	// ErrConnection is returned when the backend cannot be reached or rejects the credential
	ErrConnection = errors.New("connection error")

	// ErrQuery is returned when the backend was reached but the query failed
	ErrQuery = errors.New("query error")
)

// ConfigurationError reports missing environment values or an otherwise
// invalid configuration. It is raised before any network call is attempted.
type ConfigurationError struct {
	Missing []string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ConnectionError reports that the backend could not be reached or that it
// rejected the access credential.
type ConnectionError struct {
	Endpoint string
	Cause    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to %q: %v", e.Endpoint, e.Cause)
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// QueryError reports that the backend was reached but the table read failed.
type QueryError struct {
	Table string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query on table %q failed: %v", e.Table, e.Cause)
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewMissingConfigError creates a ConfigurationError for absent env values
func NewMissingConfigError(vars ...string) error {
	return &ConfigurationError{Missing: vars}
}

// NewInvalidConfigError creates a ConfigurationError for malformed values
func NewInvalidConfigError(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(endpoint string, cause error) error {
	return &ConnectionError{Endpoint: endpoint, Cause: cause}
}

// NewQueryError creates a new QueryError
func NewQueryError(table string, cause error) error {
	return &QueryError{Table: table, Cause: cause}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsConnection checks if an error is a connection error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsQuery checks if an error is a query error
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}
