package panos

import "fmt"

// NetworkError wraps a connection-level failure reaching a host's
// management interface.
type NetworkError struct {
	Host string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: unable to connect to host (%v)", e.Host, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError indicates the host rejected the supplied key or credentials.
type AuthError struct {
	Host   string
	Status string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed (%s)", e.Host, e.Status)
}

// ParseError indicates a response that was not well-formed XML or did
// not match the expected shape.
type ParseError struct {
	Host string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unable to parse response (%v)", e.Host, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError carries an error status reported by the PAN-OS API itself.
type APIError struct {
	Host    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Host, e.Message)
}
