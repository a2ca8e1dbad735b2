package client

import "fmt"

// TransportError reports a failure to deliver a message, as opposed to a
// JSON-RPC error returned by the server.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send %v: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
