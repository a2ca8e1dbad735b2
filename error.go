package mcptarget

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/viant/mcptarget/client"
)

// FailureKind classifies a failed remote call.
type FailureKind int

const (
	// ConnectionFailure means the server endpoint could not be reached; safe to retry.
	ConnectionFailure FailureKind = iota + 1
	// ApplicationFailure means the request was rejected or failed after reaching the server.
	ApplicationFailure
)

var (
	ErrConnectionFailure  = errors.New("connection failure")
	ErrApplicationFailure = errors.New("application failure")
)

func (k FailureKind) String() string {
	switch k {
	case ConnectionFailure:
		return ErrConnectionFailure.Error()
	case ApplicationFailure:
		return ErrApplicationFailure.Error()
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// CallError reports a classified failure of a remote call.
type CallError struct {
	Kind   FailureKind
	Method string
	// Type names the application error, e.g. jsonrpc code or ToolError.
	Type string
	Err  error
}

func (e *CallError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%v: %v: %v: %v", e.Kind, e.Method, e.Type, e.Err)
	}
	return fmt.Sprintf("%v: %v: %v", e.Kind, e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is matches ErrConnectionFailure or ErrApplicationFailure by kind.
func (e *CallError) Is(target error) bool {
	switch target {
	case ErrConnectionFailure:
		return e.Kind == ConnectionFailure
	case ErrApplicationFailure:
		return e.Kind == ApplicationFailure
	}
	return false
}

func classify(method string, err error) error {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return err
	}
	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		if isNetworkError(transportErr.Err) {
			return &CallError{Kind: ConnectionFailure, Method: method, Err: err}
		}
		var unauthorized *jsonrpc.UnauthorizedError
		if errors.As(err, &unauthorized) {
			return &CallError{Kind: ApplicationFailure, Method: method, Type: fmt.Sprintf("http(%d)", unauthorized.StatusCode), Err: err}
		}
		return &CallError{Kind: ApplicationFailure, Method: method, Type: "TransportError", Err: err}
	}
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return &CallError{Kind: ApplicationFailure, Method: method, Type: fmt.Sprintf("jsonrpc(%d)", rpcErr.Code), Err: err}
	}
	return &CallError{Kind: ApplicationFailure, Method: method, Err: err}
}

// isNetworkError reports dial, DNS and timeout errors raised before a response was received.
func isNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

func contentText(result *schema.CallToolResult) string {
	data, err := json.Marshal(result.Content)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
