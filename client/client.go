package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

var errUninitialized = fmt.Errorf("client is not initialized")

type Client struct {
	info            schema.Implementation
	protocolVersion string
	transport       transport.Transport
	initialized     bool
}

func (c *Client) isInitialized() bool {
	return c.initialized
}

// Initialize performs the initialize handshake followed by the initialized notification.
func (c *Client) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	params := &schema.InitializeRequestParams{
		Capabilities:    schema.ClientCapabilities{},
		ClientInfo:      c.info,
		ProtocolVersion: c.protocolVersion,
	}
	req, err := jsonrpc.NewRequest(schema.MethodInitialize, params)
	if err != nil {
		return nil, jsonrpc.NewInvalidRequest(err.Error(), nil)
	}
	response, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, &TransportError{Method: schema.MethodInitialize, Err: err}
	}
	if response.Error != nil {
		return nil, response.Error
	}
	var result schema.InitializeResult
	if err = json.Unmarshal(response.Result, &result); err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to unmarshal InitializeResult: %v", err), nil)
	}
	if err = c.transport.Notify(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized}); err != nil {
		return nil, &TransportError{Method: schema.MethodNotificationInitialized, Err: err}
	}
	c.initialized = true
	return &result, nil
}

func (c *Client) ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error) {
	params := &schema.ListToolsRequestParams{
		Cursor: cursor,
	}
	return send[schema.ListToolsRequestParams, schema.ListToolsResult](ctx, c, schema.MethodToolsList, params)
}

func (c *Client) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	return send[schema.CallToolRequestParams, schema.CallToolResult](ctx, c, schema.MethodToolsCall, params)
}

func (c *Client) Ping(ctx context.Context, params *schema.PingRequestParams) (*schema.PingResult, error) {
	return send[schema.PingRequestParams, schema.PingResult](ctx, c, schema.MethodPing, params)
}

func New(name, version string, transport transport.Transport, options ...Option) *Client {
	ret := &Client{
		info:      *schema.NewImplementation(name, version),
		transport: transport,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.protocolVersion == "" {
		ret.protocolVersion = schema.LatestProtocolVersion
	}
	return ret
}

func send[P any, R any](ctx context.Context, client *Client, method string, parameters *P) (*R, error) {
	if !client.isInitialized() { //ensure initialized
		return nil, jsonrpc.NewInternalError(errUninitialized.Error(), nil)
	}
	req, err := jsonrpc.NewRequest(method, parameters)
	if err != nil {
		return nil, jsonrpc.NewInvalidRequest(err.Error(), nil)
	}
	response, err := client.transport.Send(ctx, req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	if response.Error != nil {
		return nil, response.Error
	}
	var result R
	if err = json.Unmarshal(response.Result, &result); err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to unmarshal %v result: %v", method, err), nil)
	}
	return &result, nil
}
