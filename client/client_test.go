package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// mock transport to capture send and return a canned response
type mockTransport struct {
	send          func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error)
	notifications []string
}

func (m *mockTransport) Notify(ctx context.Context, n *jsonrpc.Notification) error {
	m.notifications = append(m.notifications, n.Method)
	return nil
}

func (m *mockTransport) Send(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
	return m.send(ctx, r)
}

var _ transport.Transport = (*mockTransport)(nil)

func TestClient_Initialize(t *testing.T) {
	var methods []string
	mt := &mockTransport{send: func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
		methods = append(methods, r.Method)
		var params schema.InitializeRequestParams
		require.NoError(t, json.Unmarshal(r.Params, &params))
		assert.Equal(t, "mcptarget", params.ClientInfo.Name)
		assert.Equal(t, "2025-03-26", params.ProtocolVersion)
		return &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{"protocolVersion":"2025-03-26","capabilities":{},"serverInfo":{"name":"srv","version":"1"}}`)}, nil
	}}
	c := New("mcptarget", "0.1", mt, WithProtocolVersion("2025-03-26"))

	_, err := c.CallTool(context.Background(), &schema.CallToolRequestParams{Name: "x"})
	assert.Error(t, err)

	result, err := c.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "srv", result.ServerInfo.Name)
	assert.Equal(t, []string{schema.MethodInitialize}, methods)
	assert.Equal(t, []string{schema.MethodNotificationInitialized}, mt.notifications)
}

func TestClient_CallTool(t *testing.T) {
	var testCases = []struct {
		description string
		response    *jsonrpc.Response
		sendErr     error
		expectRPC   bool
		expectSend  bool
		expectError bool
	}{
		{
			description: "success",
			response:    &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{"content":[{"type":"text","text":"pod-a"}]}`)},
		},
		{
			description: "tool error result",
			response:    &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{"content":[{"type":"text","text":"forbidden"}],"isError":true}`)},
			expectError: true,
		},
		{
			description: "rpc error",
			response:    &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Error: jsonrpc.NewError(jsonrpc.InvalidParams, "Unknown tool:x", nil)},
			expectRPC:   true,
		},
		{
			description: "transport failure",
			sendErr:     errors.New("connection refused"),
			expectSend:  true,
		},
	}

	for _, testCase := range testCases {
		mt := &mockTransport{send: func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
			require.Equal(t, schema.MethodToolsCall, r.Method)
			var params schema.CallToolRequestParams
			require.NoError(t, json.Unmarshal(r.Params, &params))
			assert.Equal(t, "pods_list_in_namespace", params.Name)
			assert.EqualValues(t, "kyma-system", params.Arguments["namespace"])
			return testCase.response, testCase.sendErr
		}}
		c := &Client{transport: mt, initialized: true}
		result, err := c.CallTool(context.Background(), &schema.CallToolRequestParams{
			Name:      "pods_list_in_namespace",
			Arguments: map[string]any{"namespace": "kyma-system"},
		})

		var rpcErr *jsonrpc.Error
		var transportErr *TransportError
		switch {
		case testCase.expectRPC:
			assert.True(t, errors.As(err, &rpcErr), testCase.description)
			assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code, testCase.description)
		case testCase.expectSend:
			assert.True(t, errors.As(err, &transportErr), testCase.description)
			assert.Equal(t, schema.MethodToolsCall, transportErr.Method, testCase.description)
		default:
			require.NoError(t, err, testCase.description)
			require.NotNil(t, result, testCase.description)
			isError := result.IsError != nil && *result.IsError
			assert.Equal(t, testCase.expectError, isError, testCase.description)
			assert.Len(t, result.Content, 1, testCase.description)
		}
	}
}

func TestClient_ListTools(t *testing.T) {
	cursor := "page-2"
	var testCases = []struct {
		description string
		cursor      *string
		response    *jsonrpc.Response
		sendErr     error
		expectTools []string
		expectNext  string
		expectErr   bool
	}{
		{
			description: "first page",
			response:    &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{"tools":[{"name":"pods_list_in_namespace","inputSchema":{"type":"object"}},{"name":"kyma_get","inputSchema":{"type":"object"}}],"nextCursor":"page-2"}`)},
			expectTools: []string{"pods_list_in_namespace", "kyma_get"},
			expectNext:  "page-2",
		},
		{
			description: "next page",
			cursor:      &cursor,
			response:    &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{"tools":[]}`)},
			expectTools: []string{},
		},
		{
			description: "transport failure",
			sendErr:     errors.New("connection refused"),
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		mt := &mockTransport{send: func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
			require.Equal(t, schema.MethodToolsList, r.Method)
			var params schema.ListToolsRequestParams
			require.NoError(t, json.Unmarshal(r.Params, &params))
			assert.Equal(t, testCase.cursor, params.Cursor, testCase.description)
			return testCase.response, testCase.sendErr
		}}
		c := &Client{transport: mt, initialized: true}
		result, err := c.ListTools(context.Background(), testCase.cursor)
		if testCase.expectErr {
			var transportErr *TransportError
			assert.True(t, errors.As(err, &transportErr), testCase.description)
			assert.Equal(t, schema.MethodToolsList, transportErr.Method, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		actual := []string{}
		for _, tool := range result.Tools {
			actual = append(actual, tool.Name)
		}
		assert.Equal(t, testCase.expectTools, actual, testCase.description)
		if testCase.expectNext == "" {
			assert.Nil(t, result.NextCursor, testCase.description)
		} else {
			require.NotNil(t, result.NextCursor, testCase.description)
			assert.Equal(t, testCase.expectNext, *result.NextCursor, testCase.description)
		}
	}
}

func TestClient_Ping(t *testing.T) {
	var methods []string
	mt := &mockTransport{send: func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
		methods = append(methods, r.Method)
		return &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Result: []byte(`{}`)}, nil
	}}
	c := &Client{transport: mt}

	_, err := c.Ping(context.Background(), &schema.PingRequestParams{})
	require.Error(t, err)
	assert.Empty(t, methods)

	c.initialized = true
	result, err := c.Ping(context.Background(), &schema.PingRequestParams{})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, []string{schema.MethodPing}, methods)

	mt.send = func(ctx context.Context, r *jsonrpc.Request) (*jsonrpc.Response, error) {
		return &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Error: jsonrpc.NewInternalError("busy", nil)}, nil
	}
	_, err = c.Ping(context.Background(), &schema.PingRequestParams{})
	var rpcErr *jsonrpc.Error
	assert.True(t, errors.As(err, &rpcErr))
}

func TestHandler_Serve(t *testing.T) {
	h := NewHandler(zerolog.Nop())
	req := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: schema.MethodRootsList, Id: 7}
	resp := &jsonrpc.Response{}
	h.Serve(context.Background(), req, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc.NewMethodNotFound("", nil).Code, resp.Error.Code)
	assert.EqualValues(t, 7, resp.Id)

	h.OnNotification(context.Background(), &jsonrpc.Notification{Method: "notifications/message", Params: []byte(`{"level":"info"}`)})
}
