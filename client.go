package mcptarget

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/client/http/sse"
	"github.com/viant/jsonrpc/transport/client/http/streamable"
	"github.com/viant/mcp-protocol/schema"

	"github.com/viant/mcptarget/binder"
	"github.com/viant/mcptarget/client"
	authtransport "github.com/viant/mcptarget/transport"
)

const (
	TransportStreamable = "streamable"
	TransportSSE        = "sse"

	methodConnect = "connect"
)

// ClientOptions defines options for configuring an MCP client.
type ClientOptions struct {
	Name            string        `yaml:"name,omitempty" json:"name,omitempty" long:"name" description:"client name"`
	Version         string        `yaml:"version,omitempty" json:"version,omitempty" long:"client-version" description:"client version"`
	ProtocolVersion string        `yaml:"protocol,omitempty" json:"protocol,omitempty" long:"protocol" description:"mcp protocol version"`
	URL             string        `yaml:"url" json:"url" short:"u" long:"url" description:"mcp server url"`
	Transport       string        `yaml:"transport,omitempty" json:"transport,omitempty" long:"transport" description:"mcp transport type" choice:"streamable" choice:"sse"`
	Encoding        string        `yaml:"encoding,omitempty" json:"encoding,omitempty" short:"e" long:"encoding" description:"credential header encoding" choice:"json" choice:"base64" choice:"headers"`
	Timeout         time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" long:"timeout" description:"call deadline, e.g. 30s; no deadline when zero"`

	Logger zerolog.Logger `yaml:"-" json:"-" no-flag:"true"`
}

func (c *ClientOptions) Init() {
	if c.Name == "" {
		c.Name = "mcptarget"
	}
	if c.Version == "" {
		c.Version = "0.1"
	}
	if c.Transport == "" {
		c.Transport = TransportStreamable
	}
}

// NewClient creates an initialized MCP client whose HTTP requests carry headers.
func NewClient(ctx context.Context, options *ClientOptions, headers *binder.HeaderSet) (*client.Client, error) {
	options.Init()
	encoding, err := binder.ParseEncoding(options.Encoding)
	if err != nil {
		return nil, err
	}
	roundTripper, err := authtransport.New(authtransport.WithHeaderSet(headers), authtransport.WithEncoding(encoding))
	if err != nil {
		return nil, err
	}
	rpcTransport, err := options.getTransport(ctx, roundTripper)
	if err != nil {
		return nil, err
	}
	var clientOptions []client.Option
	if options.ProtocolVersion != "" {
		clientOptions = append(clientOptions, client.WithProtocolVersion(options.ProtocolVersion))
	}
	cli := client.New(options.Name, options.Version, rpcTransport, clientOptions...)
	if _, err := cli.Initialize(ctx); err != nil {
		return nil, classify(schema.MethodInitialize, err)
	}
	return cli, nil
}

// getTransport constructs a JSON-RPC transport based on ClientOptions.Transport.
func (c *ClientOptions) getTransport(ctx context.Context, roundTripper *authtransport.RoundTripper) (transport.Transport, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("URL is required for %v transport", c.Transport)
	}
	httpClient := roundTripper.Client()
	handler := client.NewHandler(c.Logger)
	switch c.Transport {
	case TransportStreamable:
		ret, err := streamable.New(ctx, c.URL,
			streamable.WithHTTPClient(httpClient),
			streamable.WithHandler(handler))
		if err != nil {
			return nil, classify(methodConnect, &client.TransportError{Method: methodConnect, Err: fmt.Errorf("failed to create streamable transport: %w", err)})
		}
		return ret, nil
	case TransportSSE:
		ret, err := sse.New(ctx, c.URL,
			sse.WithHttpClient(httpClient),
			sse.WithMessageHttpClient(httpClient),
			sse.WithHandler(handler))
		if err != nil {
			return nil, classify(methodConnect, &client.TransportError{Method: methodConnect, Err: fmt.Errorf("failed to create SSE transport: %w", err)})
		}
		return ret, nil
	}
	return nil, fmt.Errorf("unsupported transport: %q", c.Transport)
}

// Call invokes toolName with args. A tool result flagged as error is
// returned together with an ErrApplicationFailure.
func Call(ctx context.Context, cli client.Interface, toolName string, args map[string]any) (*schema.CallToolResult, error) {
	result, err := cli.CallTool(ctx, &schema.CallToolRequestParams{Name: toolName, Arguments: args})
	if err != nil {
		return nil, classify(schema.MethodToolsCall, err)
	}
	if result.IsError != nil && *result.IsError {
		return result, &CallError{Kind: ApplicationFailure, Method: schema.MethodToolsCall, Type: "ToolError", Err: fmt.Errorf("tool %v reported an error: %v", toolName, contentText(result))}
	}
	return result, nil
}
