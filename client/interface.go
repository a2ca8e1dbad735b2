package client

import (
	"context"

	"github.com/viant/mcp-protocol/schema"
)

// Interface defines the client operations
type Interface interface {
	// Initialize initializes the client
	Initialize(ctx context.Context) (*schema.InitializeResult, error)

	// ListTools lists tools
	ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error)

	// CallTool calls a tool
	CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error)

	// Ping pings the server
	Ping(ctx context.Context, params *schema.PingRequestParams) (*schema.PingResult, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
