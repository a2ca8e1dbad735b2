// Package client implements a small Go client for the Model Context Protocol (MCP).
//
// It wraps any JSON-RPC transport satisfying github.com/viant/jsonrpc/transport.Transport
// and adds the `initialize` handshake plus strongly typed `ListTools`,
// `CallTool` and `Ping` operations.
//
// Example:
//
//	aTransport, _ := streamable.New(ctx, "http://localhost:8085/mcp", streamable.WithHTTPClient(httpClient))
//	cli := client.New("demo", "1.0", aTransport)
//	if _, err := cli.Initialize(ctx); err != nil {
//		return err
//	}
//	res, _ := cli.CallTool(ctx, &schema.CallToolRequestParams{Name: "pods_list_in_namespace"})
package client
