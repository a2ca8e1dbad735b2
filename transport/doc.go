// Package transport implements an http.RoundTripper that attaches target
// cluster credentials to every outbound request.
//
// The RoundTripper is meant to back the HTTP client of an MCP transport
// (streamable HTTP or SSE) so that every JSON-RPC message, including the
// initialize handshake, carries the same HeaderSet.
package transport
