// Package cli implements mcptool, a command that calls one tool of a
// cluster-proxying MCP server with target cluster credentials attached.
//
// Connection and application failures of the call are logged and do not fail
// the command; invalid options, descriptors or credentials do.
package cli
