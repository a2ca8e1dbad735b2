// Package binder translates a cluster descriptor and an authentication mode into
// the set of x-target-k8s-* headers a cluster-proxying MCP server expects.
//
// Binding is a pure function: it performs no I/O, does not modify the
// descriptor and returns a fresh HeaderSet on every call, so it is safe for
// concurrent use. A HeaderSet can then be applied to an outbound request either
// as individual headers or wrapped, as JSON or base64-encoded JSON, into a
// single Authorization header.
package binder
