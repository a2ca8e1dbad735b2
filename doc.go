// Package mcptarget calls tools of a cluster-proxying Model Context Protocol
// (MCP) server on behalf of a target Kubernetes cluster.
//
// The target cluster is described by a cluster.Descriptor; binder.Bind turns
// it into the x-target-k8s-* HeaderSet, which the transport package attaches to
// every HTTP request of the MCP session. This package glues those pieces with
// the JSON-RPC transports of github.com/viant/jsonrpc:
//
//	descriptor, _ := cluster.Load(ctx, "test-cluster.json")
//	headers, _ := binder.Bind(descriptor, binder.Token)
//	cli, err := mcptarget.NewClient(ctx, &mcptarget.ClientOptions{URL: "http://localhost:8085/mcp"}, headers)
//	if err != nil {
//		return err
//	}
//	result, err := mcptarget.Call(ctx, cli, "pods_list_in_namespace", map[string]any{"namespace": "kyma-system"})
//
// Errors returned by NewClient and Call are classified as ErrConnectionFailure
// or ErrApplicationFailure; see CallError.
package mcptarget
