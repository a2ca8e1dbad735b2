// Package cluster defines the target cluster descriptor: the local record of a
// cluster's API endpoint and credential material that a client forwards to a
// cluster-proxying MCP server.
//
// A descriptor is read once per invocation, either from a JSON/YAML document
// stored at any location supported by github.com/viant/afs or from a kubeconfig.
// Values are kept exactly as read; interpretation belongs to the receiving side.
package cluster
