package binder

import "sort"

// Header names of the target cluster contract.
const (
	HeaderCertificateAuthorityData = "x-target-k8s-certificate-authority-data"
	HeaderServer                   = "x-target-k8s-server"
	HeaderAuthorization            = "x-target-k8s-authorization"
	HeaderClientCertificateData    = "x-target-k8s-client-certificate-data"
	HeaderClientKeyData            = "x-target-k8s-client-key-data"
	// HeaderInsecureSkipTLSVerify is only interpreted by the receiving side.
	HeaderInsecureSkipTLSVerify = "x-target-k8s-insecure-skip-tls-verify"
)

// HeaderSet holds the header values produced for one authenticated call.
// Only Bind populates it.
type HeaderSet struct {
	values map[string]string
}

func newHeaderSet() *HeaderSet {
	return &HeaderSet{values: make(map[string]string, 4)}
}

func (h *HeaderSet) set(name, value string) {
	h.values[name] = value
}

// Len returns number of headers.
func (h *HeaderSet) Len() int {
	if h == nil {
		return 0
	}
	return len(h.values)
}

// Get returns header value and whether it is present.
func (h *HeaderSet) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	value, ok := h.values[name]
	return value, ok
}

// Keys returns sorted header names.
func (h *HeaderSet) Keys() []string {
	if h == nil {
		return nil
	}
	ret := make([]string, 0, len(h.values))
	for k := range h.values {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Map returns a copy of the headers.
func (h *HeaderSet) Map() map[string]string {
	ret := make(map[string]string, h.Len())
	if h == nil {
		return ret
	}
	for k, v := range h.values {
		ret[k] = v
	}
	return ret
}
