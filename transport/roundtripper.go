package transport

import (
	"fmt"
	"net/http"

	"github.com/viant/mcptarget/binder"
)

type RoundTripper struct {
	headers   *binder.HeaderSet
	encoding  binder.Encoding
	transport http.RoundTripper
}

// New creates a RoundTripper; a HeaderSet is required.
func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		encoding:  binder.JSON,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.headers == nil || ret.headers.Len() == 0 {
		return nil, fmt.Errorf("header set was empty")
	}
	if ret.transport == nil {
		ret.transport = http.DefaultTransport
	}
	// fail at construction rather than on first request
	if err := ret.headers.Apply(http.Header{}, ret.encoding); err != nil {
		return nil, err
	}
	return ret, nil
}

// Encoding returns the header encoding.
func (r *RoundTripper) Encoding() binder.Encoding {
	return r.encoding
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone req to avoid mutating caller headers
	clone := req.Clone(req.Context())
	if err := r.headers.Apply(clone.Header, r.encoding); err != nil {
		return nil, err
	}
	return r.transport.RoundTrip(clone)
}

// Client returns an http.Client using the RoundTripper.
func (r *RoundTripper) Client() *http.Client {
	return &http.Client{Transport: r}
}
