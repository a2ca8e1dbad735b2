package transport

import (
	"net/http"

	"github.com/viant/mcptarget/binder"
)

type Option func(*RoundTripper)

// WithTransport sets the inner transport
func WithTransport(transport http.RoundTripper) Option {
	return func(r *RoundTripper) {
		r.transport = transport
	}
}

// WithEncoding sets header encoding
func WithEncoding(encoding binder.Encoding) Option {
	return func(r *RoundTripper) {
		r.encoding = encoding
	}
}

// WithHeaderSet sets headers
func WithHeaderSet(headers *binder.HeaderSet) Option {
	return func(r *RoundTripper) {
		r.headers = headers
	}
}
