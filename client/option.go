package client

// Option represents option
type Option func(c *Client)

// WithProtocolVersion sets the protocol version sent on initialize
func WithProtocolVersion(version string) Option {
	return func(c *Client) {
		c.protocolVersion = version
	}
}
