// Package transport provides an abstraction around an HTTP transport.
package transport

import "net/http"

// Transport performs a single HTTP round trip. Connection pooling, TLS, and
// redirect policy all live behind this interface.
type Transport interface {
	Do(*http.Request) (*http.Response, error)
}

type defaultTransport struct {
	client *http.Client
}

var _ Transport = &defaultTransport{}

func (t *defaultTransport) Do(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}

// Default returns the default transport implementation, backed by
// http.DefaultClient.
func Default() Transport {
	return &defaultTransport{client: http.DefaultClient}
}

// Client returns a transport backed by client, for callers that need their
// own timeout or TLS configuration.
func Client(client *http.Client) Transport {
	return &defaultTransport{client: client}
}
