package transport

import "net/http"

// Mock allows mocking a transport.
type Mock struct {
	DoFunc func(*http.Request) (*http.Response, error)
}

var _ Transport = &Mock{}

// Do calls t.DoFunc
func (t *Mock) Do(req *http.Request) (*http.Response, error) {
	return t.DoFunc(req)
}
