package couch

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/go-kivik/couch/transport"
)

// canned is one scripted transport response.
type canned struct {
	status int
	body   string
}

// respond answers every request with the same canned response.
func respond(status int, body string) *transport.Mock {
	return script(canned{status: status, body: body})
}

// script answers successive requests from responses in order, repeating the
// last one once the script runs out.
func script(responses ...canned) *transport.Mock {
	i := 0
	return &transport.Mock{
		DoFunc: func(_ *http.Request) (*http.Response, error) {
			r := responses[i]
			if i < len(responses)-1 {
				i++
			}
			return &http.Response{
				StatusCode: r.status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       ioutil.NopCloser(strings.NewReader(r.body)),
			}, nil
		},
	}
}

// capture records requests and their bodies on the way to next.
type capture struct {
	requests []*http.Request
	bodies   []string
}

func (c *capture) wrap(next transport.Transport) *transport.Mock {
	return &transport.Mock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			var body string
			if req.Body != nil {
				p, _ := ioutil.ReadAll(req.Body)
				body = string(p)
			}
			c.requests = append(c.requests, req)
			c.bodies = append(c.bodies, body)
			return next.Do(req)
		},
	}
}

// testServer builds a server against the given transport.
func testServer(t transport.Transport, opts ...Option) *Server {
	return NewServer("localhost", 5984, append([]Option{WithTransport(t)}, opts...)...)
}
