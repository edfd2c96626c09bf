package couch

import (
	"fmt"

	"github.com/go-kivik/couch/codec"
	_ "github.com/go-kivik/couch/codec/jsoncodec" // default codec
	"github.com/go-kivik/couch/transport"
)

// Server identifies a CouchDB endpoint. It is an immutable descriptor, not a
// live session, and may be shared freely between goroutines.
type Server struct {
	host      string
	port      int
	cred      *Credentials
	transport transport.Transport
	codec     codec.Codec
}

// Credentials hold a basic-auth user and password.
type Credentials struct {
	username string
	password string
}

// NewCredentials returns credentials usable with one or more servers.
func NewCredentials(username, password string) *Credentials {
	return &Credentials{username: username, password: password}
}

// Option configures a Server beyond host and port.
type Option func(*Server)

// WithCredentials attaches basic-auth credentials to every request.
func WithCredentials(cred *Credentials) Option {
	return func(s *Server) {
		s.cred = cred
	}
}

// WithTransport substitutes the HTTP transport.
func WithTransport(t transport.Transport) Option {
	return func(s *Server) {
		s.transport = t
	}
}

// WithCodec substitutes the body codec. The default is the JSON codec.
func WithCodec(c codec.Codec) Option {
	return func(s *Server) {
		s.codec = c
	}
}

// NewServer returns a handle on the CouchDB instance at host:port. No network
// access happens until an operation is called.
func NewServer(host string, port int, options ...Option) *Server {
	s := &Server{
		host: host,
		port: port,
	}
	for _, option := range options {
		option(s)
	}
	if s.transport == nil {
		s.transport = transport.Default()
	}
	if s.codec == nil {
		c, err := codec.Get("application/json")
		if err != nil {
			panic(err)
		}
		s.codec = c
	}
	return s
}

// BaseURL renders the root URL of the instance.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d/", s.host, s.port)
}
