package couch

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"golang.org/x/xerrors"

	"github.com/go-kivik/couch/codec"
)

// options describes a single request to dispatch.
type options struct {
	method string
	body   interface{}
	query  url.Values
	header http.Header
}

// response is the resolved result of one dispatched request.
type response struct {
	outcome Outcome
	status  int
	body    []byte
	header  http.Header
	codec   codec.Codec
}

// decode unmarshals the response body into v via the server's codec.
func (r *response) decode(v interface{}) error {
	if err := r.codec.Unmarshal(r.body, v); err != nil {
		return &UnmarshalError{Err: err}
	}
	return nil
}

// dispatch performs exactly one round trip against path and resolves the
// status code against the status table. It does not judge success or failure;
// that is the caller's outcome table.
func (s *Server) dispatch(ctx context.Context, path string, opt *options) (*response, error) {
	u := s.BaseURL() + path
	if len(opt.query) > 0 {
		u += "?" + opt.query.Encode()
	}
	var body io.Reader
	if opt.body != nil {
		p, err := s.codec.Marshal(opt.body)
		if err != nil {
			return nil, &MarshalError{Err: err}
		}
		body = bytes.NewReader(p)
	}
	req, err := http.NewRequest(opt.method, u, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", s.codec.ContentType())
	req.Header.Set("Accept", s.codec.ContentType())
	for key, values := range opt.header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	if s.cred != nil {
		req.SetBasicAuth(s.cred.username, s.cred.password)
	}
	res, err := s.transport.Do(req)
	if err != nil {
		// Transport failures are opaque and pass through unaltered.
		return nil, err
	}
	defer res.Body.Close()
	p, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, xerrors.Errorf("couch: read response: %w", err)
	}
	outcome, err := resolve(res.StatusCode)
	if err != nil {
		return nil, err
	}
	return &response{
		outcome: outcome,
		status:  res.StatusCode,
		body:    p,
		header:  res.Header,
		codec:   s.codec,
	}, nil
}

type handler func(*response) error

// outcomes routes resolved outcomes to handlers. One handler may be bound to
// several outcomes at once.
type outcomes map[Outcome]handler

// expect starts an outcome table with h bound to tags.
func expect(h handler, tags ...Outcome) outcomes {
	return outcomes{}.On(h, tags...)
}

// On binds h to each tag in tags.
func (o outcomes) On(h handler, tags ...Outcome) outcomes {
	for _, tag := range tags {
		o[tag] = h
	}
	return o
}

// ack ignores the response body.
func ack(*response) error { return nil }

// do dispatches one request and routes the result through table. An outcome
// the table does not bind surfaces as UnexpectedResponse with the raw body
// intact; no call site branches on status codes itself.
func (s *Server) do(ctx context.Context, path string, opt *options, table outcomes) error {
	resp, err := s.dispatch(ctx, path, opt)
	if err != nil {
		return err
	}
	h, ok := table[resp.outcome]
	if !ok {
		return &UnexpectedResponse{Status: resp.status, Body: resp.body}
	}
	return h(resp)
}
