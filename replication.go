package couch

import (
	"context"
	"net/http"
)

type replRequest struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	CreateTarget bool   `json:"create_target,omitempty"`
	Continuous   bool   `json:"continuous,omitempty"`
}

// ReplicationOptions tune a replication trigger.
type ReplicationOptions struct {
	// CreateTarget creates the target database when it does not exist.
	CreateTarget bool
	// Continuous keeps the replication running until cancelled server side.
	Continuous bool
}

// Replicate triggers a replication from source to target. Either may be a
// database name on this instance or the full URL of a remote database. A
// one-shot replication answers ok once it completes; a continuous one answers
// accepted as soon as it is scheduled.
func (s *Server) Replicate(ctx context.Context, source, target string, opts *ReplicationOptions) error {
	body := &replRequest{Source: source, Target: target}
	if opts != nil {
		body.CreateTarget = opts.CreateTarget
		body.Continuous = opts.Continuous
	}
	return s.do(ctx, "_replicate", &options{method: http.MethodPost, body: body},
		expect(ack, OK, Accepted).
			On(func(*response) error {
				return &DatabaseNotFound{URI: source}
			}, NotFound))
}
