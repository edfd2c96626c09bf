package couch

import (
	"context"
	"net/http"
)

// Compact asks the server to reclaim the space held by superseded document
// revisions. The server acknowledges before the compaction finishes.
func (db *DB) Compact(ctx context.Context) error {
	return db.server.do(ctx, db.path("_compact"), &options{method: http.MethodPost},
		expect(ack, Accepted).
			On(func(*response) error {
				return &DatabaseNotFound{URI: db.URI()}
			}, NotFound))
}
