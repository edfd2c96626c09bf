package couch

import (
	"context"
	"net/http"
)

// ChangedRev names one revision of a changed document.
type ChangedRev struct {
	Rev string `json:"rev"`
}

// Change is one row of a changes feed.
type Change struct {
	ID      string       `json:"id"`
	Seq     interface{}  `json:"seq"`
	Deleted bool         `json:"deleted,omitempty"`
	Changes []ChangedRev `json:"changes"`
}

// ChangesResult is a point-in-time snapshot of a database's changes feed.
type ChangesResult struct {
	Results []Change    `json:"results"`
	LastSeq interface{} `json:"last_seq"`
}

// Changes fetches the database's changes feed. Recognized opts include since
// and limit; they travel as query parameters.
func (db *DB) Changes(ctx context.Context, opts map[string]interface{}) (*ChangesResult, error) {
	query, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	result := new(ChangesResult)
	err = db.server.do(ctx, db.path("_changes"), &options{method: http.MethodGet, query: query},
		expect(func(r *response) error {
			return r.decode(result)
		}, OK).
			On(func(*response) error {
				return &DatabaseNotFound{URI: db.URI()}
			}, NotFound))
	if err != nil {
		return nil, err
	}
	return result, nil
}
