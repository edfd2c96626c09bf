package couch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/icza/dyno"
	"gitlab.com/flimzy/ale/httperr"
)

// Row is one row of an _all_docs response.
type Row struct {
	ID    string                 `json:"id"`
	Key   interface{}            `json:"key"`
	Value interface{}            `json:"value"`
	Doc   map[string]interface{} `json:"doc"`
	Error string                 `json:"error"`
}

// Rev digs the winning revision out of the row's value.
func (r *Row) Rev() string {
	rev, _ := dyno.GetString(r.Value, "rev")
	return rev
}

// AllDocsResult is the server's answer to an _all_docs request.
type AllDocsResult struct {
	TotalRows int64 `json:"total_rows"`
	Offset    int64 `json:"offset"`
	Rows      []Row `json:"rows"`
}

// encodeQuery renders opts as query parameters. Every value travels as a JSON
// literal, which is how the server wants keys and limits spelled.
func encodeQuery(opts map[string]interface{}) (url.Values, error) {
	query := url.Values{}
	for key, value := range opts {
		p, err := json.Marshal(value)
		if err != nil {
			return nil, httperr.WithStatus(http.StatusBadRequest, err)
		}
		query.Set(key, string(p))
	}
	return query, nil
}

// AllDocs lists the database's documents. Recognized opts include startkey,
// endkey, limit and include_docs.
func (db *DB) AllDocs(ctx context.Context, opts map[string]interface{}) (*AllDocsResult, error) {
	query, err := encodeQuery(opts)
	if err != nil {
		return nil, err
	}
	result := new(AllDocsResult)
	err = db.server.do(ctx, db.path("_all_docs"), &options{method: http.MethodGet, query: query},
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
