package couch

import (
	"context"
	"net/http"
	"net/url"
)

type batchRequest struct {
	Keys []string `json:"keys"`
}

// BatchGet fetches the documents named by ids in a single request rather than
// one round trip per id. Rows come back in the order of ids, one per id, with
// Error set on the ones the server could not find.
func (db *DB) BatchGet(ctx context.Context, ids []string) ([]Row, error) {
	opt := &options{
		method: http.MethodPost,
		body:   &batchRequest{Keys: ids},
		query:  url.Values{"include_docs": []string{"true"}},
	}
	result := new(AllDocsResult)
	err := db.server.do(ctx, db.path("_all_docs"), opt,
		expect(func(r *response) error {
			return r.decode(result)
		}, OK).
			On(func(*response) error {
				return &DatabaseNotFound{URI: db.URI()}
			}, NotFound))
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}
