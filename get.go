package couch

import (
	"context"
	"net/http"
	"net/url"
)

type revDoc struct {
	Rev string `json:"_rev" yaml:"_rev"`
}

// Get fetches the current revision of docID into dest, which must be a value
// the codec can unmarshal into. The document's revision is returned out of
// band.
func (db *DB) Get(ctx context.Context, docID string, dest interface{}) (string, error) {
	return db.get(ctx, docID, "", dest)
}

// GetRev fetches a specific revision of docID into dest.
func (db *DB) GetRev(ctx context.Context, docID, rev string, dest interface{}) (string, error) {
	return db.get(ctx, docID, rev, dest)
}

func (db *DB) get(ctx context.Context, docID, rev string, dest interface{}) (fetchedRev string, err error) {
	opt := &options{method: http.MethodGet}
	if rev != "" {
		opt.query = url.Values{"rev": []string{rev}}
	}
	err = db.server.do(ctx, db.path(docID), opt,
		expect(func(r *response) error {
			rd := new(revDoc)
			if err := r.decode(rd); err != nil {
				return err
			}
			fetchedRev = rd.Rev
			return r.decode(dest)
		}, OK).
			On(func(*response) error {
				return &DocumentNotFound{ID: docID, Database: db.name}
			}, NotFound))
	return fetchedRev, err
}
