package couch

import (
	"context"
	"net/http"
	"net/url"
)

// Delete removes docID at exactly rev and returns the deletion revision. The
// server rejects a stale or missing revision with DocumentConflict; deletion
// never succeeds without the document's current revision.
func (db *DB) Delete(ctx context.Context, docID, rev string) (newRev string, err error) {
	result := new(writeResult)
	opt := &options{
		method: http.MethodDelete,
		query:  url.Values{"rev": []string{rev}},
	}
	err = db.server.do(ctx, db.path(docID), opt,
		expect(func(r *response) error {
			if err := r.decode(result); err != nil {
				return err
			}
			newRev = result.Rev
			return nil
		}, OK, Accepted).
			On(func(*response) error {
				return &DocumentConflict{ID: docID}
			}, Conflict).
			On(func(*response) error {
				return &DocumentNotFound{ID: docID, Database: db.name}
			}, NotFound))
	return newRev, err
}
