package couch

import (
	"context"
	"net/http"
)

// writeResult is the server's acknowledgement of a write.
type writeResult struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// Put writes doc under docID and returns the new revision. To replace an
// existing document, doc must carry the current revision; the server answers
// a stale or missing revision with DocumentConflict.
func (db *DB) Put(ctx context.Context, docID string, doc interface{}) (newRev string, err error) {
	result := new(writeResult)
	err = db.server.do(ctx, db.path(docID), &options{method: http.MethodPut, body: doc},
		expect(func(r *response) error {
			if err := r.decode(result); err != nil {
				return err
			}
			newRev = result.Rev
			return nil
		}, Created, Accepted).
			On(func(*response) error {
				return &DocumentConflict{ID: docID, Doc: doc}
			}, Conflict))
	return newRev, err
}

// CreateDoc writes doc under a server-assigned id and returns both the id and
// the new revision.
func (db *DB) CreateDoc(ctx context.Context, doc interface{}) (id, rev string, err error) {
	result := new(writeResult)
	err = db.server.do(ctx, db.path(), &options{method: http.MethodPost, body: doc},
		expect(func(r *response) error {
			if err := r.decode(result); err != nil {
				return err
			}
			id, rev = result.ID, result.Rev
			return nil
		}, Created, Accepted).
			On(func(*response) error {
				return &DocumentConflict{Doc: doc}
			}, Conflict))
	return id, rev, err
}
