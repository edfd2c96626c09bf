package couch

import (
	"context"
	"net/http"
)

// Copy duplicates sourceID into targetID server side, with no round trip of
// the document body. Overwriting an existing target requires its current
// revision in targetRev; pass "" when the target does not exist yet.
func (db *DB) Copy(ctx context.Context, targetID, sourceID, targetRev string) (rev string, err error) {
	dest := targetID
	if targetRev != "" {
		dest += "?rev=" + targetRev
	}
	result := new(writeResult)
	opt := &options{
		method: "COPY",
		header: http.Header{"Destination": []string{dest}},
	}
	err = db.server.do(ctx, db.path(sourceID), opt,
		expect(func(r *response) error {
			if err := r.decode(result); err != nil {
				return err
			}
			rev = result.Rev
			return nil
		}, Created).
			On(func(*response) error {
				return &DocumentConflict{ID: targetID}
			}, Conflict).
			On(func(*response) error {
				return &DocumentNotFound{ID: sourceID, Database: db.name}
			}, NotFound))
	return rev, err
}
