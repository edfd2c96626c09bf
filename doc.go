/*
Package couch is a CouchDB client: server connection management, database
lifecycle operations, and document CRUD with revision-based optimistic
concurrency.

General Usage

Create a server handle, then database handles under it:

    server := couch.NewServer("localhost", 5984,
        couch.WithCredentials(couch.NewCredentials("admin", "secret")))

    db, created, err := server.EnsureDB(ctx, "invoices")

Documents are opaque structured values; ids and revisions travel out of band:

    rev, err := db.Put(ctx, "invoice-17", map[string]interface{}{
        "total": 99.5,
    })

    var doc map[string]interface{}
    rev, err = db.Get(ctx, "invoice-17", &doc)

Overwriting or deleting a document requires its current revision; the server
answers a stale revision with a conflict:

    _, err = db.Delete(ctx, "invoice-17", rev)

Error Handling

Failures are typed and carry their context. Match them with errors.As (or
xerrors.As):

    var conflict *couch.DocumentConflict
    if errors.As(err, &conflict) {
        // conflict.ID, conflict.Doc
    }

Status-coded errors also expose their HTTP status through couch.StatusCode.
A response status code outside the protocol contract is reported as
UnmappedStatus and never coerced into another condition.

Codecs and Transport

Request and response bodies pass through a pluggable codec (JSON by default);
the HTTP transport is equally pluggable, ordinarily backed by
http.DefaultClient. See the codec and transport packages.
*/
package couch
