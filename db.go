package couch

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/xerrors"
)

// DB is a handle on one database under a server. It is a cheap immutable
// descriptor and implies nothing about server-side existence; use ConnectDB
// or EnsureDB for a probed handle.
type DB struct {
	server *Server
	name   string
}

// DB returns a handle on the named database without contacting the server.
// The name is not validated locally; the server rejects illegal names.
func (s *Server) DB(name string) *DB {
	return &DB{server: s, name: name}
}

// Name returns the database name.
func (db *DB) Name() string {
	return db.name
}

// path assembles a resource path under the database. Document ids are
// path-escaped except for the slash separating a reserved prefix such as
// _design/.
func (db *DB) path(parts ...string) string {
	segments := []string{url.PathEscape(db.name)}
	for _, part := range parts {
		if strings.HasPrefix(part, "_") {
			segments = append(segments, part)
			continue
		}
		segments = append(segments, url.PathEscape(part))
	}
	return strings.Join(segments, "/")
}

// URI returns the absolute URI of the database.
func (db *DB) URI() string {
	return db.server.BaseURL() + db.path()
}

// Create issues the database-creation request. Creating a database that
// already exists returns DatabaseExists.
func (db *DB) Create(ctx context.Context) error {
	return db.server.do(ctx, db.path(), &options{method: http.MethodPut},
		expect(ack, Created).
			On(func(*response) error {
				return &DatabaseExists{URI: db.URI()}
			}, PreconditionFailed).
			On(func(*response) error {
				return &IllegalName{Name: db.name}
			}, InternalServerError))
}

// Exists probes the server for the database, returning nil only when it is
// confirmed present.
func (db *DB) Exists(ctx context.Context) error {
	return db.server.do(ctx, db.path(), &options{method: http.MethodGet},
		expect(ack, OK).
			On(func(*response) error {
				return &DatabaseNotFound{URI: db.URI()}
			}, NotFound).
			On(func(*response) error {
				return &IllegalName{Name: db.name}
			}, InternalServerError))
}

// Destroy deletes the database and every document in it.
func (db *DB) Destroy(ctx context.Context) error {
	return db.server.do(ctx, db.path(), &options{method: http.MethodDelete},
		expect(ack, OK).
			On(func(*response) error {
				return &DatabaseNotFound{URI: db.URI()}
			}, NotFound))
}

// CreateDB creates the named database and returns a handle on it.
func (s *Server) CreateDB(ctx context.Context, name string) (*DB, error) {
	db := s.DB(name)
	if err := db.Create(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// ConnectDB returns a handle on the named database after confirming it
// exists. A missing database returns DatabaseNotFound.
func (s *Server) ConnectDB(ctx context.Context, name string) (*DB, error) {
	db := s.DB(name)
	if err := db.Exists(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureDB creates the named database if needed, connecting to it when it
// already exists. created reports whether creation actually happened. Only
// DatabaseExists triggers the connect fallback; every other failure from the
// create propagates untouched.
func (s *Server) EnsureDB(ctx context.Context, name string) (db *DB, created bool, err error) {
	db, err = s.CreateDB(ctx, name)
	if err == nil {
		return db, true, nil
	}
	var exists *DatabaseExists
	if !xerrors.As(err, &exists) {
		return nil, false, err
	}
	db, err = s.ConnectDB(ctx, name)
	return db, false, err
}
