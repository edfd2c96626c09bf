// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package couch

import (
	"fmt"
	"net/http"

	"golang.org/x/xerrors"
)

// UnmappedStatus reports a response status code absent from the status table.
// It indicates a contract gap between client and server, not a recoverable
// server condition, and is never coerced into another outcome.
type UnmappedStatus struct {
	Status int
}

func (e *UnmappedStatus) Error() string {
	return fmt.Sprintf("couch: no outcome mapped for status %d", e.Status)
}

// UnexpectedResponse is returned when the server answers with an outcome the
// operation's table does not route. The raw body is preserved for inspection.
type UnexpectedResponse struct {
	Status int
	Body   []byte
}

func (e *UnexpectedResponse) Error() string {
	return fmt.Sprintf("couch: unexpected response (status %d)", e.Status)
}

// StatusCode returns the HTTP status of the response.
func (e *UnexpectedResponse) StatusCode() int { return e.Status }

// HTTPStatus returns the HTTP status of the response.
func (e *UnexpectedResponse) HTTPStatus() int { return e.Status }

// DatabaseNotFound is returned when an operation requires a database that
// does not exist on the server.
type DatabaseNotFound struct {
	URI string
}

func (e *DatabaseNotFound) Error() string {
	return fmt.Sprintf("couch: database not found: %s", e.URI)
}

// StatusCode returns the HTTP status of the condition.
func (e *DatabaseNotFound) StatusCode() int { return http.StatusNotFound }

// HTTPStatus returns the HTTP status of the condition.
func (e *DatabaseNotFound) HTTPStatus() int { return http.StatusNotFound }

// DatabaseExists is returned when creating a database that is already
// present.
type DatabaseExists struct {
	URI string
}

func (e *DatabaseExists) Error() string {
	return fmt.Sprintf("couch: database already exists: %s", e.URI)
}

// StatusCode returns the HTTP status of the condition.
func (e *DatabaseExists) StatusCode() int { return http.StatusPreconditionFailed }

// HTTPStatus returns the HTTP status of the condition.
func (e *DatabaseExists) HTTPStatus() int { return http.StatusPreconditionFailed }

// DocumentNotFound is returned when fetching a document the database does not
// hold.
type DocumentNotFound struct {
	ID       string
	Database string
}

func (e *DocumentNotFound) Error() string {
	return fmt.Sprintf("couch: document '%s' missing in database '%s'", e.ID, e.Database)
}

// StatusCode returns the HTTP status of the condition.
func (e *DocumentNotFound) StatusCode() int { return http.StatusNotFound }

// HTTPStatus returns the HTTP status of the condition.
func (e *DocumentNotFound) HTTPStatus() int { return http.StatusNotFound }

// DocumentConflict is returned when a write or delete names a stale revision.
// Doc carries the value as submitted, so the caller can refetch and retry.
type DocumentConflict struct {
	ID  string
	Doc interface{}
}

func (e *DocumentConflict) Error() string {
	return fmt.Sprintf("couch: document update conflict on '%s'", e.ID)
}

// StatusCode returns the HTTP status of the condition.
func (e *DocumentConflict) StatusCode() int { return http.StatusConflict }

// HTTPStatus returns the HTTP status of the condition.
func (e *DocumentConflict) HTTPStatus() int { return http.StatusConflict }

// IllegalName is returned when the server rejects a database name outright.
// The server reports the rejection as an internal error, but the condition is
// caller input, so it gets its own type rather than a lifecycle error.
type IllegalName struct {
	Name string
}

func (e *IllegalName) Error() string {
	return fmt.Sprintf("couch: illegal database name '%s': only lowercase characters (a-z), digits (0-9), and any of the characters _, $, (, ), +, -, and / are allowed; must begin with a letter", e.Name)
}

// StatusCode returns the HTTP status of the condition.
func (e *IllegalName) StatusCode() int { return http.StatusBadRequest }

// HTTPStatus returns the HTTP status of the condition.
func (e *IllegalName) HTTPStatus() int { return http.StatusBadRequest }

// MarshalError reports a request body the codec could not encode. Nothing was
// sent on the wire.
type MarshalError struct {
	Err error
}

func (e *MarshalError) Error() string {
	return "couch: marshal request: " + e.Err.Error()
}

// Unwrap returns the codec's error.
func (e *MarshalError) Unwrap() error { return e.Err }

// UnmarshalError reports a response body the codec could not decode. It is
// distinct from a protocol-level status mismatch; the request itself
// completed.
type UnmarshalError struct {
	Err error
}

func (e *UnmarshalError) Error() string {
	return "couch: unmarshal response: " + e.Err.Error()
}

// Unwrap returns the codec's error.
func (e *UnmarshalError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status embedded in err, or 0 if err carries
// none.
func StatusCode(err error) int {
	var sc interface{ StatusCode() int }
	if xerrors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}
