// Package jsoncodec registers the JSON codec, which every CouchDB endpoint
// speaks natively.
package jsoncodec

import (
	"encoding/json"

	"github.com/go-kivik/couch/codec"
)

type cdc struct{}

func init() {
	codec.Register(&cdc{})
}

func (c *cdc) ContentType() string {
	return "application/json"
}

func (c *cdc) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c *cdc) Unmarshal(p []byte, v interface{}) error {
	return json.Unmarshal(p, v)
}
