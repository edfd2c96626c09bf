// Package rawcodec registers a pass-through codec for callers that want the
// wire bytes untouched.
package rawcodec

import (
	"errors"

	"github.com/go-kivik/couch/codec"
)

type cdc struct{}

func init() {
	codec.Register(&cdc{})
}

func (c *cdc) ContentType() string {
	return "application/octet-stream"
}

func (c *cdc) Marshal(v interface{}) ([]byte, error) {
	p, ok := v.([]byte)
	if !ok {
		return nil, errors.New("rawcodec: body must be []byte")
	}
	return p, nil
}

func (c *cdc) Unmarshal(p []byte, v interface{}) error {
	dst, ok := v.(*[]byte)
	if !ok {
		return errors.New("rawcodec: destination must be *[]byte")
	}
	*dst = append([]byte(nil), p...)
	return nil
}
