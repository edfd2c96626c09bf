// Package yamlcodec registers a YAML codec, for proxies and test harnesses
// that negotiate YAML bodies.
package yamlcodec

import (
	"github.com/icza/dyno"
	"gopkg.in/yaml.v2"

	"github.com/go-kivik/couch/codec"
)

type cdc struct{}

func init() {
	codec.Register(&cdc{})
}

func (c *cdc) ContentType() string {
	return "application/yaml"
}

func (c *cdc) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *cdc) Unmarshal(p []byte, v interface{}) error {
	if err := yaml.Unmarshal(p, v); err != nil {
		return err
	}
	// yaml.v2 produces interface-keyed maps
	if m, ok := v.(*map[string]interface{}); ok {
		*m = dyno.ConvertMapI2MapS(*m).(map[string]interface{})
	}
	return nil
}
