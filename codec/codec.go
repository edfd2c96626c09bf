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

// Package codec provides pluggable codecs for request and response bodies.
package codec

import (
	"fmt"
	"sort"
)

// Codec translates between structured values and wire bytes for one content
// type.
type Codec interface {
	ContentType() string
	Marshal(interface{}) ([]byte, error)
	Unmarshal([]byte, interface{}) error
}

var codecs = map[string]Codec{}
var contentTypes = []string{}

// Register makes c available under its content type.
func Register(c Codec) {
	ct := c.ContentType()
	if _, ok := codecs[ct]; ok {
		panic(fmt.Sprintf("Codec for content type '%s' already registered", ct))
	}
	codecs[ct] = c
	contentTypes = append(contentTypes, ct)
	sort.Strings(contentTypes)
}

// Get returns the codec registered for contentType.
func Get(contentType string) (Codec, error) {
	c, ok := codecs[contentType]
	if !ok {
		return nil, fmt.Errorf("No codec for content type '%s'", contentType)
	}
	return c, nil
}

// ContentTypes returns the registered content types.
func ContentTypes() []string {
	return contentTypes
}
