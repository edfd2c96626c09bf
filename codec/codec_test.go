package codec

import (
	"testing"

	"gitlab.com/flimzy/testy"
)

type fake struct {
	ct string
}

func (f *fake) ContentType() string                 { return f.ct }
func (f *fake) Marshal(interface{}) ([]byte, error) { return nil, nil }
func (f *fake) Unmarshal([]byte, interface{}) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	c := &fake{ct: "application/x-fake"}
	Register(c)
	found, err := Get("application/x-fake")
	if err != nil {
		t.Fatal(err)
	}
	if found != c {
		t.Error("Got a different codec back")
	}
	listed := false
	for _, ct := range ContentTypes() {
		if ct == "application/x-fake" {
			listed = true
		}
	}
	if !listed {
		t.Error("Content type not listed")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	Register(&fake{ct: "application/x-dup"})
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(&fake{ct: "application/x-dup"})
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("application/x-nonesuch")
	testy.Error(t, "No codec for content type 'application/x-nonesuch'", err)
}
