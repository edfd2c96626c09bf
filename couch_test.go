package couch

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/flimzy/testy"

	"github.com/go-kivik/couch/codec"
)

func TestBaseURL(t *testing.T) {
	type tt struct {
		host     string
		port     int
		expected string
	}
	tests := testy.NewTable()
	tests.Add("localhost", tt{
		host:     "localhost",
		port:     5984,
		expected: "http://localhost:5984/",
	})
	tests.Add("remote", tt{
		host:     "couch.example.com",
		port:     80,
		expected: "http://couch.example.com:80/",
	})
	tests.Run(t, func(t *testing.T, tt tt) {
		s := NewServer(tt.host, tt.port)
		if u := s.BaseURL(); u != tt.expected {
			t.Errorf("Unexpected URL: %s", u)
		}
	})
}

func TestNewServerDefaults(t *testing.T) {
	s := NewServer("localhost", 5984)
	if s.transport == nil {
		t.Error("No default transport")
	}
	if s.codec == nil || s.codec.ContentType() != "application/json" {
		t.Error("No default JSON codec")
	}
}

func TestWithCodec(t *testing.T) {
	c, err := codec.Get("application/json")
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer("localhost", 5984, WithCodec(c))
	if s.codec != c {
		t.Error("Codec was not injected")
	}
}

func TestNoCredentials(t *testing.T) {
	rec := &capture{}
	if _, err := testServer(rec.wrap(respond(200, `[]`))).AllDBs(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := rec.requests[0].BasicAuth(); ok {
		t.Error("Unexpected credentials on request")
	}
}

// TestPutGetRoundTrip drives Put then Get against a miniature in-memory
// server and expects a structurally equal document back, modulo the revision
// the server adds.
func TestPutGetRoundTrip(t *testing.T) {
	var stored []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPut:
			stored, _ = ioutil.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"ok":true,"id":"invoice-17","rev":"1-abc"}`)
		case http.MethodGet:
			var doc map[string]interface{}
			if err := json.Unmarshal(stored, &doc); err != nil {
				t.Error(err)
				return
			}
			doc["_id"] = "invoice-17"
			doc["_rev"] = "1-abc"
			p, err := json.Marshal(doc)
			if err != nil {
				t.Error(err)
				return
			}
			_, _ = w.Write(p)
		}
	}))
	defer srv.Close()

	db := liveServer(t, srv).DB("invoices")
	ctx := context.Background()
	submitted := map[string]interface{}{"total": 99.5, "customer": "acme"}
	rev, err := db.Put(ctx, "invoice-17", submitted)
	if err != nil {
		t.Fatal(err)
	}
	if rev != "1-abc" {
		t.Errorf("Unexpected revision: %s", rev)
	}

	var fetched map[string]interface{}
	rev, err = db.Get(ctx, "invoice-17", &fetched)
	if err != nil {
		t.Fatal(err)
	}
	if rev != "1-abc" {
		t.Errorf("Unexpected revision: %s", rev)
	}
	expected := map[string]interface{}{
		"_id":      "invoice-17",
		"_rev":     "1-abc",
		"total":    99.5,
		"customer": "acme",
	}
	if d := testy.DiffInterface(expected, fetched); d != nil {
		t.Error(d)
	}
}
