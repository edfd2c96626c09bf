package transport

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "hello")
	}))
	defer srv.Close()
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Default().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello" {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestClient(t *testing.T) {
	client := &http.Client{}
	trans := Client(client)
	if trans.(*defaultTransport).client != client {
		t.Error("Client was not injected")
	}
}

func TestMock(t *testing.T) {
	called := false
	mock := &Mock{
		DoFunc: func(*http.Request) (*http.Response, error) {
			called = true
			return nil, nil
		},
	}
	if _, err := mock.Do(nil); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("DoFunc was not called")
	}
}
