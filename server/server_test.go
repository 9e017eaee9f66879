// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/pagelink/page"
	"github.com/dsnet/pagelink/share"
	"github.com/dsnet/pagelink/store"
	"github.com/google/go-cmp/cmp"
)

func newServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg, new(store.MemStore), nil)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	return s
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseURL = "https://example.com/p"
	cfg.Rate = 1000
	return cfg
}

func do(s http.Handler, method, target string, body []byte, hdr ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	for i := 0; i+1 < len(hdr); i += 2 {
		r.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func mustMarshal(t *testing.T, d *page.Document) []byte {
	t.Helper()
	b, err := page.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: unexpected error: %v", err)
	}
	return b
}

func TestShareAndLoad(t *testing.T) {
	s := newServer(t, testConfig())
	want := page.Default()

	w := do(s, http.MethodPost, "/share", mustMarshal(t, want))
	if w.Code != http.StatusOK {
		t.Fatalf("POST /share: got status %d, want %d: %s", w.Code, http.StatusOK, w.Body)
	}
	var resp shareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response: unexpected error: %v", err)
	}
	if !strings.HasPrefix(resp.Link, "https://example.com/p?data=") {
		t.Errorf("link has wrong prefix: %s", resp.Link)
	}
	if resp.TooLong != share.TooLong(resp.Link) {
		t.Errorf("tooLong mismatch: got %v", resp.TooLong)
	}

	w = do(s, http.MethodGet, "/load?data="+url.QueryEscape(resp.Data), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /load: got status %d, want %d: %s", w.Code, http.StatusOK, w.Body)
	}
	got, err := page.Unmarshal(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	s := newServer(t, testConfig())

	var vectors = []struct {
		method string
		target string
		body   string
		status int
	}{
		{http.MethodGet, "/share", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/share", "{", http.StatusBadRequest},
		{http.MethodPost, "/share", `{"blocks":[]}`, http.StatusBadRequest},
		{http.MethodPost, "/load", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/load", "", http.StatusBadRequest},
		{http.MethodGet, "/load?data=%2F%2F%2F%2F", "", http.StatusUnprocessableEntity},
		{http.MethodGet, "/load?data=AAAA", "", http.StatusUnprocessableEntity},
		{http.MethodGet, "/users/nobody", "", http.StatusNotFound},
		{http.MethodGet, "/users/a.b", "", http.StatusBadRequest},
		{http.MethodDelete, "/users/alice", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
		{http.MethodGet, "/load?data=" + strings.Repeat("A", share.MaxDataLen+1), "", http.StatusRequestURITooLong},
	}

	for i, v := range vectors {
		w := do(s, v.method, v.target, []byte(v.body))
		if w.Code != v.status {
			t.Errorf("test %d, %s %.32s: got status %d, want %d: %s", i, v.method, v.target, w.Code, v.status, w.Body)
		}
	}
}

func TestUsers(t *testing.T) {
	s := newServer(t, testConfig())
	want := page.Default()

	w := do(s, http.MethodPut, "/users/alice", mustMarshal(t, want))
	if w.Code != http.StatusNoContent {
		t.Fatalf("PUT: got status %d, want %d: %s", w.Code, http.StatusNoContent, w.Body)
	}

	w = do(s, http.MethodGet, "/users/alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET: got status %d, want %d: %s", w.Code, http.StatusOK, w.Body)
	}
	got, err := page.Unmarshal(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("GET: missing ETag")
	}
	w = do(s, http.MethodGet, "/users/alice", nil, "If-None-Match", etag)
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional GET: got status %d, want %d", w.Code, http.StatusNotModified)
	}

	w = do(s, http.MethodPut, "/users/alice", []byte(`{"profile":{}}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("PUT invalid: got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBody = "1Ki"
	s := newServer(t, cfg)

	w := do(s, http.MethodPost, "/share", mustMarshal(t, page.Default()))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("got status %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = 0.001
	cfg.Burst = 2
	s := newServer(t, cfg)

	var codes []int
	for i := 0; i < 3; i++ {
		codes = append(codes, do(s, http.MethodGet, "/users/nobody", nil).Code)
	}
	want := []int{http.StatusNotFound, http.StatusNotFound, http.StatusTooManyRequests}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Errorf("status codes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pagelink.yaml")
	const text = "addr: \":9000\"\nmaxBody: 128Ki\nrate: 5\nstoreDir: /tmp/docs\n"
	if err := os.WriteFile(file, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}

	got, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("LoadConfig: unexpected error: %v", err)
	}
	want := DefaultConfig()
	want.Addr = ":9000"
	want.MaxBody = "128Ki"
	want.Rate = 5
	want.StoreDir = "/tmp/docs"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if n, _ := got.maxBody(); n != 128<<10 {
		t.Errorf("maxBody: got %d, want %d", n, 128<<10)
	}
	if b := got.burst(); b != 5 {
		t.Errorf("burst: got %d, want 5", b)
	}

	var vectors = []string{
		"maxBody: lots\n",
		"rate: 0\n",
		"unknownField: 1\n",
	}
	for i, v := range vectors {
		file := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(file, []byte(v), 0o644); err != nil {
			t.Fatalf("WriteFile: unexpected error: %v", err)
		}
		if _, err := LoadConfig(file); err == nil {
			t.Errorf("test %d, LoadConfig(%q): got nil error", i, v)
		}
	}
}
