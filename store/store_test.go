// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dsnet/pagelink/page"
	"github.com/google/go-cmp/cmp"
)

func TestCheckUser(t *testing.T) {
	var vectors = []struct {
		id string
		ok bool
	}{
		{"alice", true},
		{"user_42-B", true},
		{"", false},
		{"../etc", false},
		{"a/b", false},
		{"a.b", false},
		{"имя", false},
		{string(make([]byte, maxUserLen+1)), false},
	}

	for i, v := range vectors {
		err := checkUser(v.id)
		if ok := err == nil; ok != v.ok {
			t.Errorf("test %d, checkUser(%q) = %v, want ok=%v", i, v.id, err, v.ok)
		}
	}
}

func TestDigest(t *testing.T) {
	a := Digest([]byte(`{"a":1}`))
	if a != Digest([]byte(`{"a":1}`)) {
		t.Errorf("Digest is not deterministic")
	}
	if a == Digest([]byte(`{"a":2}`)) {
		t.Errorf("Digest collision on trivially different inputs")
	}
}

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	if _, err := s.Get(ctx, "alice"); err != ErrNotFound {
		t.Errorf("Get of missing user: got %v, want %v", err, ErrNotFound)
	}
	if err := s.Delete(ctx, "alice"); err != ErrNotFound {
		t.Errorf("Delete of missing user: got %v, want %v", err, ErrNotFound)
	}

	want := page.Default()
	if err := s.Put(ctx, "alice", want); err != nil {
		t.Fatalf("Put: unexpected error: %v", err)
	}
	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	// The stored document must not alias the caller's.
	got.Profile.Username = "@changed"
	if again, _ := s.Get(ctx, "alice"); again.Profile.Username != want.Profile.Username {
		t.Errorf("stored document was modified through a returned value")
	}

	want.Remove("text-1")
	if err := s.Put(ctx, "alice", want); err != nil {
		t.Fatalf("second Put: unexpected error: %v", err)
	}
	if got, _ := s.Get(ctx, "alice"); got == nil || got.Find("text-1") >= 0 {
		t.Errorf("second Put did not replace the document")
	}

	if err := s.Put(ctx, "alice", &page.Document{}); !errors.Is(err, page.ErrInvalid) {
		t.Errorf("Put of invalid document: got %v, want %v", err, page.ErrInvalid)
	}
	if err := s.Put(ctx, "../alice", want); err != ErrInvalidUser {
		t.Errorf("Put with bad user: got %v, want %v", err, ErrInvalidUser)
	}
	if _, err := s.Get(ctx, ""); err != ErrInvalidUser {
		t.Errorf("Get with bad user: got %v, want %v", err, ErrInvalidUser)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.Get(cctx, "alice"); err != context.Canceled {
		t.Errorf("Get with canceled context: got %v, want %v", err, context.Canceled)
	}

	if err := s.Delete(ctx, "alice"); err != nil {
		t.Errorf("Delete: unexpected error: %v", err)
	}
	if _, err := s.Get(ctx, "alice"); err != ErrNotFound {
		t.Errorf("Get after Delete: got %v, want %v", err, ErrNotFound)
	}
}

func testConcurrent(t *testing.T, s Store) {
	ctx := context.Background()
	users := []string{"u0", "u1", "u2", "u3"}

	var wg sync.WaitGroup
	for _, u := range users {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(u string) {
				defer wg.Done()
				if err := s.Put(ctx, u, page.Default()); err != nil {
					t.Errorf("Put(%s): unexpected error: %v", u, err)
				}
				if _, err := s.Get(ctx, u); err != nil {
					t.Errorf("Get(%s): unexpected error: %v", u, err)
				}
			}(u)
		}
	}
	wg.Wait()
}

func TestMemStore(t *testing.T) {
	testStore(t, new(MemStore))
	testConcurrent(t, new(MemStore))
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "docs"))
	if err != nil {
		t.Fatalf("NewFileStore: unexpected error: %v", err)
	}
	defer s.Close()
	testStore(t, s)
	testConcurrent(t, s)
}

func TestFileStoreUnchanged(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: unexpected error: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	d := page.Default()
	for i := 0; i < 3; i++ {
		if err := s.Put(ctx, "bob", d); err != nil {
			t.Fatalf("Put: unexpected error: %v", err)
		}
	}
	if s.writes != 1 {
		t.Errorf("identical documents: got %d writes, want 1", s.writes)
	}

	// A file removed behind the store's back is written again.
	if err := os.Remove(filepath.Join(dir, "bob"+fileExt)); err != nil {
		t.Fatalf("Remove: unexpected error: %v", err)
	}
	if err := s.Put(ctx, "bob", d); err != nil {
		t.Fatalf("Put: unexpected error: %v", err)
	}
	d.ChatbotEnabled = false
	if err := s.Put(ctx, "bob", d); err != nil {
		t.Fatalf("Put: unexpected error: %v", err)
	}
	if s.writes != 3 {
		t.Errorf("changed documents: got %d writes, want 3", s.writes)
	}

	// A second store over the same directory reads what the first wrote.
	s2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: unexpected error: %v", err)
	}
	defer s2.Close()
	got, err := s2.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files, want 1 (temporary files left behind?)", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: unexpected error: %v", err)
	}
	defer s.Close()

	if err := os.WriteFile(filepath.Join(dir, "eve"+fileExt), []byte("not zstd"), 0o644); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}
	if _, err := s.Get(context.Background(), "eve"); err == nil || err == ErrNotFound {
		t.Errorf("Get of corrupt file: got %v, want a decode error", err)
	}
}
