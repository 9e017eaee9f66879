// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dsnet/pagelink/page"
	"github.com/klauspost/compress/zstd"
)

const fileExt = ".json.zst"

// FileStore keeps one zstd-compressed JSON file per user in a directory.
//
// Writes go to a temporary file that is renamed into place, so a reader
// never observes a partially written document. A Put of a document that is
// identical to the one last seen for the user does not touch the disk.
type FileStore struct {
	root string
	enc  *zstd.Encoder
	dec  *zstd.Decoder

	mu      sync.Mutex
	digests map[string]uint64 // Digest of the JSON last read or written
	writes  int               // Number of files written
}

// NewFileStore returns a store rooted at dir, creating it if needed.
// The store must be closed to release the codec resources.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &FileStore{root: dir, enc: enc, dec: dec, digests: make(map[string]uint64)}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.root, userID+fileExt)
}

func (s *FileStore) Get(ctx context.Context, userID string) (*page.Document, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	zb, err := os.ReadFile(s.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b, err := s.dec.DecodeAll(zb, nil)
	if err != nil {
		return nil, fmt.Errorf("store: user %s: %w", userID, err)
	}
	d, err := page.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.digests[userID] = Digest(b)
	s.mu.Unlock()
	return d, nil
}

func (s *FileStore) Put(ctx context.Context, userID string, d *page.Document) error {
	if err := checkUser(userID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	b, err := page.Marshal(d)
	if err != nil {
		return err
	}
	sum := Digest(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.digests[userID]; ok && old == sum {
		if _, err := os.Stat(s.path(userID)); err == nil {
			return nil
		}
	}
	if err := s.writeFile(userID, s.enc.EncodeAll(b, nil)); err != nil {
		return err
	}
	s.digests[userID] = sum
	s.writes++
	return nil
}

func (s *FileStore) writeFile(userID string, b []byte) (err error) {
	f, err := os.CreateTemp(s.root, userID+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), s.path(userID))
}

func (s *FileStore) Delete(ctx context.Context, userID string) error {
	if err := checkUser(userID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.digests, userID)
	err := os.Remove(s.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// Close releases the codec resources. The store must not be used afterwards.
func (s *FileStore) Close() error {
	s.dec.Close()
	return s.enc.Close()
}
