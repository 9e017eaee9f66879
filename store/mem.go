// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"sync"

	"github.com/dsnet/pagelink/page"
)

// MemStore keeps documents in memory. The zero value is ready to use.
//
// Documents are held in serialized form so that callers never share
// state with the store.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func (s *MemStore) Get(ctx context.Context, userID string) (*page.Document, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	b, ok := s.docs[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return page.Unmarshal(b)
}

func (s *MemStore) Put(ctx context.Context, userID string, d *page.Document) error {
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
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs == nil {
		s.docs = make(map[string][]byte)
	}
	s.docs[userID] = b
	return nil
}

func (s *MemStore) Delete(ctx context.Context, userID string) error {
	if err := checkUser(userID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[userID]; !ok {
		return ErrNotFound
	}
	delete(s.docs, userID)
	return nil
}
