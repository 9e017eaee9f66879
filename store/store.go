// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package store persists page documents keyed by user id.
package store

import (
	"context"

	"github.com/dchest/siphash"
	"github.com/dsnet/pagelink/page"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "store: " + string(e) }

var (
	// ErrNotFound reports that no document is stored for the user.
	ErrNotFound error = Error("document not found")

	// ErrInvalidUser reports a user id that cannot be used as a key.
	ErrInvalidUser error = Error("invalid user id")
)

// Store is a collection of documents, one per user.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the document of the user or ErrNotFound.
	Get(ctx context.Context, userID string) (*page.Document, error)

	// Put replaces the document of the user.
	Put(ctx context.Context, userID string, d *page.Document) error

	// Delete removes the document of the user or returns ErrNotFound.
	Delete(ctx context.Context, userID string) error
}

const maxUserLen = 64

// checkUser accepts ids made of ASCII letters, digits, '-', and '_'.
// The same ids are safe as file names.
func checkUser(id string) error {
	if id == "" || len(id) > maxUserLen {
		return ErrInvalidUser
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '_':
		default:
			return ErrInvalidUser
		}
	}
	return nil
}

// Fixed keys so that digests are stable across processes.
const (
	digestKey0 = 0x706167656c696e6b
	digestKey1 = 0x646f63756d656e74
)

// Digest returns a 64-bit fingerprint of the serialized document b.
// It is not a cryptographic commitment.
func Digest(b []byte) uint64 {
	return siphash.Hash(digestKey0, digestKey1, b)
}
