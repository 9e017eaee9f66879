// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// String returns a string of n runes drawn from runes.
func (r *Rand) String(n int, runes []rune) string {
	s := make([]rune, n)
	for i := range s {
		s[i] = runes[r.Intn(len(runes))]
	}
	return string(s)
}

// Units returns n arbitrary UTF-16 code units, including unpaired surrogates.
func (r *Rand) Units(n int) []uint16 {
	u := make([]uint16, n)
	for i := range u {
		switch r.Intn(4) {
		case 0:
			u[i] = uint16(r.Intn(128)) // ASCII
		case 1:
			u[i] = uint16(r.Intn(256)) // Latin-1
		case 2:
			u[i] = uint16('a' + r.Intn(4)) // Repetitive
		default:
			u[i] = uint16(r.Intn(1 << 16))
		}
	}
	return u
}
