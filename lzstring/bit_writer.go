// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// bitWriter packs bits into 16-bit words, filling each word starting from its
// most-significant bit.
type bitWriter struct {
	words []uint16
	val   uint16 // Word currently being filled
	pos   uint   // Number of bits already in val
}

// WriteBits writes the lower nb bits of v, least-significant bit first.
func (bw *bitWriter) WriteBits(v uint, nb uint) {
	for i := uint(0); i < nb; i++ {
		bw.val = bw.val<<1 | uint16(v&1)
		v >>= 1
		if bw.pos == 15 {
			bw.words = append(bw.words, bw.val)
			bw.val, bw.pos = 0, 0
		} else {
			bw.pos++
		}
	}
}

// Flush pads the last word with zero bits and returns all words written.
// If the stream is already word aligned, a whole word of padding is emitted.
func (bw *bitWriter) Flush() []uint16 {
	for {
		bw.val <<= 1
		if bw.pos == 15 {
			bw.words = append(bw.words, bw.val)
			break
		}
		bw.pos++
	}
	bw.val, bw.pos = 0, 0
	return bw.words
}
