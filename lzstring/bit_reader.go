// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// bitReader reads bits from 16-bit words in the order bitWriter wrote them.
// Reads past the end of the input produce zero bits; callers detect the end
// of input with Exhausted.
type bitReader struct {
	src  []uint16
	idx  int    // Index of the word being read
	mask uint16 // Mask selecting the next bit of src[idx]
}

func (br *bitReader) Init(src []uint16) {
	*br = bitReader{src: src, mask: 0x8000}
}

// ReadBits reads nb bits and assembles them least-significant bit first.
func (br *bitReader) ReadBits(nb uint) (v uint) {
	for i := uint(0); i < nb; i++ {
		if br.idx < len(br.src) && br.src[br.idx]&br.mask != 0 {
			v |= 1 << i
		}
		br.mask >>= 1
		if br.mask == 0 {
			br.mask = 0x8000
			br.idx++
		}
	}
	return v
}

// Exhausted reports whether every bit of the input has been consumed.
func (br *bitReader) Exhausted() bool {
	return br.idx >= len(br.src)
}
