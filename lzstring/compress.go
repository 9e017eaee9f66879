// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// Compress encodes a sequence of UTF-16 code units as a stream of 16-bit
// words. It never fails. An empty src still produces a stream holding the
// end-of-stream code.
func Compress(src []uint16) []uint16 {
	var c compressor
	c.Init()
	for _, u := range src {
		c.WriteUnit(u)
	}
	return c.Finish()
}

// compressor holds the state of a single encoding pass.
//
// Every dictionary entry other than a single code unit is some existing entry
// extended by one unit, so entries are keyed by the code of their prefix
// together with their last unit.
type compressor struct {
	bw      bitWriter
	width   codeWidth
	units   map[uint16]int // Code of each single code unit seen so far
	pairs   map[uint64]int // Code of each prefix code and trailing unit
	pending map[int]uint16 // Single-unit codes not yet sent as literals
	size    int            // Next unused code
	w       int            // Code of the current match; -1 if none
}

func (c *compressor) Init() {
	*c = compressor{
		width:   codeWidth{nb: 2, enlarge: 2},
		units:   make(map[uint16]int),
		pairs:   make(map[uint64]int),
		pending: make(map[int]uint16),
		size:    numReserved,
		w:       -1,
	}
}

// WriteUnit feeds the next code unit of the input.
func (c *compressor) WriteUnit(u uint16) {
	code, ok := c.units[u]
	if !ok {
		code = c.size
		c.units[u] = code
		c.pending[code] = u
		c.size++
	}
	if c.w < 0 {
		c.w = code
		return
	}

	key := uint64(c.w)<<16 | uint64(u)
	if next, ok := c.pairs[key]; ok {
		c.w = next
		return
	}
	c.emit(c.w)
	c.pairs[key] = c.size
	c.size++
	c.w = code
}

// Finish flushes the current match, writes the end-of-stream code, and
// returns the padded stream.
func (c *compressor) Finish() []uint16 {
	if c.w >= 0 {
		c.emit(c.w)
		c.w = -1
	}
	c.bw.WriteBits(codeEnd, c.width.nb)
	return c.bw.Flush()
}

// emit writes the code for the current match. The first time a single code
// unit is emitted, it is sent as a literal behind an escape code instead,
// which costs an extra tick of the width counter.
func (c *compressor) emit(code int) {
	if u, ok := c.pending[code]; ok {
		if u < 256 {
			c.bw.WriteBits(codeLiteral8, c.width.nb)
			c.bw.WriteBits(uint(u), 8)
		} else {
			c.bw.WriteBits(codeLiteral16, c.width.nb)
			c.bw.WriteBits(uint(u), 16)
		}
		c.width.Tick()
		delete(c.pending, code)
	} else {
		c.bw.WriteBits(uint(code), c.width.nb)
	}
	c.width.Tick()
}
