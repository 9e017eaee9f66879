// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzstring implements a dictionary-based string codec that turns text
// into short Base64 strings suitable for embedding in a URL query parameter.
//
// The codec is an LZW variant that operates on UTF-16 code units. Codes are
// written with a width that starts at 2 bits and grows as the dictionary
// grows. Characters that have never been seen are transmitted inline as
// literals behind a reserved escape code, so the dictionary is never sent.
//
// The compressed form is a sequence of 16-bit words. The wire form is the
// Base64 encoding of those words taken as big-endian byte pairs.
//
// The wire format has no version, length, or checksum. A corrupted string may
// decode into plausible but wrong text.
package lzstring

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzstring: " + string(e) }

var (
	// ErrEmpty reports that there was nothing to decode.
	ErrEmpty error = Error("empty input")

	// ErrTruncated reports that the input ran out before the end-of-stream
	// code was read.
	ErrTruncated error = Error("stream is truncated")

	// ErrCorrupt reports that the input referenced a dictionary entry that
	// could not have been created yet.
	ErrCorrupt error = Error("stream is corrupted")
)

// Reserved codes. Dictionary entries start right after them.
const (
	codeLiteral8  = 0 // An 8-bit character follows
	codeLiteral16 = 1 // A 16-bit character follows
	codeEnd       = 2 // End of stream

	numReserved = 3
)

// codeWidth tracks the number of bits used for each code. Both directions of
// the codec must tick it at exactly the same points in the stream.
type codeWidth struct {
	nb      uint // Current code width in bits
	enlarge int  // Codes left before the width grows
}

// Tick records one emitted unit and widens the code when the budget for the
// current width is spent.
func (cw *codeWidth) Tick() {
	cw.enlarge--
	if cw.enlarge == 0 {
		cw.enlarge = 1 << cw.nb
		cw.nb++
	}
}

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
