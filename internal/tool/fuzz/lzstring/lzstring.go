// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package lzstring

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/dsnet/pagelink/lzstring"
	"github.com/dsnet/pagelink/page"
	"github.com/dsnet/pagelink/share"
)

func Fuzz(data []byte) int {
	s, ok := testDecoders(data)
	if ok {
		testDocument(s)
	}
	if utf8.Valid(data) {
		testEncoder(string(data))
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders tests that the one-shot and streaming decoders agree on the
// input treated as wire text.
func testDecoders(data []byte) (string, bool) {
	s, err := lzstring.DecompressFromBase64(string(data))
	zr := lzstring.NewReader(bytes.NewReader(data))
	b, rerr := io.ReadAll(zr)

	switch {
	case err == nil && rerr == nil:
		if string(b) != s {
			panic("mismatching output")
		}
		if err := zr.Close(); err != nil {
			panic(err)
		}
		return s, true
	case err != rerr:
		panic("mismatching errors")
	case s != "" || len(b) != 0:
		panic("output on error")
	default:
		return "", false
	}
}

// testEncoder tests that any text survives a round trip.
func testEncoder(s string) {
	wire := lzstring.CompressToBase64(s)
	got, err := lzstring.DecompressFromBase64(wire)
	if err != nil {
		panic(err)
	}
	if got != s {
		panic("mismatching round trip")
	}
}

// testDocument tests that a decoded text which happens to be a valid page
// document also survives the share link encoding.
func testDocument(s string) {
	d, err := page.Unmarshal([]byte(s))
	if err != nil {
		return
	}
	data, err := share.Encode(d)
	if err != nil {
		panic(err)
	}
	d2, err := share.Decode(data)
	if err == share.ErrTooLong {
		return
	}
	if err != nil {
		panic(err)
	}
	b1, err1 := page.Marshal(d)
	b2, err2 := page.Marshal(d2)
	if err1 != nil || err2 != nil || !bytes.Equal(b1, b2) {
		panic("mismatching document")
	}
}
