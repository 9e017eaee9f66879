// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io"
	"io/ioutil"
)

// ResizeText resizes the UTF-8 text in input. If n < 0, then the original
// input will be returned as is. If n <= len(input), then the input will be
// truncated, backing off to the nearest rune boundary. However, if
// n > len(input), then the input will be replicated to fill in the missing
// bytes, but the ASCII letters of each replicated copy will be rotated to
// avoid favoring codecs with large dictionaries. Multi-byte runes are copied
// unchanged, so the output remains valid UTF-8 if the input was.
//
// If n > len(input), then len(input) must be > 0.
func ResizeText(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		for n > 0 && n < len(input) && input[n]&0xc0 == 0x80 {
			n-- // Do not split a multi-byte rune
		}
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var rot byte
	output := make([]byte, 0, n+len(input))
	for len(output) < n {
		for _, c := range input {
			switch {
			case 'a' <= c && c <= 'z':
				c = 'a' + (c-'a'+rot)%26
			case 'A' <= c && c <= 'Z':
				c = 'A' + (c-'A'+rot)%26
			}
			output = append(output, c)
		}
		rot = (rot + 1) % 26
	}
	return ResizeText(output, n)
}

// LoadFile loads a file and resizes it to n bytes using ResizeText.
func LoadFile(file string, n int) ([]byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ResizeText(b, n), nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBitGen must decode a BitGen formatted string or else panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BuggyReader returns Err after N bytes have been read from R.
type BuggyReader struct {
	R   io.Reader
	N   int64 // Number of valid bytes to read
	Err error // Return this error after N bytes
}

func (br *BuggyReader) Read(buf []byte) (int, error) {
	if int64(len(buf)) > br.N {
		buf = buf[:br.N]
	}
	n, err := br.R.Read(buf)
	br.N -= int64(n)
	if err == nil && br.N <= 0 {
		return n, br.Err
	}
	return n, err
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}
