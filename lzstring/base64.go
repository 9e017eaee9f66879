// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "strings"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padChar  = '='

	symPad     = 64   // Symbol value of padChar
	symInvalid = 0xff // Symbol value of characters outside the alphabet
)

var decodeLUT [256]uint8

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = symInvalid
	}
	for i := 0; i < len(alphabet); i++ {
		decodeLUT[alphabet[i]] = uint8(i)
	}
	decodeLUT[padChar] = symPad
}

// octet is a byte of a 3-byte group that may be missing at the end of the
// input. A missing octet contributes zero bits to its neighbors.
type octet struct {
	val byte
	ok  bool
}

// wordBytes returns the i-th byte of words taken as big-endian byte pairs.
func wordBytes(words []uint16, i int) octet {
	if i >= 2*len(words) {
		return octet{}
	}
	w := words[i/2]
	if i%2 == 0 {
		return octet{byte(w >> 8), true}
	}
	return octet{byte(w), true}
}

// encodeBase64 packs every 3 bytes of words into 4 symbols. An incomplete
// final group is padded with one or two padChar symbols.
func encodeBase64(words []uint16) string {
	n := 2 * len(words)
	var sb strings.Builder
	sb.Grow((n + 2) / 3 * 4)
	for i := 0; i < n; i += 3 {
		b0, b1, b2 := wordBytes(words, i), wordBytes(words, i+1), wordBytes(words, i+2)
		sb.WriteByte(alphabet[b0.val>>2])
		sb.WriteByte(alphabet[(b0.val&0x03)<<4|b1.val>>4])
		if !b1.ok {
			sb.WriteString("==")
			continue
		}
		sb.WriteByte(alphabet[(b1.val&0x0f)<<2|b2.val>>6])
		if !b2.ok {
			sb.WriteByte(padChar)
			continue
		}
		sb.WriteByte(alphabet[b2.val&0x3f])
	}
	return sb.String()
}

// decodeBase64 reverses encodeBase64. Spaces are read as '+' since some URL
// transports turn '+' into a space. Other characters outside the alphabet
// are dropped. A short final group is treated as if it were padded, and a
// group with fewer than two symbols yields no bytes.
func decodeBase64(s string) []uint16 {
	syms := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			c = '+'
		}
		if v := decodeLUT[c]; v != symInvalid {
			syms = append(syms, v)
		}
	}

	buf := make([]byte, 0, len(syms)/4*3+3)
	for len(syms) > 0 {
		g := [4]uint8{symPad, symPad, symPad, symPad}
		syms = syms[copy(g[:], syms):]

		if g[0] == symPad || g[1] == symPad {
			continue // A lone symbol holds less than a byte
		}
		buf = append(buf, g[0]<<2|g[1]>>4)
		if g[2] == symPad {
			continue
		}
		buf = append(buf, g[1]<<4|g[2]>>2)
		if g[3] == symPad {
			continue
		}
		buf = append(buf, g[2]<<6|g[3])
	}

	words := make([]uint16, (len(buf)+1)/2)
	for i, b := range buf {
		if i%2 == 0 {
			words[i/2] = uint16(b) << 8
		} else {
			words[i/2] |= uint16(b)
		}
	}
	return words
}
