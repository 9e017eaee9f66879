// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "unicode/utf16"

// EncodeUTF16 returns the UTF-16 code units of s. Invalid UTF-8 sequences
// are encoded as U+FFFD.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 returns the UTF-8 text of the code units in u. Unpaired
// surrogates are decoded as U+FFFD.
func DecodeUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}

// CompressToBase64 compresses s and returns its Base64 wire text.
// The result only contains characters from [A-Za-z0-9+/=].
func CompressToBase64(s string) string {
	return encodeBase64(Compress(EncodeUTF16(s)))
}

// DecompressFromBase64 decodes wire text produced by CompressToBase64.
// It never panics. The error is ErrEmpty if s holds no Base64 symbols,
// ErrTruncated if the stream ends early, and ErrCorrupt if the stream is
// structurally invalid.
func DecompressFromBase64(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	u, err := Decompress(decodeBase64(s))
	if err != nil {
		return "", err
	}
	return DecodeUTF16(u), nil
}

// CompressToBase64Ptr is CompressToBase64 for an optional input.
// A nil input yields the empty string.
func CompressToBase64Ptr(s *string) string {
	if s == nil {
		return ""
	}
	return CompressToBase64(*s)
}

// DecompressFromBase64Ptr is DecompressFromBase64 for callers that model
// failure as an absent result. A nil input yields a pointer to the empty
// string. Empty or corrupt input yields nil. A truncated stream yields a
// pointer to the empty string.
func DecompressFromBase64Ptr(s *string) *string {
	var out string
	if s == nil {
		return &out
	}
	out, err := DecompressFromBase64(*s)
	switch err {
	case nil, ErrTruncated:
		return &out
	default:
		return nil
	}
}
