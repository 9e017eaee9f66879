// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import (
	"testing"
	"unicode/utf8"
)

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "a", "ABABABABAB", "Привет, мир! 🎉", `{"blocks":[]}`} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}
		output, err := DecompressFromBase64(CompressToBase64(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output != input {
			t.Fatalf("output mismatch:\ngot  %q\nwant %q", output, input)
		}
	})
}

func FuzzDecompressFromBase64(f *testing.F) {
	for _, s := range []string{"", "QAA=", "IIIV7EgA", "////", "AAAA", "not-valid-base64-@@@"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		output, err := DecompressFromBase64(input)
		switch err {
		case nil:
		case ErrEmpty, ErrTruncated, ErrCorrupt:
			if output != "" {
				t.Fatalf("output with error %v: got %q", err, output)
			}
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
