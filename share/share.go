// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package share turns page documents into share links and back.
//
// A share link carries the whole document in a single query parameter as
// lzstring wire text. Nothing is stored on the server side.
package share

import (
	"fmt"
	"net/url"

	"github.com/dsnet/pagelink/lzstring"
	"github.com/dsnet/pagelink/page"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "share: " + string(e) }

var (
	// ErrNoData reports a link without the data parameter.
	ErrNoData error = Error("link has no data parameter")

	// ErrTooLong reports wire text longer than MaxDataLen.
	ErrTooLong error = Error("data parameter is too long")
)

const (
	// Param is the query parameter that holds the encoded document.
	Param = "data"

	// MaxLinkLen is the longest link that is known to survive common
	// browsers and messengers. Longer links are still produced.
	MaxLinkLen = 2000

	// MaxDataLen is the longest wire text that Decode accepts. The decoded
	// size can grow with the square of the wire size, so the input is
	// bounded well below what a URL could carry.
	MaxDataLen = 4 * MaxLinkLen
)

// Encode returns the wire text of d.
func Encode(d *page.Document) (string, error) {
	b, err := page.Marshal(d)
	if err != nil {
		return "", err
	}
	return lzstring.CompressToBase64(string(b)), nil
}

// Decode parses wire text produced by Encode. Codec failures are returned
// wrapped so that errors.Is can match lzstring.ErrCorrupt and friends.
// Wire text longer than MaxDataLen is rejected with ErrTooLong.
func Decode(s string) (*page.Document, error) {
	if len(s) > MaxDataLen {
		return nil, ErrTooLong
	}
	text, err := lzstring.DecompressFromBase64(s)
	if err != nil {
		return nil, fmt.Errorf("share: decode: %w", err)
	}
	return page.Unmarshal([]byte(text))
}

// Link returns base with the wire text of d set as the data parameter.
// Other query parameters of base are kept.
func Link(base string, d *page.Document) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	data, err := Encode(d)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(Param, data)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Load decodes the document carried by a share link.
func Load(rawURL string) (*page.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	data := u.Query().Get(Param)
	if data == "" {
		return nil, ErrNoData
	}
	return Decode(data)
}

// LoadOrDefault is Load with a fallback to the starter page when the link
// carries no usable document. It reports whether the shared document was used.
func LoadOrDefault(rawURL string) (*page.Document, bool) {
	d, err := Load(rawURL)
	if err != nil {
		return page.Default(), false
	}
	return d, true
}

// TooLong reports whether link exceeds MaxLinkLen.
func TooLong(link string) bool {
	return len(link) > MaxLinkLen
}
