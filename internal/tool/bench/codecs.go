// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"encoding/base64"
	"io"

	"github.com/dsnet/pagelink/lzstring"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// The general-purpose codecs emit binary, so their output is wrapped in
// standard Base64 to match the alphabet of lzstring.
func init() {
	RegisterEncoder("lz",
		func(w io.Writer, lvl int) io.WriteCloser {
			return lzstring.NewWriter(w)
		})
	RegisterDecoder("lz",
		func(r io.Reader) io.ReadCloser {
			return lzstring.NewReader(r)
		})

	RegisterEncoder("flate",
		func(w io.Writer, lvl int) io.WriteCloser {
			bw := base64.NewEncoder(base64.StdEncoding, w)
			zw, err := flate.NewWriter(bw, lvl)
			if err != nil {
				panic(err)
			}
			return &chainCloser{zw, bw}
		})
	RegisterDecoder("flate",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(base64.NewDecoder(base64.StdEncoding, r))
		})

	RegisterEncoder("zstd",
		func(w io.Writer, lvl int) io.WriteCloser {
			bw := base64.NewEncoder(base64.StdEncoding, w)
			zw, err := zstd.NewWriter(bw,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(lvl)),
				zstd.WithEncoderConcurrency(1))
			if err != nil {
				panic(err)
			}
			return &chainCloser{zw, bw}
		})
	RegisterDecoder("zstd",
		func(r io.Reader) io.ReadCloser {
			zr, err := zstd.NewReader(base64.NewDecoder(base64.StdEncoding, r),
				zstd.WithDecoderConcurrency(1))
			if err != nil {
				panic(err)
			}
			return zr.IOReadCloser()
		})

	RegisterEncoder("xz",
		func(w io.Writer, lvl int) io.WriteCloser {
			bw := base64.NewEncoder(base64.StdEncoding, w)
			zw, err := xz.NewWriter(bw)
			if err != nil {
				panic(err)
			}
			return &chainCloser{zw, bw}
		})
	RegisterDecoder("xz",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(base64.NewDecoder(base64.StdEncoding, r))
			if err != nil {
				return errReader{err}
			}
			return io.NopCloser(zr)
		})
}

// chainCloser writes through the first stream and closes both in order.
type chainCloser struct {
	io.WriteCloser
	next io.Closer
}

func (c *chainCloser) Close() error {
	if err := c.WriteCloser.Close(); err != nil {
		return err
	}
	return c.next.Close()
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return r.err }
