// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "io"

// Writer collects UTF-8 text and writes its Base64 wire text to the
// underlying io.Writer when closed. The codec is not incremental, so nothing
// is written before Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes passed to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  io.Writer
	buf []byte // Text collected so far
	err error  // Persistent error
}

func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close encodes the collected text and writes it out. It does not close the
// underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == io.ErrClosedPipe {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	n, err := io.WriteString(zw.wr, CompressToBase64(string(zw.buf)))
	zw.OutputOffset += int64(n)
	if err != nil {
		zw.err = err
		return err
	}
	zw.buf = nil
	zw.err = io.ErrClosedPipe
	return nil
}

func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{wr: w, buf: zw.buf[:0]}
}
