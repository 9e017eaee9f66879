// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import (
	"io"
	"io/ioutil"
)

// Reader decodes Base64 wire text read from an underlying io.Reader.
// The whole input is consumed on the first call to Read, since the stream
// cannot be decoded in parts.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     io.Reader
	toRead []byte // Decoded text ready to be emitted from Read
	err    error  // Persistent error
}

func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		zr.decode()
	}
}

// decode reads all input and decodes it. It always leaves zr.err set.
func (zr *Reader) decode() {
	in, err := ioutil.ReadAll(zr.rd)
	zr.InputOffset += int64(len(in))
	if err != nil {
		zr.err = err
		return
	}
	s, err := DecompressFromBase64(string(in))
	if err != nil {
		zr.err = err
		return
	}
	zr.toRead = []byte(s)
	zr.err = io.EOF
}

func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == io.ErrClosedPipe {
		zr.toRead = nil // Make sure future reads fail
		zr.err = io.ErrClosedPipe
		return nil
	}
	return zr.err // Return the persistent error
}

func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{rd: r}
}
