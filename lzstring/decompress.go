// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// Decompress decodes a stream produced by Compress.
//
// The possible outcomes are distinct:
//	- ErrEmpty with a nil result if src is empty.
//	- ErrTruncated with an empty result if src ends before the end code.
//	- ErrCorrupt with a nil result if src references a missing entry.
//	- A nil error and the decoded code units otherwise.
//
// A stream holding only the end code decodes to an empty, non-nil slice.
func Decompress(src []uint16) (dst []uint16, err error) {
	if len(src) == 0 {
		return nil, ErrEmpty
	}
	var d decompressor
	d.Init(src)
	defer errRecover(&err)
	return d.Decode()
}

// decompressor rebuilds the dictionary of a single encoding pass.
type decompressor struct {
	br    bitReader
	width codeWidth
	dict  [][]uint16 // Entries indexed by code; reserved codes are nil
}

func (d *decompressor) Init(src []uint16) {
	*d = decompressor{
		width: codeWidth{nb: 3, enlarge: 4},
		dict:  make([][]uint16, numReserved, 256),
	}
	d.br.Init(src)
}

// Decode runs the decoding loop. It panics with ErrCorrupt on a bad reference.
func (d *decompressor) Decode() ([]uint16, error) {
	// The first unit is always a literal, announced with a 2-bit code.
	var u uint16
	switch d.br.ReadBits(2) {
	case codeLiteral8:
		u = uint16(d.br.ReadBits(8))
	case codeLiteral16:
		u = uint16(d.br.ReadBits(16))
	case codeEnd:
		return []uint16{}, nil
	default:
		panic(ErrCorrupt)
	}
	w := []uint16{u}
	d.dict = append(d.dict, w)
	out := []uint16{u}

	for {
		if d.br.Exhausted() {
			return []uint16{}, ErrTruncated
		}

		code := int(d.br.ReadBits(d.width.nb))
		switch code {
		case codeLiteral8, codeLiteral16:
			nb := uint(8)
			if code == codeLiteral16 {
				nb = 16
			}
			d.dict = append(d.dict, []uint16{uint16(d.br.ReadBits(nb))})
			code = len(d.dict) - 1
			d.width.Tick()
		case codeEnd:
			return out, nil
		}

		var entry []uint16
		switch {
		case code < len(d.dict):
			entry = d.dict[code]
		case code == len(d.dict):
			// The encoder used the entry it was about to create.
			entry = extend(w, w[0])
		default:
			panic(ErrCorrupt)
		}
		out = append(out, entry...)

		d.dict = append(d.dict, extend(w, entry[0]))
		d.width.Tick()
		w = entry
	}
}

// extend returns a new slice holding s followed by u.
func extend(s []uint16, u uint16) []uint16 {
	e := make([]uint16, len(s)+1)
	copy(e, s)
	e[len(s)] = u
	return e
}
