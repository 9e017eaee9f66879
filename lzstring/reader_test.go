// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/dsnet/pagelink/internal/testutil"
)

func TestReader(t *testing.T) {
	errFail := errors.New("fail")

	var vectors = []struct {
		desc   string    // Description of the test
		input  io.Reader // Test input
		output string    // Expected output string
		inIdx  int64     // Expected input offset after reading
		outIdx int64     // Expected output offset after reading
		err    error     // Expected error
	}{{
		desc:  "empty input",
		input: strings.NewReader(""),
		err:   ErrEmpty,
	}, {
		desc:   "single character",
		input:  strings.NewReader("IJA=\n"),
		output: "A",
		inIdx:  5,
		outIdx: 1,
	}, {
		desc:   "multi-byte text",
		input:  strings.NewReader("vgggEQQcIITCCKwghCIANAAkDwgYQEIGB4NwkftA"),
		output: "Привет, мир! 🎉",
		inIdx:  40,
		outIdx: int64(len("Привет, мир! 🎉")),
	}, {
		desc:  "truncated stream",
		input: strings.NewReader("BYUwNg=="),
		inIdx: 8,
		err:   ErrTruncated,
	}, {
		desc:  "corrupted stream",
		input: strings.NewReader("////"),
		inIdx: 4,
		err:   ErrCorrupt,
	}, {
		desc:  "read error",
		input: &testutil.BuggyReader{R: strings.NewReader("IIIV7EgA"), N: 4, Err: errFail},
		inIdx: 4,
		err:   errFail,
	}}

	for i, v := range vectors {
		rd := NewReader(v.input)
		output, err := ioutil.ReadAll(rd)
		if cerr := rd.Close(); cerr != err {
			t.Errorf("test %d, %s\nclose error mismatch: got %v, want %v", i, v.desc, cerr, err)
		}
		if err != v.err {
			t.Errorf("test %d, %s\nerror mismatch: got %v, want %v", i, v.desc, err, v.err)
		}
		if string(output) != v.output {
			t.Errorf("test %d, %s\noutput mismatch: got %q, want %q", i, v.desc, output, v.output)
		}
		if rd.InputOffset != v.inIdx {
			t.Errorf("test %d, %s\ninput offset mismatch: got %d, want %d", i, v.desc, rd.InputOffset, v.inIdx)
		}
		if rd.OutputOffset != v.outIdx {
			t.Errorf("test %d, %s\noutput offset mismatch: got %d, want %d", i, v.desc, rd.OutputOffset, v.outIdx)
		}
	}
}

func TestReaderClosed(t *testing.T) {
	rd := NewReader(strings.NewReader("IJA="))
	if _, err := ioutil.ReadAll(rd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rd.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := rd.Read(make([]byte, 1)); err != io.ErrClosedPipe {
		t.Errorf("read after close: got %v, want %v", err, io.ErrClosedPipe)
	}

	rd.Reset(strings.NewReader("IIIV7EgA"))
	output, err := ioutil.ReadAll(rd)
	if err != nil || string(output) != "ABABABABAB" {
		t.Errorf("read after reset: got (%q, %v), want (\"ABABABABAB\", nil)", output, err)
	}
}

func TestWriter(t *testing.T) {
	errFail := errors.New("fail")

	var vectors = []struct {
		desc   string   // Description of the test
		writes []string // Chunks passed to Write
		output string   // Expected output wire text
		limit  int64    // Bytes accepted by the underlying writer; <0 is unlimited
		err    error    // Expected error from Close
	}{{
		desc:   "no writes",
		output: "QAA=",
		limit:  -1,
	}, {
		desc:   "single write",
		writes: []string{"ABABABABAB"},
		output: "IIIV7EgA",
		limit:  -1,
	}, {
		desc:   "rune split across writes",
		writes: []string{"Привет, мир! \xf0\x9f", "\x8e\x89"},
		output: "vgggEQQcIITCCKwghCIANAAkDwgYQEIGB4NwkftA",
		limit:  -1,
	}, {
		desc:   "write error",
		writes: []string{"ABABABABAB"},
		output: "IIIV",
		limit:  4,
		err:    errFail,
	}}

	for i, v := range vectors {
		var buf bytes.Buffer
		var w io.Writer = &buf
		if v.limit >= 0 {
			w = &testutil.BuggyWriter{W: &buf, N: v.limit, Err: errFail}
		}

		wr := NewWriter(w)
		var n int64
		for _, s := range v.writes {
			cnt, err := io.WriteString(wr, s)
			if err != nil {
				t.Errorf("test %d, %s\nunexpected write error: %v", i, v.desc, err)
			}
			n += int64(cnt)
		}
		if err := wr.Close(); err != v.err {
			t.Errorf("test %d, %s\nclose error mismatch: got %v, want %v", i, v.desc, err, v.err)
		}
		if got := buf.String(); got != v.output {
			t.Errorf("test %d, %s\noutput mismatch: got %q, want %q", i, v.desc, got, v.output)
		}
		if wr.InputOffset != n {
			t.Errorf("test %d, %s\ninput offset mismatch: got %d, want %d", i, v.desc, wr.InputOffset, n)
		}
		if wr.OutputOffset != int64(len(v.output)) {
			t.Errorf("test %d, %s\noutput offset mismatch: got %d, want %d", i, v.desc, wr.OutputOffset, len(v.output))
		}
	}
}

func TestWriterClosed(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	if err := wr.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Errorf("second close: got %v, want nil", err)
	}
	if _, err := wr.Write([]byte("a")); err != io.ErrClosedPipe {
		t.Errorf("write after close: got %v, want %v", err, io.ErrClosedPipe)
	}
	if buf.String() != "QAA=" {
		t.Errorf("output mismatch: got %q, want \"QAA=\"", buf.String())
	}
}
