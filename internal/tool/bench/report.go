// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/dsnet/golib/unitconv"
)

// Default option values.
const (
	DefaultLevels = "1,6,9"
	DefaultSizes  = "1e3,1e4,1e5"
	DefaultFiles  = "default.json,shop.json"
)

var (
	testToEnum = map[string]int{
		"encRate": TestEncodeRate,
		"decRate": TestDecodeRate,
		"ratio":   TestCompressRatio,
	}
	enumToTest = map[int]string{
		TestEncodeRate:    "encRate",
		TestDecodeRate:    "decRate",
		TestCompressRatio: "ratio",
	}
)

// Options selects the benchmarks that Run performs.
// Each of the strings is a list separated by commas or colons.
type Options struct {
	Tests  string
	Codecs string
	Files  string
	Levels string
	Sizes  string
}

// DefaultTests lists all tests.
func DefaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

// DefaultCodecs lists all registered codecs with "lz" first, since the other
// results are reported relative to the first column.
func DefaultCodecs() string {
	m := make(map[string]bool)
	for k := range Encoders {
		m[k] = true
	}
	for k := range Decoders {
		m[k] = true
	}
	hasLZ := m["lz"]
	delete(m, "lz")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasLZ {
		s = append([]string{"lz"}, s...)
	}
	return strings.Join(s, ",")
}

var sep = regexp.MustCompile("[,:]")

// Run performs the selected benchmarks and prints a table for each test.
func Run(w io.Writer, opts Options) error {
	var tests, levels, sizes []int
	codecs := sep.Split(opts.Codecs, -1)
	files := sep.Split(opts.Files, -1)
	for _, s := range sep.Split(opts.Tests, -1) {
		t, ok := testToEnum[s]
		if !ok {
			return fmt.Errorf("bench: invalid test %q", s)
		}
		tests = append(tests, t)
	}
	for _, s := range sep.Split(opts.Levels, -1) {
		lvl, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil {
			return fmt.Errorf("bench: invalid level %q", s)
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(opts.Sizes, -1) {
		nf, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil {
			return fmt.Errorf("bench: invalid size %q", s)
		}
		sizes = append(sizes, int(nf))
	}

	var encs, decs []string
	for _, c := range codecs {
		if _, ok := Encoders[c]; ok {
			encs = append(encs, c)
		}
		if _, ok := Decoders[c]; ok {
			decs = append(decs, c)
		}
	}

	for _, t := range tests {
		var results [][]Result
		var names, cols []string
		var title, suffix string

		// Check that we can actually do this bench.
		fmt.Fprintf(w, "BENCHMARK: %s\n", enumToTest[t])
		if len(encs) == 0 {
			fmt.Fprintf(w, "\tSKIP: There are no encoders available.\n\n")
			continue
		}
		if len(decs) == 0 && t == TestDecodeRate {
			fmt.Fprintf(w, "\tSKIP: There are no decoders available.\n\n")
			continue
		}

		// Perform the bench. This may take some time.
		switch t {
		case TestEncodeRate:
			cols, title, suffix = encs, "MB/s", ""
			results, names = BenchmarkEncoderSuite(encs, files, levels, sizes, nil)
		case TestDecodeRate:
			cols, title, suffix = decs, "MB/s", ""
			results, names = BenchmarkDecoderSuite(decs, files, levels, sizes, nil)
		case TestCompressRatio:
			cols, title, suffix = encs, "ratio", "x"
			results, names = BenchmarkRatioSuite(encs, files, levels, sizes, nil)
		}

		printResults(w, results, names, cols, title, suffix)
		fmt.Fprintln(w)
	}
	return nil
}

func printResults(w io.Writer, results [][]Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Fprint(w, "\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Fprint(w, row[i])
		}
		fmt.Fprintln(w)
	}
}
