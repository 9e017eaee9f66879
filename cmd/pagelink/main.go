// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command pagelink encodes page documents into share links and serves them.
//
// Example usage:
//
//	$ echo 'hello hello hello' | pagelink encode
//	BYUwNmD2AEoTcoCggAA=
//	$ pagelink link -base https://example.com/ < page.json
//	$ pagelink load 'https://example.com/?data=...'
//	$ pagelink serve -config pagelink.yaml
//	$ pagelink bench -tests ratio -sizes 1e4
//
// The decode command exits with status 1 if the input is corrupt and with
// status 2 if it is truncated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dsnet/pagelink/internal/tool/bench"
	"github.com/dsnet/pagelink/lzstring"
	"github.com/dsnet/pagelink/page"
	"github.com/dsnet/pagelink/server"
	"github.com/dsnet/pagelink/share"
	"github.com/dsnet/pagelink/store"
)

const (
	exitCorrupt   = 1
	exitTruncated = 2
	exitUsage     = 64
)

var commands = map[string]func(args []string) error{
	"encode": cmdEncode,
	"decode": cmdDecode,
	"link":   cmdLink,
	"load":   cmdLoad,
	"serve":  cmdServe,
	"bench":  cmdBench,
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pagelink encode|decode|link|load|serve|bench [flags]\n")
	os.Exit(exitUsage)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pagelink: ")
	if len(os.Args) < 2 {
		usage()
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		usage()
	}
	if err := cmd(os.Args[2:]); err != nil {
		log.Print(err)
		if errors.Is(err, lzstring.ErrTruncated) {
			os.Exit(exitTruncated)
		}
		os.Exit(exitCorrupt)
	}
}

// cmdEncode reads text from stdin and writes its wire text to stdout.
func cmdEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	fs.Parse(args)

	zw := lzstring.NewWriter(os.Stdout)
	if _, err := io.Copy(zw, os.Stdin); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// cmdDecode reads wire text from stdin and writes the decoded text to stdout.
func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(args)

	zr := lzstring.NewReader(os.Stdin)
	if _, err := io.Copy(os.Stdout, zr); err != nil {
		return err
	}
	return zr.Close()
}

// cmdLink reads a document from stdin (JSON, or YAML with -yaml) and prints
// its share link.
func cmdLink(args []string) error {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	base := fs.String("base", "http://localhost:8080/", "Base URL of the share link")
	useYAML := fs.Bool("yaml", false, "Read the document as YAML")
	fs.Parse(args)

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	unmarshal := page.Unmarshal
	if *useYAML {
		unmarshal = page.UnmarshalYAML
	}
	d, err := unmarshal(b)
	if err != nil {
		return err
	}
	link, err := share.Link(*base, d)
	if err != nil {
		return err
	}
	if share.TooLong(link) {
		log.Printf("warning: link is %d bytes, longer than %d", len(link), share.MaxLinkLen)
	}
	fmt.Println(link)
	return nil
}

// cmdLoad prints the document carried by a share link.
func cmdLoad(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	useYAML := fs.Bool("yaml", false, "Print the document as YAML")
	fallback := fs.Bool("default", false, "Print the starter page if the link is unusable")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("load: expected one URL argument")
	}

	var d *page.Document
	if *fallback {
		var shared bool
		if d, shared = share.LoadOrDefault(fs.Arg(0)); !shared {
			log.Print("link has no usable document; using the starter page")
		}
	} else {
		var err error
		if d, err = share.Load(fs.Arg(0)); err != nil {
			return err
		}
	}

	marshal := page.MarshalIndent
	if *useYAML {
		marshal = page.MarshalYAML
	}
	b, err := marshal(d)
	if err != nil {
		return err
	}
	os.Stdout.Write(b)
	if !*useYAML {
		fmt.Println()
	}
	return nil
}

// cmdServe runs the HTTP service until interrupted.
func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	config := fs.String("config", "", "Path to a YAML configuration file")
	addr := fs.String("addr", "", "Listen address; overrides the configuration")
	fs.Parse(args)

	cfg := server.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = server.LoadConfig(*config); err != nil {
			return err
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	var st store.Store = new(store.MemStore)
	if cfg.StoreDir != "" {
		fst, err := store.NewFileStore(cfg.StoreDir)
		if err != nil {
			return err
		}
		defer fst.Close()
		st = fst
	}

	lg := log.New(os.Stderr, "", log.LstdFlags)
	h, err := server.New(cfg, st, lg)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()

	lg.Printf("listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// cmdBench compares lzstring with general-purpose compressors.
func cmdBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	tests := fs.String("tests", bench.DefaultTests(), "List of different benchmark tests")
	codecs := fs.String("codecs", bench.DefaultCodecs(), "List of codecs to benchmark")
	paths := fs.String("paths", "testdata", "List of paths to search for test files")
	files := fs.String("files", bench.DefaultFiles, "List of input files to benchmark")
	levels := fs.String("levels", bench.DefaultLevels, "List of compression levels to benchmark")
	sizes := fs.String("sizes", bench.DefaultSizes, "List of input sizes to benchmark")
	fs.Parse(args)

	for _, p := range strings.Split(*paths, ",") {
		bench.Paths = append(bench.Paths, filepath.Clean(p))
	}
	ts := time.Now()
	err := bench.Run(os.Stdout, bench.Options{
		Tests:  *tests,
		Codecs: *codecs,
		Files:  *files,
		Levels: *levels,
		Sizes:  *sizes,
	})
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
	return err
}
