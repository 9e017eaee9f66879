// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package server serves share links and per-user documents over HTTP.
//
// Routes:
//
//	POST /share          document JSON -> {"data": ..., "link": ...}
//	GET  /load?data=...  wire text -> document JSON; 414 if data is too long
//	GET  /users/{id}     stored document JSON
//	PUT  /users/{id}     store the document JSON in the body
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dsnet/pagelink/page"
	"github.com/dsnet/pagelink/share"
	"github.com/dsnet/pagelink/store"
	"github.com/juju/ratelimit"
)

// Server is an http.Handler for the share service.
type Server struct {
	cfg     Config
	maxBody int64
	store   store.Store
	bucket  *ratelimit.Bucket
	log     *log.Logger
	mux     *http.ServeMux
}

// New returns a Server backed by st. Request logs go to lg, which may be nil.
func New(cfg Config, st store.Store, lg *log.Logger) (*Server, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	n, _ := cfg.maxBody()
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	s := &Server{
		cfg:     cfg,
		maxBody: n,
		store:   st,
		bucket:  ratelimit.NewBucketWithRate(cfg.Rate, cfg.burst()),
		log:     lg,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("/share", s.handleShare)
	s.mux.HandleFunc("/load", s.handleLoad)
	s.mux.HandleFunc("/users/", s.handleUser)
	return s, nil
}

// statusWriter records the response status for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
	n      int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.n += n
	return n, err
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w}
	defer func() {
		s.log.Printf("%s %s %s %d %dB %v", r.RemoteAddr, r.Method, r.URL.Path, sw.status, sw.n, time.Since(start))
	}()

	if s.bucket.TakeAvailable(1) == 0 {
		sw.Header().Set("Retry-After", "1")
		httpError(sw, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}
	if r.Body != nil {
		r.Body = http.MaxBytesReader(sw, r.Body, s.maxBody)
	}
	s.mux.ServeHTTP(sw, r)
}

type shareResponse struct {
	Data    string `json:"data"`
	Link    string `json:"link"`
	TooLong bool   `json:"tooLong,omitempty"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	d, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	link, err := share.Link(s.cfg.BaseURL, d)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := share.Encode(d)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{Data: data, Link: link, TooLong: share.TooLong(link)})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	data := r.URL.Query().Get(share.Param)
	if data == "" {
		httpError(w, http.StatusBadRequest, share.ErrNoData.Error())
		return
	}
	if len(data) > share.MaxDataLen {
		httpError(w, http.StatusRequestURITooLong, share.ErrTooLong.Error())
		return
	}
	d, err := share.Decode(data)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/users/")
	switch r.Method {
	case http.MethodGet:
		d, err := s.store.Get(r.Context(), id)
		if err != nil {
			storeError(w, err)
			return
		}
		b, err := page.Marshal(d)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		etag := fmt.Sprintf(`"%016x"`, store.Digest(b))
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	case http.MethodPut:
		d, ok := s.readDocument(w, r)
		if !ok {
			return
		}
		if err := s.store.Put(r.Context(), id, d); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut)
	}
}

// readDocument parses the request body. On failure it writes the response
// and returns false.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (*page.Document, bool) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			httpError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			httpError(w, http.StatusBadRequest, err.Error())
		}
		return nil, false
	}
	d, err := page.Unmarshal(b)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return d, true
}

func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidUser):
		httpError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, page.ErrInvalid):
		httpError(w, http.StatusBadRequest, err.Error())
	default:
		httpError(w, http.StatusInternalServerError, err.Error())
	}
}

func methodNotAllowed(w http.ResponseWriter, methods ...string) {
	w.Header().Set("Allow", strings.Join(methods, ", "))
	httpError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
