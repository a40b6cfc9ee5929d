/*
 * Copyright 2024 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package server exposes the binary and printable solvers over HTTP, returning
// JSON. A printable search that finds nothing answers 422 with ok=false, never
// with an all-zero patch.
package server

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.opencensus.io/zpages"
	"golang.org/x/net/trace"

	"github.com/dgraph-io/forcecrc/force"
	"github.com/dgraph-io/forcecrc/y"
)

// Response is the JSON body of every solve endpoint.
type Response struct {
	Kind     string `json:"kind"`
	State    string `json:"state"`
	Target   string `json:"target"`
	Alphabet string `json:"alphabet,omitempty"`
	Patch    string `json:"patch,omitempty"`
	Hex      string `json:"hex,omitempty"`
	Bytes    []int  `json:"bytes,omitempty"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}

// Server serves solve requests.
type Server struct {
	opt   Options
	cache *resultCache
	mux   *http.ServeMux
}

// New builds a Server and its routes.
func New(opt Options) (*Server, error) {
	if opt.Logger == nil {
		opt.Logger = y.DefaultLogger()
	}
	cache, err := newResultCache(opt.CacheEntries, opt.MetricsEnabled)
	if err != nil {
		return nil, err
	}
	s := &Server{opt: opt, cache: cache, mux: http.NewServeMux()}
	s.mux.HandleFunc("/v1/binary", s.handleBinary)
	s.mux.HandleFunc("/v1/ascii", s.handleASCII)
	if opt.DebugPages {
		s.mux.Handle("/debug/vars", expvar.Handler())
		s.mux.HandleFunc("/debug/requests", trace.Traces)
		s.mux.HandleFunc("/debug/events", trace.Events)
		zpages.Handle(s.mux, "/z")
	}
	return s, nil
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler { return s.mux }

// Close releases the result cache.
func (s *Server) Close() { s.cache.close() }

// ListenAndServe serves on opt.Addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opt.Addr)
	if err != nil {
		return errors.Wrapf(err, "while listening on %s", s.opt.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.mux, ReadHeaderTimeout: 10 * time.Second}
	s.opt.Logger.Infof("Serving on %s, result cache of %s entries",
		ln.Addr(), humanize.Comma(s.opt.CacheEntries))

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "while shutting down")
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

type request struct {
	state, target uint32
	alphabet      force.Alphabet
	padding       []byte
}

func parseRequest(r *http.Request, withAlphabet bool) (request, error) {
	var req request
	var err error
	q := r.URL.Query()
	if req.state, err = force.ParseUint32(q.Get("state")); err != nil {
		return req, errors.Wrap(err, "state")
	}
	if req.target, err = force.ParseUint32(q.Get("target")); err != nil {
		return req, errors.Wrap(err, "target")
	}
	if !withAlphabet {
		return req, nil
	}
	if req.alphabet, err = force.ParseAlphabet(q.Get("alphabet")); err != nil {
		return req, err
	}
	if p := q.Get("padding"); p != "" {
		req.padding = []byte(p)
	}
	return req, nil
}

func (s *Server) handleBinary(w http.ResponseWriter, r *http.Request) {
	tr := trace.New("forcecrc.Binary", r.URL.Path)
	defer tr.Finish()
	ctx := trace.NewContext(r.Context(), tr)

	req, err := parseRequest(r, false)
	if err != nil {
		y.TraceError(ctx, err)
		s.writeJSON(w, http.StatusBadRequest, &Response{Kind: "binary", Error: err.Error()})
		return
	}
	key := cacheKey("binary", req.state, req.target, "", nil)
	if resp, ok := s.cache.get(key); ok {
		y.Trace(ctx, "cache hit")
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	y.NumSolvesAdd(s.opt.MetricsEnabled, "binary", 1)
	p := force.Binary(req.state, req.target)
	resp := &Response{
		Kind:   "binary",
		State:  hex32(req.state),
		Target: hex32(req.target),
		Hex:    p.String(),
		Bytes:  ints(p[:]),
		OK:     true,
	}
	y.Trace(ctx, "state %s target %s patch %s", resp.State, resp.Target, resp.Hex)
	s.cache.set(key, resp)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleASCII(w http.ResponseWriter, r *http.Request) {
	tr := trace.New("forcecrc.ASCII", r.URL.Path)
	defer tr.Finish()
	ctx := trace.NewContext(r.Context(), tr)

	req, err := parseRequest(r, true)
	if err != nil {
		y.TraceError(ctx, err)
		s.writeJSON(w, http.StatusBadRequest, &Response{Kind: "ascii", Error: err.Error()})
		return
	}
	resp := &Response{
		Kind:     "ascii",
		State:    hex32(req.state),
		Target:   hex32(req.target),
		Alphabet: req.alphabet.Name(),
	}
	solver, err := force.New(force.DefaultOptions().
		WithAlphabet(req.alphabet).
		WithPadding(req.padding).
		WithMetricsEnabled(s.opt.MetricsEnabled))
	if err != nil {
		y.TraceError(ctx, err)
		resp.Error = err.Error()
		s.writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	key := cacheKey("ascii", req.state, req.target, req.alphabet.String(), req.padding)
	if cached, ok := s.cache.get(key); ok {
		y.Trace(ctx, "cache hit")
		s.writeJSON(w, statusFor(cached), cached)
		return
	}

	if s.opt.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opt.SolveTimeout)
		defer cancel()
	}
	p, err := solver.ASCII(ctx, req.state, req.target)
	switch {
	case err == nil:
		resp.OK = true
		resp.Patch = p.String()
		resp.Hex = p.Hex()
		resp.Bytes = ints(p[:])
		y.Trace(ctx, "state %s target %s patch %q", resp.State, resp.Target, resp.Patch)
		s.cache.set(key, resp)
	case errors.Is(err, force.ErrNoSolution):
		y.TraceError(ctx, err)
		resp.Error = err.Error()
		// Exhaustion is deterministic, so it is cached like a success.
		s.cache.set(key, resp)
	default:
		y.TraceError(ctx, err)
		s.opt.Logger.Warningf("printable search for %s from %s: %v", resp.Target, resp.State, err)
		resp.Error = err.Error()
		s.writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	s.writeJSON(w, statusFor(resp), resp)
}

func statusFor(r *Response) int {
	if r.OK {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.opt.Logger.Errorf("while writing response: %v", err)
	}
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

func ints(p []byte) []int {
	out := make([]int, len(p))
	for i, b := range p {
		out[i] = int(b)
	}
	return out
}
