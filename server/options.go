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

package server

import (
	"time"

	"github.com/dgraph-io/forcecrc/y"
)

// Options are params for creating a Server.
type Options struct {
	// Address to listen on, host:port.
	Addr string

	// Maximum number of cached solve results. Zero disables the cache.
	CacheEntries int64

	// Upper bound on a single printable search. Requests inherit it as a
	// context deadline.
	SolveTimeout time.Duration

	// Publish expvar counters for solves and cache use.
	MetricsEnabled bool

	// Mount /debug/requests, /debug/vars and the OpenCensus pages under /z.
	DebugPages bool

	Logger y.Logger
}

// DefaultOptions listens on localhost:8080 with a result cache of 64k entries.
func DefaultOptions() Options {
	return Options{
		Addr:           "localhost:8080",
		CacheEntries:   1 << 16,
		SolveTimeout:   5 * time.Second,
		MetricsEnabled: true,
		DebugPages:     true,
		Logger:         y.DefaultLogger(),
	}
}

// WithAddr returns a new Options value with Addr set to the given value.
func (opt Options) WithAddr(val string) Options {
	opt.Addr = val
	return opt
}

// WithCacheEntries returns a new Options value with CacheEntries set to the given value.
func (opt Options) WithCacheEntries(val int64) Options {
	opt.CacheEntries = val
	return opt
}

// WithSolveTimeout returns a new Options value with SolveTimeout set to the given value.
func (opt Options) WithSolveTimeout(val time.Duration) Options {
	opt.SolveTimeout = val
	return opt
}

// WithMetricsEnabled returns a new Options value with MetricsEnabled set to the given value.
func (opt Options) WithMetricsEnabled(val bool) Options {
	opt.MetricsEnabled = val
	return opt
}

// WithDebugPages returns a new Options value with DebugPages set to the given value.
func (opt Options) WithDebugPages(val bool) Options {
	opt.DebugPages = val
	return opt
}

// WithLogger returns a new Options value with Logger set to the given value.
func (opt Options) WithLogger(val y.Logger) Options {
	opt.Logger = val
	return opt
}
