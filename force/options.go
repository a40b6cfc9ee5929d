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

package force

// Options configure a Solver.
//
// Use DefaultOptions and the With* setters rather than building the struct by
// hand.
type Options struct {
	// Alphabet the printable solver draws every patch byte from.
	Alphabet Alphabet

	// Padding is where the search over the two leading padding bytes starts.
	// It must be two members of Alphabet. When empty the search starts at the
	// first member for both bytes, which is "  " for Printable.
	Padding []byte

	// MetricsEnabled turns on the expvar counters in package y.
	MetricsEnabled bool
}

// DefaultOptions searches the printable ASCII alphabet from "  ".
func DefaultOptions() Options {
	return Options{
		Alphabet:       Printable,
		MetricsEnabled: true,
	}
}

// WithAlphabet returns a new Options value with Alphabet set to the given value.
func (opt Options) WithAlphabet(a Alphabet) Options {
	opt.Alphabet = a
	return opt
}

// WithPadding returns a new Options value with Padding set to the given value.
func (opt Options) WithPadding(p []byte) Options {
	opt.Padding = p
	return opt
}

// WithMetricsEnabled returns a new Options value with MetricsEnabled set to the given value.
func (opt Options) WithMetricsEnabled(val bool) Options {
	opt.MetricsEnabled = val
	return opt
}
