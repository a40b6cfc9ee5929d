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

import (
	"context"
	"encoding/hex"

	"github.com/dgraph-io/forcecrc/crc"
	"github.com/dgraph-io/forcecrc/y"

	"github.com/pkg/errors"
)

// ASCIILen is the length of a printable patch: two padding bytes followed by a
// four byte suffix.
const ASCIILen = 2 + BinaryLen

// ASCIIPatch is a six byte patch drawn from an Alphabet.
type ASCIIPatch [ASCIILen]byte

func (p ASCIIPatch) String() string { return string(p[:]) }

// Hex returns the patch hex encoded.
func (p ASCIIPatch) Hex() string { return hex.EncodeToString(p[:]) }

// Solver computes patches for a fixed set of Options. It is immutable and safe
// for concurrent use.
type Solver struct {
	opt    Options
	start0 int
	start1 int
}

var defaultSolver, _ = New(DefaultOptions())

// New validates opt and returns a Solver. It fails with ErrInvalidAlphabet
// before any search is attempted.
func New(opt Options) (*Solver, error) {
	if opt.Alphabet.Len() == 0 {
		return nil, errors.Wrap(ErrInvalidAlphabet, "alphabet has no members")
	}
	s := &Solver{opt: opt}
	if len(opt.Padding) == 0 {
		return s, nil
	}
	if len(opt.Padding) != 2 {
		return nil, errors.Wrapf(ErrInvalidAlphabet,
			"padding %q must be two bytes", opt.Padding)
	}
	s.start0 = opt.Alphabet.index(opt.Padding[0])
	s.start1 = opt.Alphabet.index(opt.Padding[1])
	if s.start0 < 0 || s.start1 < 0 {
		return nil, errors.Wrapf(ErrInvalidAlphabet,
			"padding %q is not in alphabet %s", opt.Padding, opt.Alphabet.Name())
	}
	return s, nil
}

// Options returns the options the solver was built with.
func (s *Solver) Options() Options { return s.opt }

// Binary is the package level Binary with metrics.
func (s *Solver) Binary(state, target uint32) BinaryPatch {
	y.NumSolvesAdd(s.opt.MetricsEnabled, "binary", 1)
	return Binary(state, target)
}

// ASCII returns six alphabet bytes that move the register from state to
// target. The two padding bytes are enumerated in alphabet order starting
// from Options.Padding and wrapping around; the first pair whose four byte
// suffix also lies in the alphabet is returned. The search is exhaustive over
// the padding pairs, so ErrNoSolution means no such patch has that shape.
//
// ctx is checked once per first padding byte.
func (s *Solver) ASCII(ctx context.Context, state, target uint32) (ASCIIPatch, error) {
	y.NumSolvesAdd(s.opt.MetricsEnabled, "ascii", 1)

	var patch ASCIIPatch
	a := s.opt.Alphabet
	n := a.Len()
	idx := indices(crc.State(target))
	start := crc.State(state)

	var tried int64
	defer func() { y.NumCandidatesAdd(s.opt.MetricsEnabled, tried) }()

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return patch, errors.Wrapf(err, "printable search for %#08x", target)
		}
		p0 := a.members[(s.start0+i)%n]
		s0 := step(start, p0)
		for j := 0; j < n; j++ {
			p1 := a.members[(s.start1+j)%n]
			tried++
			suffix := replay(step(s0, p1), &idx)
			if !a.containsAll(suffix[:]) {
				continue
			}
			patch[0], patch[1] = p0, p1
			copy(patch[2:], suffix[:])
			// Only an implementation bug can make this fail.
			y.AssertTruef(start.Update(patch[:]) == crc.State(target),
				"patch %x does not force %#08x from %#08x", patch, target, state)
			return patch, nil
		}
	}
	y.NumNoSolutionAdd(s.opt.MetricsEnabled, 1)
	return patch, errors.Wrapf(ErrNoSolution, "state %#08x, target %#08x, alphabet %s",
		state, target, a.Name())
}

// ASCII solves with the printable alphabet and default padding.
func ASCII(state, target uint32) (ASCIIPatch, error) {
	return defaultSolver.ASCII(context.Background(), state, target)
}
