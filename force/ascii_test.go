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
	"math/rand"
	"testing"

	"github.com/dgraph-io/forcecrc/crc"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func requireInAlphabet(t *testing.T, a Alphabet, p []byte) {
	t.Helper()
	for _, b := range p {
		require.True(t, a.Contains(b), "byte %#02x of %q not in %s", b, p, a.Name())
	}
}

func newSolver(t *testing.T, opt Options) *Solver {
	t.Helper()
	s, err := New(opt)
	require.NoError(t, err)
	return s
}

func TestASCIIScenario(t *testing.T) {
	p, err := ASCII(0x4a2ca8a1, 0x44f2b129)
	require.NoError(t, err)
	requireInAlphabet(t, Printable, p[:])
	requireForces(t, 0x4a2ca8a1, 0x44f2b129, p[:])

	p, err = ASCII(0xe5b237a3, 0x77cffdb8)
	require.NoError(t, err)
	requireInAlphabet(t, Printable, p[:])
	requireForces(t, 0xe5b237a3, 0x77cffdb8, p[:])
}

func TestASCIISweep(t *testing.T) {
	for _, tgt := range []uint32{0x00000000, 0xaaaaaaaa, 0x12345678, 0xffffffff} {
		s := uint32(7)
		for i := 0; i < 100; i++ {
			p, err := ASCII(s, tgt)
			require.NoError(t, err)
			requireInAlphabet(t, Printable, p[:])
			requireForces(t, s, tgt, p[:])
			s *= 51
		}
	}
}

func TestASCIIRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		s, tgt := r.Uint32(), r.Uint32()
		p, err := ASCII(s, tgt)
		require.NoError(t, err)
		requireInAlphabet(t, Printable, p[:])
		requireForces(t, s, tgt, p[:])
	}
}

func TestASCIIAlphanumeric(t *testing.T) {
	solver := newSolver(t, DefaultOptions().WithAlphabet(Alphanumeric))
	r := rand.New(rand.NewSource(5))
	var found int
	for i := 0; i < 100; i++ {
		s, tgt := r.Uint32(), r.Uint32()
		p, err := solver.ASCII(context.Background(), s, tgt)
		if err != nil {
			require.True(t, errors.Is(err, ErrNoSolution))
			continue
		}
		found++
		requireInAlphabet(t, Alphanumeric, p[:])
		requireForces(t, s, tgt, p[:])
	}
	require.NotZero(t, found)
}

func TestASCIIDeterministic(t *testing.T) {
	p1, err := ASCII(0x4a2ca8a1, 0x44f2b129)
	require.NoError(t, err)
	p2, err := ASCII(0x4a2ca8a1, 0x44f2b129)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

// With every byte allowed the first padding pair always succeeds, so the
// default padding is visible in the result.
func TestASCIIDefaultPadding(t *testing.T) {
	solver := newSolver(t, DefaultOptions().WithAlphabet(Full))
	p, err := solver.ASCII(context.Background(), 0x4a2ca8a1, 0x44f2b129)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00}, p[:2])

	suffix := Binary(crc.State(0x4a2ca8a1).Update([]byte{0, 0}).Value(), 0x44f2b129)
	require.Equal(t, suffix[:], p[2:])
}

func TestASCIIPreferredPadding(t *testing.T) {
	solver := newSolver(t, DefaultOptions().WithAlphabet(Full).WithPadding([]byte("AB")))
	p, err := solver.ASCII(context.Background(), 7, 0)
	require.NoError(t, err)
	require.Equal(t, "AB", string(p[:2]))
	requireForces(t, 7, 0, p[:])

	// Printable padding only moves the start of the search.
	solver = newSolver(t, DefaultOptions().WithPadding([]byte("zz")))
	p, err = solver.ASCII(context.Background(), 7, 0)
	require.NoError(t, err)
	requireInAlphabet(t, Printable, p[:])
	requireForces(t, 7, 0, p[:])
}

// The default printable search starts at "  " and walks the alphabet in byte
// order, first byte outermost.
func TestASCIIEnumerationOrder(t *testing.T) {
	const state, target = 0x4a2ca8a1, 0x44f2b129
	p, err := ASCII(state, target)
	require.NoError(t, err)

	members := Printable.Bytes()
	for _, p0 := range members {
		for _, p1 := range members {
			if p0 == p[0] && p1 == p[1] {
				return
			}
			suffix := Binary(crc.State(state).Update([]byte{p0, p1}).Value(), target)
			require.False(t, Printable.containsAll(suffix[:]),
				"padding %q precedes %q and already works", []byte{p0, p1}, p[:2])
		}
	}
	t.Fatalf("padding %q never enumerated", p[:2])
}

func TestASCIINoSolution(t *testing.T) {
	a := NewAlphabet("single", []byte("A"))
	solver := newSolver(t, DefaultOptions().WithAlphabet(a))

	// "AAAAAA" is the only candidate, and it lands one bit away.
	const state = 0x4a2ca8a1
	target := crc.State(state).Update([]byte("AAAAAA")).Value() ^ 1
	p, err := solver.ASCII(context.Background(), state, target)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoSolution))
	require.Equal(t, ASCIIPatch{}, p)

	target ^= 1
	p, err = solver.ASCII(context.Background(), state, target)
	require.NoError(t, err)
	require.Equal(t, "AAAAAA", p.String())
}

func TestASCIICancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSolver(t, DefaultOptions()).ASCII(ctx, 7, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestASCIIConcurrent(t *testing.T) {
	solver := newSolver(t, DefaultOptions())
	want, err := solver.ASCII(context.Background(), 7, 0x12345678)
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			p, err := solver.ASCII(context.Background(), 7, 0x12345678)
			if err == nil && p != want {
				err = errors.Errorf("got %q, want %q", p, want)
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errs)
	}
}

func TestPatchFormatting(t *testing.T) {
	p := ASCIIPatch{'a', 'b', 'c', 'd', 'e', 'f'}
	require.Equal(t, "abcdef", p.String())
	require.Equal(t, "616263646566", p.Hex())
	require.Equal(t, "deadbeef", BinaryPatch{0xde, 0xad, 0xbe, 0xef}.String())
}

func BenchmarkASCII(b *testing.B) {
	ctx := context.Background()
	solver, err := New(DefaultOptions().WithMetricsEnabled(false))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := solver.ASCII(ctx, uint32(i), 0x44f2b129); err != nil {
			b.Fatal(err)
		}
	}
}
