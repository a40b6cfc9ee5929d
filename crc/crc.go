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

// Package crc implements the reflected IEEE CRC-32 as an explicit register
// value, so that a checksum can be continued from any point rather than only
// from the standard seed.
//
// The register is kept raw. The published CRC-32 of some data is the
// complement of the register after starting from Seed:
//	var sum uint32 = crc.Seed.Update(data).Finalize()
package crc

import "hash"

// Size is the size of a CRC-32 checksum in bytes.
const Size = 4

// Seed is the register value the standard CRC-32 starts from.
const Seed State = 0xffffffff

// State is the CRC-32 register.
type State uint32

// FromChecksum returns the register that produced the published checksum sum.
func FromChecksum(sum uint32) State {
	return State(^sum)
}

// Update returns the result of feeding b through the register.
func (s State) Update(b []byte) State {
	for _, v := range b {
		s = State(Table[byte(s)^v]) ^ (s >> 8)
	}
	return s
}

// Value returns the raw register.
func (s State) Value() uint32 { return uint32(s) }

// Finalize returns the published checksum for the register.
func (s State) Finalize() uint32 { return ^uint32(s) }

// Checksum returns the standard CRC-32 of data.
func Checksum(data []byte) uint32 {
	return Seed.Update(data).Finalize()
}

// Engine is a running register that can be fed as an io.Writer. Sum32 returns
// the raw register, not the finalized checksum.
type Engine struct {
	seed  State
	state State
}

var _ hash.Hash32 = (*Engine)(nil)

// NewEngine returns an engine whose register starts at seed.
func NewEngine(seed State) *Engine {
	return &Engine{seed: seed, state: seed}
}

// Set moves the register to s. Subsequent Reset calls return to s.
func (e *Engine) Set(s State) {
	e.seed = s
	e.state = s
}

// State returns the current register.
func (e *Engine) State() State { return e.state }

func (e *Engine) Write(p []byte) (int, error) {
	e.state = e.state.Update(p)
	return len(p), nil
}

// Reset returns the register to the seed the engine was created or Set with.
func (e *Engine) Reset() { e.state = e.seed }

func (e *Engine) Size() int { return Size }

func (e *Engine) BlockSize() int { return 1 }

func (e *Engine) Sum32() uint32 { return uint32(e.state) }

// Sum appends the big-endian register to in.
func (e *Engine) Sum(in []byte) []byte {
	s := e.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
