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

// Package force computes patches that, appended to data whose CRC-32 register
// is known, drive the register to a chosen value.
//
// Four appended bytes are enough to reach any register: after four steps every
// bit of the starting register has been shifted out, and the result is
//
//	t[i3] ^ t[i2]>>8 ^ t[i1]>>16 ^ t[i0]>>24
//
// where i0..i3 are the table indices used at each step. The top bytes of the
// table entries are a permutation, so the indices follow from the target alone,
// top byte first. The patch bytes are then whatever turns the running register
// into those indices.
package force

import (
	"encoding/hex"

	"github.com/dgraph-io/forcecrc/crc"
)

// BinaryLen is the length of an unconstrained patch.
const BinaryLen = 4

// BinaryPatch is an unconstrained four byte patch.
type BinaryPatch [BinaryLen]byte

func (p BinaryPatch) String() string { return hex.EncodeToString(p[:]) }

// Binary returns the four bytes that move the register from state to target.
// Every (state, target) pair has exactly one such patch.
func Binary(state, target uint32) BinaryPatch {
	idx := indices(crc.State(target))
	return replay(crc.State(state), &idx)
}

// indices recovers the table index used at each of the last four steps of an
// update ending at target.
func indices(target crc.State) [BinaryLen]byte {
	var idx [BinaryLen]byte
	c := uint32(target)
	for j := BinaryLen - 1; j >= 0; j-- {
		i := crc.InverseTable[c>>24]
		idx[j] = i
		c = (c ^ crc.Table[i]) << 8
	}
	return idx
}

// replay picks the bytes that make the register starting at s hit idx.
func replay(s crc.State, idx *[BinaryLen]byte) BinaryPatch {
	var p BinaryPatch
	for j, i := range idx {
		p[j] = i ^ byte(s)
		s = crc.State(crc.Table[i]) ^ (s >> 8)
	}
	return p
}

// step feeds a single byte through the register.
func step(s crc.State, b byte) crc.State {
	return crc.State(crc.Table[byte(s)^b]) ^ (s >> 8)
}
