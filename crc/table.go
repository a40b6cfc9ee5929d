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

package crc

// Poly is the reflected IEEE CRC-32 polynomial.
const Poly = 0xedb88320

// Table is the byte-at-a-time lookup table for Poly.
var Table = makeTable(Poly)

// InverseTable maps the top byte of a Table entry back to its index. The top
// bytes of the 256 entries form a permutation, which is what makes the last
// few steps of an update reversible.
var InverseTable = makeInverse(&Table)

func makeTable(poly uint32) [256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = (c >> 1) ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

func makeInverse(t *[256]uint32) [256]uint8 {
	var inv [256]uint8
	var seen [256]bool
	for i, v := range t {
		top := uint8(v >> 24)
		if seen[top] {
			panic("crc: table top bytes are not a permutation")
		}
		seen[top] = true
		inv[top] = uint8(i)
	}
	return inv
}
