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
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Alphabet is an immutable set of byte values a printable patch may use.
// Members are enumerated in ascending byte order.
type Alphabet struct {
	name    string
	set     [256]bool
	members []byte
}

var (
	// Printable is the printable ASCII range 0x20-0x7E.
	Printable = AlphabetRange("printable", 0x20, 0x7e)
	// Alphanumeric holds the digits and the upper and lower case letters.
	Alphanumeric = NewAlphabet("alnum",
		[]byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"))
	// Full allows every byte value.
	Full = AlphabetRange("full", 0x00, 0xff)
)

// NewAlphabet builds an alphabet from members. Duplicates are ignored.
func NewAlphabet(name string, members []byte) Alphabet {
	a := Alphabet{name: name}
	for _, b := range members {
		if a.set[b] {
			continue
		}
		a.set[b] = true
		a.members = append(a.members, b)
	}
	sort.Slice(a.members, func(i, j int) bool { return a.members[i] < a.members[j] })
	return a
}

// AlphabetRange builds the alphabet of all bytes in [lo, hi].
func AlphabetRange(name string, lo, hi byte) Alphabet {
	a := Alphabet{name: name}
	for v := int(lo); v <= int(hi); v++ {
		a.set[v] = true
		a.members = append(a.members, byte(v))
	}
	return a
}

// ParseAlphabet resolves a named alphabet ("printable", "alnum", "full") or,
// with a "chars:" prefix, a literal member list.
func ParseAlphabet(spec string) (Alphabet, error) {
	switch spec {
	case "", "printable":
		return Printable, nil
	case "alnum":
		return Alphanumeric, nil
	case "full":
		return Full, nil
	}
	if chars := strings.TrimPrefix(spec, "chars:"); chars != spec {
		a := NewAlphabet("chars", []byte(chars))
		if a.Len() == 0 {
			return Alphabet{}, errors.Wrapf(ErrInvalidAlphabet, "no members in %q", spec)
		}
		return a, nil
	}
	return Alphabet{}, errors.Wrapf(ErrInvalidAlphabet, "unknown alphabet %q", spec)
}

// Contains reports whether b is a member.
func (a Alphabet) Contains(b byte) bool { return a.set[b] }

// Len returns the number of members.
func (a Alphabet) Len() int { return len(a.members) }

// Bytes returns the members in enumeration order.
func (a Alphabet) Bytes() []byte {
	out := make([]byte, len(a.members))
	copy(out, a.members)
	return out
}

// Name returns the name the alphabet was built with.
func (a Alphabet) Name() string { return a.name }

func (a Alphabet) String() string {
	return a.name + ":" + string(a.members)
}

func (a Alphabet) containsAll(p []byte) bool {
	for _, b := range p {
		if !a.set[b] {
			return false
		}
	}
	return true
}

// index returns the position of b in the enumeration order, or -1.
func (a Alphabet) index(b byte) int {
	i := sort.Search(len(a.members), func(i int) bool { return a.members[i] >= b })
	if i < len(a.members) && a.members[i] == b {
		return i
	}
	return -1
}
