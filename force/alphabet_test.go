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
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAlphabets(t *testing.T) {
	require.Equal(t, 95, Printable.Len())
	require.True(t, Printable.Contains(' '))
	require.True(t, Printable.Contains('~'))
	require.False(t, Printable.Contains(0x7f))
	require.False(t, Printable.Contains('\n'))

	require.Equal(t, 62, Alphanumeric.Len())
	require.False(t, Alphanumeric.Contains(' '))
	require.Equal(t, 256, Full.Len())
}

func TestNewAlphabet(t *testing.T) {
	a := NewAlphabet("x", []byte("cabbac"))
	require.Equal(t, []byte("abc"), a.Bytes())
	require.Equal(t, 3, a.Len())
	require.Equal(t, "x:abc", a.String())
	require.Equal(t, 1, a.index('b'))
	require.Equal(t, -1, a.index('d'))

	b := a.Bytes()
	b[0] = 'z'
	require.Equal(t, []byte("abc"), a.Bytes())
}

func TestParseAlphabet(t *testing.T) {
	for _, tc := range []struct {
		spec string
		want Alphabet
	}{
		{"", Printable},
		{"printable", Printable},
		{"alnum", Alphanumeric},
		{"full", Full},
	} {
		t.Run(fmt.Sprintf("%q", tc.spec), func(t *testing.T) {
			a, err := ParseAlphabet(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.want.Bytes(), a.Bytes())
		})
	}

	a, err := ParseAlphabet("chars:0123456789abcdef")
	require.NoError(t, err)
	require.Equal(t, 16, a.Len())

	_, err = ParseAlphabet("chars:")
	require.True(t, errors.Is(err, ErrInvalidAlphabet))
	_, err = ParseAlphabet("klingon")
	require.True(t, errors.Is(err, ErrInvalidAlphabet))
}

func TestNewRejectsInvalidAlphabet(t *testing.T) {
	_, err := New(DefaultOptions().WithAlphabet(Alphabet{}))
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New(DefaultOptions().WithAlphabet(NewAlphabet("empty", nil)))
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New(DefaultOptions().WithPadding([]byte("A")))
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New(DefaultOptions().WithAlphabet(Alphanumeric).WithPadding([]byte("A ")))
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	s, err := New(DefaultOptions().WithAlphabet(Alphanumeric).WithPadding([]byte("Az")))
	require.NoError(t, err)
	require.Equal(t, Alphanumeric.index('A'), s.start0)
	require.Equal(t, Alphanumeric.index('z'), s.start1)
}
