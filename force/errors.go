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

import "github.com/pkg/errors"

var (
	// ErrNoSolution is returned when the printable search runs out of padding
	// candidates without finding a suffix inside the alphabet. Widening the
	// alphabet or falling back to a binary patch are the usual remedies.
	ErrNoSolution = errors.New("no patch within the alphabet forces the target")

	// ErrInvalidAlphabet is returned for an empty alphabet, or for preferred
	// padding that is not made of exactly two members of the alphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)
