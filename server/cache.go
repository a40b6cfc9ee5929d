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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"

	"github.com/dgraph-io/forcecrc/y"
)

// resultCache memoizes solve responses. Printable searches can walk thousands
// of padding pairs, and hosts tend to ask for the same target repeatedly.
type resultCache struct {
	c       *ristretto.Cache
	metrics bool
}

func newResultCache(entries int64, metrics bool) (*resultCache, error) {
	if entries <= 0 {
		return &resultCache{metrics: metrics}, nil
	}
	// Every entry is Set with cost 1, so MaxCost counts results.
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        entries * 10,
		MaxCost:            entries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "while creating result cache")
	}
	return &resultCache{c: c, metrics: metrics}, nil
}

// cacheKey hashes everything a response depends on.
func cacheKey(kind string, state, target uint32, alphabet string, padding []byte) uint64 {
	buf := make([]byte, 0, 8+len(kind)+len(alphabet)+len(padding)+2)
	buf = binary.BigEndian.AppendUint32(buf, state)
	buf = binary.BigEndian.AppendUint32(buf, target)
	buf = append(buf, kind...)
	buf = append(buf, 0)
	buf = append(buf, alphabet...)
	buf = append(buf, 0)
	buf = append(buf, padding...)
	return xxhash.Sum64(buf)
}

func (rc *resultCache) get(key uint64) (*Response, bool) {
	if rc.c == nil {
		return nil, false
	}
	v, ok := rc.c.Get(key)
	if !ok {
		y.NumCacheMissesAdd(rc.metrics, 1)
		return nil, false
	}
	y.NumCacheHitsAdd(rc.metrics, 1)
	return v.(*Response), true
}

func (rc *resultCache) set(key uint64, r *Response) {
	if rc.c == nil {
		return
	}
	rc.c.Set(key, r, 1)
}

func (rc *resultCache) close() {
	if rc.c != nil {
		rc.c.Close()
	}
}
