/*
 * Copyright (C) 2017 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package y

import (
	"expvar"
)

var (
	// numSolves has cumulative number of solves, keyed by patch kind
	numSolves *expvar.Map
	// numCandidates has cumulative number of padding pairs tried by the printable search
	numCandidates *expvar.Int
	// numNoSolution has cumulative number of printable searches that found nothing
	numNoSolution *expvar.Int
	// numCacheHits is number of solves answered from the result cache
	numCacheHits *expvar.Int
	// numCacheMisses is number of solves that had to be computed
	numCacheMisses *expvar.Int
)

// These variables are global and have cumulative values for all solvers.
func init() {
	numSolves = expvar.NewMap("forcecrc_solves_total")
	numCandidates = expvar.NewInt("forcecrc_search_candidates_total")
	numNoSolution = expvar.NewInt("forcecrc_no_solution_total")
	numCacheHits = expvar.NewInt("forcecrc_cache_hits_total")
	numCacheMisses = expvar.NewInt("forcecrc_cache_misses_total")
}

func NumSolvesAdd(enabled bool, kind string, val int64) {
	addToMap(enabled, numSolves, kind, val)
}

func NumCandidatesAdd(enabled bool, val int64) {
	addInt(enabled, numCandidates, val)
}

func NumNoSolutionAdd(enabled bool, val int64) {
	addInt(enabled, numNoSolution, val)
}

func NumCacheHitsAdd(enabled bool, val int64) {
	addInt(enabled, numCacheHits, val)
}

func NumCacheMissesAdd(enabled bool, val int64) {
	addInt(enabled, numCacheMisses, val)
}

func addInt(enabled bool, metric *expvar.Int, val int64) {
	if !enabled {
		return
	}

	metric.Add(val)
}

func addToMap(enabled bool, metric *expvar.Map, key string, val int64) {
	if !enabled {
		return
	}

	metric.Add(key, val)
}
