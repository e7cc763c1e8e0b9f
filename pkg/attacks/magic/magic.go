// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package magic implements magic-bitboard index tables for sliding
// piece move generation.
// https://www.chessprogramming.org/Magic_Bitboards
package magic

import (
	"github.com/arkenfall/chesscore/internal/xorshift"
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/square"
)

// entry holds the magic number and derived constants for one square.
type entry struct {
	number uint64
	mask   bitboard.Board
	shift  uint
}

// Table is a magic-bitboard index for one sliding piece type (rook or
// bishop). It must be filled by Populate before use.
type Table struct {
	entries [square.N]entry
	moves   [square.N][]bitboard.Board
}

// Populate searches for a magic number for every square and fills the
// attack table. maskFn returns the relevant occupancy mask for a
// square (edge squares excluded); slideFn returns the true attack set
// given a square and an arbitrary occupancy. seeds provides a starting
// PRNG seed per rank so the search converges quickly and
// deterministically.
func (t *Table) Populate(maskFn func(square.Square) bitboard.Board, slideFn func(square.Square, bitboard.Board) bitboard.Board, seeds [8]uint64) {
	var rng xorshift.PRNG

	for s := square.A1; s <= square.H8; s++ {
		e := &t.entries[s]
		e.mask = maskFn(s)

		bitCount := e.mask.Count()
		e.shift = 64 - uint(bitCount)

		permutationN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationN)

		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			permutations[i] = blockers
			blockers = (blockers - e.mask) & e.mask
		}

		t.moves[s] = make([]bitboard.Board, permutationN)
		rng.Seed(seeds[s.Rank()])

	search:
		for {
			candidate := rng.SparseUint64()
			e.number = candidate

			for i := range t.moves[s] {
				t.moves[s][i] = bitboard.Empty
			}

			for _, blockers := range permutations {
				index := (uint64(blockers) * candidate) >> e.shift
				attack := slideFn(s, blockers)

				if t.moves[s][index] != bitboard.Empty && t.moves[s][index] != attack {
					continue search
				}
				t.moves[s][index] = attack
			}

			break
		}
	}
}

// Probe returns the precomputed attack set for a slider on s given occ.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	e := t.entries[s]
	index := (uint64(occ&e.mask) * e.number) >> e.shift
	return t.moves[s][index]
}
