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

package attacks

import (
	"github.com/arkenfall/chesscore/pkg/attacks/magic"
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/square"
)

// rookSlide and bishopSlide return the attack set from s along
// rook/bishop lines given occ. rookMask and bishopMask return the
// magic blocker masks: the same lines with s and the edge squares
// stripped.
func rookSlide(s square.Square, occ bitboard.Board) bitboard.Board {
	return bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()]) |
		bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
}

func bishopSlide(s square.Square, occ bitboard.Board) bitboard.Board {
	return bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()]) |
		bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
}

func rookMask(s square.Square) bitboard.Board {
	mask := (bitboard.Ranks[s.Rank()] &^ (bitboard.Files[square.FileA] | bitboard.Files[square.FileH])) |
		(bitboard.Files[s.File()] &^ (bitboard.Ranks[square.Rank1] | bitboard.Ranks[square.Rank8]))
	mask &^= bitboard.Squares[s]
	return mask
}

func bishopMask(s square.Square) bitboard.Board {
	edges := bitboard.Files[square.FileA] | bitboard.Files[square.FileH] |
		bitboard.Ranks[square.Rank1] | bitboard.Ranks[square.Rank8]
	mask := (bitboard.Diagonals[s.Diagonal()] | bitboard.AntiDiagonals[s.AntiDiagonal()]) &^ edges
	mask &^= bitboard.Squares[s]
	return mask
}

var rookTable magic.Table
var bishopTable magic.Table

func init() {
	rookTable.Populate(rookMask, rookSlide, MagicSeeds)
	bishopTable.Populate(bishopMask, bishopSlide, MagicSeeds)
}

// MagicSeeds are Stockfish-derived per-rank seeds for the magic number
// search; they make the search converge quickly and deterministically.
var MagicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// Bishop returns the attack set of a bishop on s given occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, occ)
}

// Rook returns the attack set of a rook on s given occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, occ)
}

// Queen returns the attack set of a queen on s given occ.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}
