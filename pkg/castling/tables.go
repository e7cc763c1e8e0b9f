// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package castling

import (
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/square"
)

// Info describes the squares involved in one castling move.
type Info struct {
	KingFrom, KingTo square.Square
	RookFrom, RookTo square.Square

	// Clearance is the set of squares, other than KingFrom and RookFrom,
	// that must be empty for the move to be possible.
	Clearance bitboard.Board

	// Safe is the set of squares the king starts on, passes through, or
	// lands on; none of them may be attacked by the opponent.
	Safe bitboard.Board
}

// Infos holds castling info indexed by the single Rights bit it
// corresponds to (WhiteKingside, WhiteQueenside, BlackKingside,
// BlackQueenside).
var Infos = map[Rights]Info{
	WhiteKingside: {
		KingFrom: square.E1, KingTo: square.G1,
		RookFrom: square.H1, RookTo: square.F1,
		Clearance: sq(square.F1, square.G1),
		Safe:      sq(square.E1, square.F1, square.G1),
	},
	WhiteQueenside: {
		KingFrom: square.E1, KingTo: square.C1,
		RookFrom: square.A1, RookTo: square.D1,
		Clearance: sq(square.B1, square.C1, square.D1),
		Safe:      sq(square.E1, square.D1, square.C1),
	},
	BlackKingside: {
		KingFrom: square.E8, KingTo: square.G8,
		RookFrom: square.H8, RookTo: square.F8,
		Clearance: sq(square.F8, square.G8),
		Safe:      sq(square.E8, square.F8, square.G8),
	},
	BlackQueenside: {
		KingFrom: square.E8, KingTo: square.C8,
		RookFrom: square.A8, RookTo: square.D8,
		Clearance: sq(square.B8, square.C8, square.D8),
		Safe:      sq(square.E8, square.D8, square.C8),
	},
}

func sq(squares ...square.Square) bitboard.Board {
	var b bitboard.Board
	for _, s := range squares {
		b.Set(s)
	}
	return b
}

// RightUpdates maps a square to the castling rights that survive a
// piece moving from or to that square, e.g. a rook leaving h1 revokes
// WhiteKingside. Combine with &= on both the move's source and
// destination square to update Rights incrementally.
var RightUpdates [square.N]Rights

func init() {
	for s := square.A1; s <= square.H8; s++ {
		RightUpdates[s] = All
	}

	RightUpdates[square.E1] = All &^ White
	RightUpdates[square.A1] = All &^ WhiteQueenside
	RightUpdates[square.H1] = All &^ WhiteKingside

	RightUpdates[square.E8] = All &^ Black
	RightUpdates[square.A8] = All &^ BlackQueenside
	RightUpdates[square.H8] = All &^ BlackKingside
}
