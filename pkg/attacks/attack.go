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

// Package attacks holds precomputed attack tables for every piece type,
// plus magic-bitboard lookups for the sliding pieces.
package attacks

import (
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// lookup tables for non-sliding piece attacks
var (
	King     [square.N]bitboard.Board
	Knight   [square.N]bitboard.Board
	PawnPush [piece.ColorN][square.N]bitboard.Board
	Pawn     [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		b := bitboard.Squares[s]

		King[s] = b.North() | b.South() | b.East() | b.West() |
			b.North().East() | b.North().West() |
			b.South().East() | b.South().West()

		Knight[s] = b.North().North().East() | b.North().East().East() |
			b.South().East().East() | b.South().South().East() |
			b.South().South().West() | b.South().West().West() |
			b.North().West().West() | b.North().North().West()

		PawnPush[piece.White][s] = b.North()
		PawnPush[piece.Black][s] = b.South()

		Pawn[piece.White][s] = b.North().East() | b.North().West()
		Pawn[piece.Black][s] = b.South().East() | b.South().West()
	}
}
