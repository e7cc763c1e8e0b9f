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

package bitboard

import "github.com/arkenfall/chesscore/pkg/square"

const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7
)

const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

// Files, Ranks, Squares, Diagonals, AntiDiagonals and Between are all
// precomputed lookup tables indexed by the corresponding square package
// type, filled in at startup. Files and Ranks are copied from the
// constants above; the rest are computed rather than written out as
// hex literals.
var (
	Files         [square.FileN]Board
	Ranks         [square.RankN]Board
	Squares       [square.N]Board
	Diagonals     [square.DiagonalN]Board
	AntiDiagonals [square.AntiDiagonalN]Board
	Between       [square.N][square.N]Board
)

func init() {
	Files = [...]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	Ranks = [...]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

	mask := Board(1)
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = mask
		mask <<= 1

		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	initBetween()
}

// direction deltas for the 8 rook/bishop ray directions: N, S, E, W,
// NE, NW, SE, SW.
var rayDeltas = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

func initBetween() {
	for from := square.A1; from <= square.H8; from++ {
		ff, fr := int(from.File()), int(from.Rank())

		for _, d := range rayDeltas {
			var ray Board
			file, rank := ff+d[0], fr+d[1]

			for file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
				to := square.New(square.File(file), square.Rank(rank))
				Between[from][to] = ray
				ray.Set(to)

				file += d[0]
				rank += d[1]
			}
		}
	}
}
