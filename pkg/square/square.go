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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are numbered rank-major starting from White's first rank, so
// a1 is 0 and h8 is 63. This matches the little-endian rank-file layout
// most bitboard engines use, rather than the a8=0 layout used by some.
package square

// Square represents a square on a chessboard.
type Square int8

// None represents the absence of a square, e.g. no en passant target.
const None Square = -1

// constants representing every square on the board
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// N is the number of squares on a chessboard.
const N = 64

// New creates a Square from a file and a rank.
func New(f File, r Rank) Square {
	return Square(int(r)<<3 | int(f))
}

// NewFromString parses a Square from its algebraic notation, e.g. "e4".
// The null square is represented by "-".
func NewFromString(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		panic("square: invalid square identifier " + id)
	}
	return New(FileFrom(id[0]), RankFrom(id[1]))
}

// String converts a Square to its algebraic notation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// File returns the file the square lies on.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the rank the square lies on.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// Diagonal returns the index of the a1-h8-parallel diagonal the square
// lies on, in the range [0, 14].
func (s Square) Diagonal() Diagonal {
	return Diagonal(s.File()) - Diagonal(s.Rank()) + 7
}

// AntiDiagonal returns the index of the a8-h1-parallel diagonal the
// square lies on, in the range [0, 14].
func (s Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(s.File()) + AntiDiagonal(s.Rank())
}
