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

// Package bitboard implements a 64-bit bitboard and related operations.
package bitboard

import (
	"math/bits"

	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// Board is a set of squares packed into a 64-bit integer, one bit per
// square. Bit i corresponds to square.Square(i).
type Board uint64

func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				str += "1 "
			} else {
				str += "0 "
			}
		}
		str += "\n"
	}
	return str
}

// Up shifts the board towards the given color's far rank.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the board towards the given color's home rank.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

func (b Board) North() Board { return b << 8 }
func (b Board) South() Board { return b >> 8 }
func (b Board) East() Board  { return (b &^ FileH) << 1 }
func (b Board) West() Board  { return (b &^ FileA) >> 1 }

// Pop returns and clears the least significant set square.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets the given square.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
