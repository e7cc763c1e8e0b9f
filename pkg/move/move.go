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

// Package move implements a packed chess move representation.
package move

import (
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// Move packs a from square, a to square, and a flag into a single
// integer. Format: MSB [flag 4 bits][to 6 bits][from 6 bits] LSB.
type Move uint16

// Null is the zero Move, used as a sentinel "no move"/null-move value.
// It can never be a legal move since from == to.
const Null Move = 0

// Flag classifies what kind of move this is, beyond the from/to pair.
type Flag uint8

// flag values, matching the contract exactly
const (
	Plain       Flag = 0
	EnPassant   Flag = 1
	DoublePush  Flag = 2
	CastleShort Flag = 3
	CastleLong  Flag = 4
	PromoQueen  Flag = 5
	PromoRook   Flag = 6
	PromoBishop Flag = 7
	PromoKnight Flag = 8
)

const (
	fromMask = 0x3f
	toShift  = 6
	toMask   = 0x3f
	flagShift = 12
)

// New packs a from/to/flag triple into a Move.
func New(from, to square.Square, flag Flag) Move {
	return Move(from)&fromMask | (Move(to)&toMask)<<toShift | Move(flag)<<flagShift
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square(m & fromMask)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m >> toShift) & toMask)
}

// Flag returns the move's flag.
func (m Move) Flag() Flag {
	return Flag(m >> flagShift)
}

// IsPromotion reports whether the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.Flag() >= PromoQueen
}

// PromotionType returns the piece type a promotion move promotes to.
// Only valid when IsPromotion is true.
func (m Move) PromotionType() piece.Type {
	switch m.Flag() {
	case PromoQueen:
		return piece.Queen
	case PromoRook:
		return piece.Rook
	case PromoBishop:
		return piece.Bishop
	case PromoKnight:
		return piece.Knight
	default:
		panic("move: not a promotion")
	}
}

// String converts a Move to long algebraic notation, e.g. "e2e4" or
// "a7a8q" for a queen promotion.
func (m Move) String() string {
	str := m.From().String() + m.To().String()
	if m.IsPromotion() {
		str += m.PromotionType().String()
	}
	return str
}
