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

// Package piece implements representations of chess pieces and colors.
//
// Piece letters follow FEN convention: K, Q, R, N, B, P for White, and
// their lowercase equivalents for Black.
package piece

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// constants representing colored chess pieces
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorOffset | Piece(King)
)

// N is the number of piece-color combinations, including the unused
// slots left by separating the type and color bit fields.
const N = 16

const (
	colorOffset = 3
	typeMask    = 1<<colorOffset - 1
)

// New creates a Piece from the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates a Piece from its FEN letter, e.g. "N" or "p".
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece: invalid piece id " + id)
	}
}

// String converts a Piece to its FEN letter.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the type of the piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the color of the piece. Panics for NoPiece, which has
// no color.
func (p Piece) Color() Color {
	if p == NoPiece {
		panic("piece: NoPiece has no color")
	}
	return Color(p >> colorOffset)
}

// Is reports whether the piece is of the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// IsColor reports whether the piece is of the given color.
func (p Piece) IsColor(c Color) bool {
	return p != NoPiece && p.Color() == c
}

// Type represents the kind of a chess piece, independent of color.
type Type uint8

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of piece types, including NoType.
const TypeN = 7

func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}
