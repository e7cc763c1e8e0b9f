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

// Package zobrist provides the keys used to incrementally hash a
// position for repetition detection.
//
// En passant availability and the half-move clock are deliberately not
// part of the hash: repetition is only ever checked within a window
// bounded by irreversible moves, where en passant rights cannot recur.
package zobrist

import (
	"github.com/arkenfall/chesscore/internal/xorshift"
	"github.com/arkenfall/chesscore/pkg/castling"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare holds one key per (piece, square) combination.
var PieceSquare [piece.N][square.N]Key

// CastlingRight holds one key per individual castling right, indexed
// [0]=WhiteKingside, [1]=WhiteQueenside, [2]=BlackKingside,
// [3]=BlackQueenside.
var CastlingRight [4]Key

// SideToMove is XORed into the hash whenever it is Black to move.
var SideToMove Key

var castlingBits = [4]castling.Rights{
	castling.WhiteKingside, castling.WhiteQueenside,
	castling.BlackKingside, castling.BlackQueenside,
}

func init() {
	var rng xorshift.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for i := range CastlingRight {
		CastlingRight[i] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}

// CastlingKey returns the XOR of the keys for every right set in r.
func CastlingKey(r castling.Rights) Key {
	var k Key
	for i, bit := range castlingBits {
		if r&bit != 0 {
			k ^= CastlingRight[i]
		}
	}
	return k
}
