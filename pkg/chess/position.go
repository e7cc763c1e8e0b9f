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

// Package chess implements a legal chess move generator: given a fully
// specified position it produces the exact set of legal moves for the
// side to move, detects check, checkmate, stalemate, the fifty-move
// draw, and threefold repetition, and applies a chosen move to produce
// the next position.
package chess

import (
	"fmt"

	"github.com/arkenfall/chesscore/pkg/attacks"
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/castling"
	"github.com/arkenfall/chesscore/pkg/move"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
	"github.com/arkenfall/chesscore/pkg/zobrist"
)

// State is the outcome of a position.
type State int

const (
	Playing State = iota
	WhiteWins
	BlackWins
	Draw
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// historySlots is the size of the Zobrist repetition ring: one slot
// per possible half-move clock value, 0 through 100 inclusive.
const historySlots = 101

// Position owns piece bitboards and per-color occupancy, castling
// rights, side to move, en passant file, half-move clock, full-move
// counter, the Zobrist repetition ring, game state, and the current
// legal move list.
//
// A Position is mutated only by ApplyMove and is never aliased across
// moves; callers that want to keep a parent position around (e.g. a
// branching search) must Clone it first.
type Position struct {
	PieceBB [piece.TypeN]bitboard.Board
	ColorBB [piece.ColorN]bitboard.Board
	Mailbox [square.N]piece.Piece
	Kings   [piece.ColorN]square.Square

	SideToMove     piece.Color
	CastlingRights castling.Rights

	// EnPassantFile is the file (0..7) of a pawn that just double
	// advanced, or FileNone if there is none.
	EnPassantFile File

	HalfMoveClock  int
	FullMoveNumber int

	Hash    zobrist.Key
	History [historySlots]zobrist.Key

	// threat & pin analysis, refreshed by analyze() before every
	// GenerateMoves call
	CheckN      int
	CheckMask   bitboard.Board
	PinnedD     bitboard.Board
	PinnedHV    bitboard.Board
	SeenByEnemy bitboard.Board
	EpPinned    square.Square

	State State

	MoveList []move.Move
}

// File is a file index, 0..7, or FileNone.
type File int8

// FileNone marks the absence of an en passant file.
const FileNone File = -1

// New returns an empty, otherwise zeroed Position. Use the field-level
// constructor or a FEN loader to populate it.
func New() *Position {
	p := &Position{EnPassantFile: FileNone}
	for s := square.A1; s <= square.H8; s++ {
		p.Mailbox[s] = piece.NoPiece
	}
	return p
}

// Clone returns an independent deep copy of p.
func (p *Position) Clone() *Position {
	c := *p
	c.MoveList = append([]move.Move(nil), p.MoveList...)
	return &c
}

func (p *Position) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			str += p.Mailbox[square.New(f, r)].String()
		}
		str += "\n"
	}
	return fmt.Sprintf("%sside to move: %s\ncastling: %s\nep file: %v\nhash: %016x\n",
		str, p.SideToMove, p.CastlingRights, p.EnPassantFile, uint64(p.Hash))
}

// Occupied returns the union of both colors' occupancy.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBB[piece.White] | p.ColorBB[piece.Black]
}

func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.PieceBB[piece.Pawn] & p.ColorBB[c] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.PieceBB[piece.Knight] & p.ColorBB[c] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.PieceBB[piece.Bishop] & p.ColorBB[c] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.PieceBB[piece.Rook] & p.ColorBB[c] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.PieceBB[piece.Queen] & p.ColorBB[c] }
func (p *Position) KingBB(c piece.Color) bitboard.Board  { return p.PieceBB[piece.King] & p.ColorBB[c] }

// ClearSquare removes whatever piece sits on s, updating every derived
// piece of state (bitboards, mailbox, hash).
func (p *Position) ClearSquare(s square.Square) {
	pc := p.Mailbox[s]
	p.ColorBB[pc.Color()].Unset(s)
	p.PieceBB[pc.Type()].Unset(s)
	p.Mailbox[s] = piece.NoPiece
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// FillSquare places pc on s, updating every derived piece of state.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	c := pc.Color()
	p.ColorBB[c].Set(s)
	p.PieceBB[pc.Type()].Set(s)
	p.Mailbox[s] = pc
	if pc.Type() == piece.King {
		p.Kings[c] = s
	}
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.Kings[c], c.Other())
}

// IsAttacked reports whether sq is attacked by any piece of color by,
// using the current occupancy.
func (p *Position) IsAttacked(sq square.Square, by piece.Color) bool {
	occ := p.Occupied()

	if attacks.Pawn[by.Other()][sq]&p.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[sq]&p.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[sq]&p.KingBB(by) != bitboard.Empty {
		return true
	}

	queens := p.Queens(by)
	if attacks.Bishop(sq, occ)&(p.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(sq, occ)&(p.Rooks(by)|queens) != bitboard.Empty
}
