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

package chess

import (
	"github.com/arkenfall/chesscore/pkg/castling"
	"github.com/arkenfall/chesscore/pkg/move"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
	"github.com/arkenfall/chesscore/pkg/zobrist"
)

// ApplyMove plays m, which must be present in the current MoveList,
// and regenerates MoveList and State for the new side to move.
//
// ApplyMove is a precondition-based operation: passing a move that did
// not come from MoveList is a caller bug with undefined results, not a
// recoverable error.
func (p *Position) ApplyMove(m move.Move) {
	from, to, flag := m.From(), m.To(), m.Flag()

	fromPiece := p.Mailbox[from]
	us := fromPiece.Color()
	them := us.Other()
	capturedPiece := p.Mailbox[to]
	isCapture := capturedPiece != piece.NoPiece && flag != move.EnPassant

	oldRights := p.CastlingRights

	p.ClearSquare(from)

	if isCapture {
		p.ClearSquare(to)
		p.CastlingRights &= castling.RightUpdates[to]
	}

	p.FillSquare(to, fromPiece)

	switch flag {
	case move.CastleShort, move.CastleLong:
		info := castling.Infos[castling.WhiteKingside]
		if flag == move.CastleLong {
			info = castling.Infos[castling.WhiteQueenside]
		}
		if us == piece.Black {
			if flag == move.CastleShort {
				info = castling.Infos[castling.BlackKingside]
			} else {
				info = castling.Infos[castling.BlackQueenside]
			}
		}
		rook := p.Mailbox[info.RookFrom]
		p.ClearSquare(info.RookFrom)
		p.FillSquare(info.RookTo, rook)
		p.CastlingRights &= castling.RightUpdates[info.KingFrom]

	case move.PromoQueen, move.PromoRook, move.PromoBishop, move.PromoKnight:
		p.ClearSquare(to)
		p.FillSquare(to, piece.New(m.PromotionType(), us))

	case move.EnPassant:
		captured := square.New(to.File(), from.Rank())
		p.ClearSquare(captured)
	}

	p.CastlingRights &= castling.RightUpdates[from]

	if p.CastlingRights != oldRights {
		p.Hash ^= zobrist.CastlingKey(oldRights) ^ zobrist.CastlingKey(p.CastlingRights)
	}
	p.Hash ^= zobrist.SideToMove // side to move always flips

	irreversible := fromPiece.Type() == piece.Pawn || isCapture || flag == move.EnPassant

	if !irreversible {
		p.HalfMoveClock++
		if p.HalfMoveClock >= 100 {
			p.State = Draw
		}

		occurrences := 0
		for i := 0; i <= p.HalfMoveClock && i < historySlots; i++ {
			if p.History[i] == p.Hash {
				occurrences++
			}
		}
		if occurrences >= 2 {
			p.State = Draw
		}
		if p.HalfMoveClock < historySlots {
			p.History[p.HalfMoveClock] = p.Hash
		}
	} else {
		p.HalfMoveClock = 0
		p.History = [historySlots]zobrist.Key{}
		if flag == move.DoublePush {
			p.History[0] = 0
		} else {
			p.History[0] = p.Hash
		}
	}

	p.SideToMove = them
	if them == piece.White {
		p.FullMoveNumber++
	}

	if flag == move.DoublePush {
		p.EnPassantFile = File(to.File())
	} else {
		p.EnPassantFile = FileNone
	}

	if p.State == Playing {
		p.GenerateMoves()
		if len(p.MoveList) == 0 {
			if p.CheckN == 0 {
				p.State = Draw
			} else if them == piece.White {
				// White (now to move) has no moves and is in check: Black won.
				p.State = BlackWins
			} else {
				p.State = WhiteWins
			}
		}
	} else {
		p.GenerateMoves()
	}
}
