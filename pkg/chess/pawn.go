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
	"github.com/arkenfall/chesscore/pkg/attacks"
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/move"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

func (p *Position) genPawnMoves() {
	us, them := p.SideToMove, p.SideToMove.Other()
	empty := ^p.Occupied()
	enemies := p.ColorBB[them]

	promoRank := bitboard.Ranks[square.Rank8]
	doublePushFromRank := bitboard.Ranks[square.Rank2]
	if us == piece.Black {
		promoRank = bitboard.Ranks[square.Rank1]
		doublePushFromRank = bitboard.Ranks[square.Rank7]
	}

	for pawns := p.Pawns(us); pawns != bitboard.Empty; {
		from := pawns.Pop()
		fromBB := bitboard.Squares[from]

		pinMask := bitboard.Universe
		switch {
		case p.PinnedD.IsSet(from):
			pinMask = p.PinnedD
		case p.PinnedHV.IsSet(from):
			pinMask = p.PinnedHV
		}

		single := fromBB.Up(us) & empty
		if single != bitboard.Empty {
			p.appendPawn(from, single&p.CheckMask&pinMask, promoRank)

			if fromBB&doublePushFromRank != bitboard.Empty {
				double := single.Up(us) & empty & p.CheckMask & pinMask
				p.append(from, double, move.DoublePush)
			}
		}

		captures := attacks.Pawn[us][from] & enemies & p.CheckMask & pinMask
		p.appendPawn(from, captures, promoRank)

		p.genEnPassant(from, us, pinMask)
	}
}

// appendPawn appends targets as plain pawn moves, expanding any that
// land on the promotion rank into the four promotion-flagged moves.
func (p *Position) appendPawn(from square.Square, targets, promoRank bitboard.Board) {
	promotions := targets & promoRank
	p.append(from, targets&^promoRank, move.Plain)

	for promotions != bitboard.Empty {
		to := promotions.Pop()
		p.MoveList = append(p.MoveList,
			move.New(from, to, move.PromoQueen),
			move.New(from, to, move.PromoRook),
			move.New(from, to, move.PromoBishop),
			move.New(from, to, move.PromoKnight),
		)
	}
}

// genEnPassant appends the en passant capture for the pawn at from, if
// available. The ordinary pin mask still applies (a diagonal pin
// allows it, a file/rank pin forbids it); the rank-pin edge case is
// handled separately via EpPinned.
func (p *Position) genEnPassant(from square.Square, us piece.Color, pinMask bitboard.Board) {
	if p.EnPassantFile == FileNone || from == p.EpPinned {
		return
	}

	to := square.New(square.File(p.EnPassantFile), epTargetRank(us))
	if !attacks.Pawn[us][from].IsSet(to) {
		return
	}

	captured := square.New(square.File(p.EnPassantFile), epCaptureRank(us))
	resolvesCheck := p.CheckMask.IsSet(to) || p.CheckMask.IsSet(captured)
	if resolvesCheck && pinMask.IsSet(to) {
		p.MoveList = append(p.MoveList, move.New(from, to, move.EnPassant))
	}
}
