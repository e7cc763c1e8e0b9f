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
	"github.com/arkenfall/chesscore/pkg/castling"
	"github.com/arkenfall/chesscore/pkg/move"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// GenerateMoves refreshes the threat & pin analysis and repopulates
// MoveList with every legal move for the side to move. It is
// idempotent and is also called internally by ApplyMove.
func (p *Position) GenerateMoves() {
	p.analyze()

	// 31 is the average branching factor of a chess position.
	// https://chess.stackexchange.com/a/24325/33336
	p.MoveList = make([]move.Move, 0, 31)

	if p.CheckN < 2 {
		p.genPawnMoves()
		p.genKnightMoves()
		p.genSliderMoves(piece.Bishop)
		p.genSliderMoves(piece.Rook)
		p.genSliderMoves(piece.Queen)
	}
	p.genKingMoves()
}

func (p *Position) append(from square.Square, targets bitboard.Board, flag move.Flag) {
	for targets != bitboard.Empty {
		p.MoveList = append(p.MoveList, move.New(from, targets.Pop(), flag))
	}
}

func (p *Position) genKnightMoves() {
	us := p.SideToMove
	target := ^p.ColorBB[us] & p.CheckMask
	pinned := p.PinnedD | p.PinnedHV

	for knights := p.Knights(us); knights != bitboard.Empty; {
		from := knights.Pop()
		if pinned.IsSet(from) {
			continue // a pinned knight never has a legal move
		}
		p.append(from, attacks.Knight[from]&target, move.Plain)
	}
}

func (p *Position) genSliderMoves(kind piece.Type) {
	us := p.SideToMove
	occ := p.Occupied()
	target := ^p.ColorBB[us] & p.CheckMask

	var pieces bitboard.Board
	switch kind {
	case piece.Bishop:
		pieces = p.Bishops(us)
	case piece.Rook:
		pieces = p.Rooks(us)
	case piece.Queen:
		pieces = p.Queens(us)
	}

	for pieces != bitboard.Empty {
		from := pieces.Pop()

		var raw bitboard.Board
		switch kind {
		case piece.Bishop:
			raw = attacks.Bishop(from, occ)
		case piece.Rook:
			raw = attacks.Rook(from, occ)
		case piece.Queen:
			raw = attacks.Queen(from, occ)
		}

		targets := raw & target
		if p.PinnedD.IsSet(from) {
			targets &= p.PinnedD
		} else if p.PinnedHV.IsSet(from) {
			targets &= p.PinnedHV
		}

		p.append(from, targets, move.Plain)
	}
}

func (p *Position) genKingMoves() {
	us := p.SideToMove
	from := p.Kings[us]

	targets := attacks.King[from] &^ p.ColorBB[us] &^ p.SeenByEnemy
	p.append(from, targets, move.Plain)

	if p.CheckN != 0 {
		return
	}

	occ := p.Occupied()
	kingside, queenside := castling.WhiteKingside, castling.WhiteQueenside
	if us == piece.Black {
		kingside, queenside = castling.BlackKingside, castling.BlackQueenside
	}

	if p.CastlingRights&kingside != 0 {
		info := castling.Infos[kingside]
		if occ&info.Clearance == bitboard.Empty && info.Safe&p.SeenByEnemy == bitboard.Empty {
			p.MoveList = append(p.MoveList, move.New(info.KingFrom, info.KingTo, move.CastleShort))
		}
	}

	if p.CastlingRights&queenside != 0 {
		info := castling.Infos[queenside]
		if occ&info.Clearance == bitboard.Empty && info.Safe&p.SeenByEnemy == bitboard.Empty {
			p.MoveList = append(p.MoveList, move.New(info.KingFrom, info.KingTo, move.CastleLong))
		}
	}
}
