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

package chess

import (
	"github.com/arkenfall/chesscore/pkg/attacks"
	"github.com/arkenfall/chesscore/pkg/bitboard"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

// analyze runs the threat & pin analyzer for the current side to move,
// against the side that just moved (SideToMove's opponent). It fills
// CheckN, CheckMask, PinnedD, PinnedHV, SeenByEnemy and EpPinned.
func (p *Position) analyze() {
	us := p.SideToMove
	them := us.Other()
	occ := p.Occupied()
	kingSq := p.Kings[us]

	p.calculateCheckmask(us, them, occ, kingSq)
	p.calculatePinmask(us, them, kingSq)
	p.SeenByEnemy = p.seenSquares(them)
	p.calculateEpPin(us, them, kingSq)
}

// calculateCheckmask computes the number of checkers and the
// block-ray/capture mask a friendly piece must land in to resolve a
// single check. It is Universe when not in check; in double check
// (CheckN>=2) only king moves are generated, so its value is not used.
func (p *Position) calculateCheckmask(us, them piece.Color, occ bitboard.Board, kingSq square.Square) {
	p.CheckN = 0
	p.CheckMask = bitboard.Empty

	pawns := p.Pawns(them) & attacks.Pawn[us][kingSq]
	knights := p.Knights(them) & attacks.Knight[kingSq]
	bishops := (p.Bishops(them) | p.Queens(them)) & attacks.Bishop(kingSq, occ)
	rooks := (p.Rooks(them) | p.Queens(them)) & attacks.Rook(kingSq, occ)

	switch {
	case pawns != bitboard.Empty:
		p.CheckMask |= pawns
		p.CheckN++
	case knights != bitboard.Empty:
		p.CheckMask |= knights
		p.CheckN++
	}

	if bishops != bitboard.Empty {
		s := bishops.FirstOne()
		p.CheckMask |= bitboard.Between[kingSq][s] | bitboard.Squares[s]
		p.CheckN++
	}

	if p.CheckN < 2 && rooks != bitboard.Empty {
		if p.CheckN == 0 && rooks.Count() > 1 {
			p.CheckN = 2 // double check by two rook-direction sliders
		} else {
			s := rooks.FirstOne()
			p.CheckMask |= bitboard.Between[kingSq][s] | bitboard.Squares[s]
			p.CheckN++
		}
	}

	if p.CheckN == 0 {
		p.CheckMask = bitboard.Universe
	}
}

// calculatePinmask computes PinnedD and PinnedHV: the union of every
// ray, from just past the king through and including a pinning
// attacker, that pins exactly one friendly piece. A piece on one of
// these rays may only move within it (see genSlider/genPawn).
func (p *Position) calculatePinmask(us, them piece.Color, kingSq square.Square) {
	friends := p.ColorBB[us]
	enemies := p.ColorBB[them]

	p.PinnedD = bitboard.Empty
	p.PinnedHV = bitboard.Empty

	for rooks := (p.Rooks(them) | p.Queens(them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		r := rooks.Pop()
		ray := bitboard.Between[kingSq][r] | bitboard.Squares[r]
		if (ray & friends).Count() == 1 {
			p.PinnedHV |= ray
		}
	}

	for bishops := (p.Bishops(them) | p.Queens(them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		b := bishops.Pop()
		ray := bitboard.Between[kingSq][b] | bitboard.Squares[b]
		if (ray & friends).Count() == 1 {
			p.PinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by by, with the opposing
// king removed as a blocker so that it correctly reports the squares
// that king cannot retreat to along a check ray.
func (p *Position) seenSquares(by piece.Color) bitboard.Board {
	pawns := p.Pawns(by)
	knights := p.Knights(by)
	bishops := p.Bishops(by)
	rooks := p.Rooks(by)
	queens := p.Queens(by)
	kingSq := p.Kings[by]

	blockers := p.Occupied() &^ p.KingBB(by.Other())

	var seen bitboard.Board
	if by == piece.White {
		seen = pawns.North().East() | pawns.North().West()
	} else {
		seen = pawns.South().East() | pawns.South().West()
	}

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}
	seen |= attacks.King[kingSq]

	return seen
}

// calculateEpPin detects the rank-pin edge case: a friendly pawn that
// could otherwise capture en passant, but whose capture would remove
// both it and the captured pawn from the king's rank at once, exposing
// the king to a rook or queen along that rank.
func (p *Position) calculateEpPin(us, them piece.Color, kingSq square.Square) {
	p.EpPinned = square.None

	if p.EnPassantFile == FileNone || kingSq.Rank() != epCaptureRank(us) {
		return
	}

	capturedSq := square.New(square.File(p.EnPassantFile), epCaptureRank(us))
	occ := p.Occupied()

	for _, delta := range [2]int{-1, 1} {
		f := int(capturedSq.File()) + delta
		if f < 0 || f > 7 {
			continue
		}
		candidate := square.New(square.File(f), capturedSq.Rank())
		if !p.Pawns(us).IsSet(candidate) {
			continue
		}

		without := occ
		without.Unset(capturedSq)
		without.Unset(candidate)

		attackers := (p.Rooks(them) | p.Queens(them)) & bitboard.Hyperbola(kingSq, without, bitboard.Ranks[kingSq.Rank()])
		if attackers != bitboard.Empty {
			p.EpPinned = candidate
			return
		}
	}
}

// epCaptureRank is the rank the captured pawn sits on for a color's en
// passant capture: the captured pawn double-pushed to rank 5 if White
// is capturing, or to rank 4 if Black is capturing.
func epCaptureRank(us piece.Color) square.Rank {
	if us == piece.White {
		return square.Rank5
	}
	return square.Rank4
}

// epTargetRank is the rank the capturing pawn lands on: rank 6 for
// White, rank 3 for Black.
func epTargetRank(us piece.Color) square.Rank {
	if us == piece.White {
		return square.Rank6
	}
	return square.Rank3
}
