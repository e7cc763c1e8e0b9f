package chess_test

import (
	"testing"

	"github.com/arkenfall/chesscore/pkg/chess"
	"github.com/arkenfall/chesscore/pkg/move"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
)

func mustFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	p, err := chess.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func findMove(p *chess.Position, from, to square.Square) (move.Move, bool) {
	for _, m := range p.MoveList {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return 0, false
}

func TestDoublePushSetsEnPassantFile(t *testing.T) {
	p := mustFEN(t, startFEN)

	m, ok := findMove(p, square.E2, square.E4)
	if !ok {
		t.Fatal("e2e4 not found in starting move list")
	}
	if m.Flag() != move.DoublePush {
		t.Fatalf("e2e4 flag = %v, want DoublePush", m.Flag())
	}

	p.ApplyMove(m)

	if p.EnPassantFile != chess.File(square.FileE) {
		t.Errorf("en passant file = %v, want %v", p.EnPassantFile, square.FileE)
	}
	if p.SideToMove != piece.Black {
		t.Errorf("side to move = %v, want Black", p.SideToMove)
	}
	if len(p.MoveList) != 20 {
		t.Errorf("black replies = %d, want 20", len(p.MoveList))
	}
}

func TestThirdMoveBlackHas29LegalMovesOneKingMove(t *testing.T) {
	p := mustFEN(t, startFEN)

	play := func(from, to square.Square) {
		m, ok := findMove(p, from, to)
		if !ok {
			t.Fatalf("move %s%s not found", from, to)
		}
		p.ApplyMove(m)
	}

	play(square.E2, square.E4)
	play(square.E7, square.E5)
	play(square.G1, square.F3)

	if len(p.MoveList) != 29 {
		t.Fatalf("black legal moves = %d, want 29", len(p.MoveList))
	}
	// The 29 include Ke8-e7, the king's only move: e7 is empty after
	// ...e5 and not attacked.
	var kingMoves []move.Move
	for _, m := range p.MoveList {
		if m.From() == square.E8 {
			kingMoves = append(kingMoves, m)
		}
	}
	if len(kingMoves) != 1 || kingMoves[0].To() != square.E7 {
		t.Errorf("king moves = %v, want only e8e7", kingMoves)
	}
}

func TestRookChecksAlongFile(t *testing.T) {
	p := mustFEN(t, "8/8/8/3k4/8/8/4K3/R7 w - - 0 1")

	m, ok := findMove(p, square.A1, square.D1)
	if !ok {
		t.Fatal("Ra1-d1 not found")
	}
	p.ApplyMove(m)

	if p.CheckN != 1 {
		t.Fatalf("CheckN = %d, want 1", p.CheckN)
	}
	for _, mv := range p.MoveList {
		if mv.From() != square.D5 {
			t.Errorf("unexpected non-king move %s while in check", mv)
		}
	}
	if len(p.MoveList) == 0 {
		t.Error("black must have at least one legal king move")
	}
}

func TestEnPassantRankPinIsRejected(t *testing.T) {
	p := mustFEN(t, "8/8/8/K2pP2r/8/8/8/8 w - d6 0 1")

	if _, ok := findMove(p, square.E5, square.D6); ok {
		t.Error("exd6 e.p. should be illegal: it exposes the king on the 5th rank")
	}
	if _, ok := findMove(p, square.E5, square.E6); !ok {
		t.Error("e5-e6 should remain legal")
	}
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	p := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	var promotions []move.Move
	for _, m := range p.MoveList {
		if m.IsPromotion() {
			promotions = append(promotions, m)
		}
	}

	if len(promotions) != 4 {
		t.Fatalf("promotion moves = %d, want 4", len(promotions))
	}

	want := map[move.Flag]bool{
		move.PromoQueen: false, move.PromoRook: false,
		move.PromoBishop: false, move.PromoKnight: false,
	}
	for _, m := range promotions {
		if m.From() != square.A7 || m.To() != square.A8 {
			t.Errorf("promotion move %s has unexpected from/to", m)
		}
		want[m.Flag()] = true
	}
	for flag, seen := range want {
		if !seen {
			t.Errorf("missing promotion flag %d", flag)
		}
	}
}

func TestCastlingThroughCheckIsExcluded(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// Move the black rook to attack f1, a square the white king must
	// pass through to castle kingside.
	p.ClearSquare(square.H8)
	p.FillSquare(square.F8, piece.BlackRook)
	p.GenerateMoves()

	if _, ok := findMove(p, square.E1, square.G1); ok {
		t.Error("O-O should be illegal: f1 is attacked")
	}
	if _, ok := findMove(p, square.E1, square.C1); !ok {
		t.Error("O-O-O should remain legal")
	}
}
