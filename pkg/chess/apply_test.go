package chess_test

import (
	"testing"

	"github.com/arkenfall/chesscore/pkg/chess"
	"github.com/arkenfall/chesscore/pkg/square"
	"github.com/arkenfall/chesscore/pkg/zobrist"
)

func TestFiftyMoveRuleDraws(t *testing.T) {
	// Fast-forward the half-move clock to its last reversible tick
	// directly rather than playing out 99 non-repeating king moves, then
	// verify the 100th reversible half-move trips the draw.
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	p.HalfMoveClock = 99
	p.History = [101]zobrist.Key{}
	p.History[0] = p.Hash

	m, ok := findMove(p, square.E1, square.D1)
	if !ok {
		t.Fatal("Ke1-d1 not found")
	}
	p.ApplyMove(m)

	if p.HalfMoveClock < 100 {
		t.Fatalf("half-move clock = %d, want >= 100", p.HalfMoveClock)
	}
	if p.State != chess.Draw {
		t.Errorf("state = %v, want Draw after the 100th reversible half-move", p.State)
	}
}

func TestThreefoldRepetitionDraws(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	cycle := []struct{ from, to square.Square }{
		{square.E1, square.D1},
		{square.E8, square.D8},
		{square.D1, square.E1},
		{square.D8, square.E8},
	}

	// The starting position occurs once at move 0; two more passes
	// through the full cycle bring it back to the same position two
	// more times, for three occurrences total.
	for rep := 0; rep < 2 && p.State == chess.Playing; rep++ {
		for _, step := range cycle {
			m, ok := findMove(p, step.from, step.to)
			if !ok {
				t.Fatalf("rep %d: move %s%s not found", rep, step.from, step.to)
			}
			p.ApplyMove(m)
		}
	}

	if p.State != chess.Draw {
		t.Errorf("state = %v, want Draw by threefold repetition", p.State)
	}
}

func TestCheckmateIsDetected(t *testing.T) {
	// Fool's mate.
	p := mustFEN(t, startFEN)
	play := func(from, to square.Square) {
		m, ok := findMove(p, from, to)
		if !ok {
			t.Fatalf("move %s%s not found", from, to)
		}
		p.ApplyMove(m)
	}

	play(square.F2, square.F3)
	play(square.E7, square.E5)
	play(square.G2, square.G4)
	play(square.D8, square.H4)

	if p.State != chess.BlackWins {
		t.Errorf("state = %v, want BlackWins (checkmate)", p.State)
	}
	if len(p.MoveList) != 0 {
		t.Errorf("checkmated side must have no legal moves, got %d", len(p.MoveList))
	}
}

func TestStalemateIsDetected(t *testing.T) {
	// Classic stalemate: black king in the corner, no legal moves, not in check.
	p := mustFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	if p.CheckN != 0 {
		t.Fatalf("black should not be in check, CheckN = %d", p.CheckN)
	}
	if len(p.MoveList) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(p.MoveList))
	}
}
