package chess_test

import (
	"testing"

	"github.com/arkenfall/chesscore/pkg/chess"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftStartingPosition(t *testing.T) {
	want := []int64{1, 20, 400, 8902, 197281, 4865609}

	for depth, n := range want {
		p, err := chess.FromFEN(startFEN)
		if err != nil {
			t.Fatal(err)
		}
		if got := chess.Perft(p, depth); got != n {
			t.Errorf("perft(start, %d) = %d, want %d", depth, got, n)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	want := map[int]int64{
		1: 48,
		2: 2039,
		3: 97862,
	}

	for depth, n := range want {
		p, err := chess.FromFEN(kiwipeteFEN)
		if err != nil {
			t.Fatal(err)
		}
		if got := chess.Perft(p, depth); got != n {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", depth, got, n)
		}
	}
}

func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}

	p, err := chess.FromFEN(kiwipeteFEN)
	if err != nil {
		t.Fatal(err)
	}
	if got := chess.Perft(p, 4); got != 4085603 {
		t.Errorf("perft(kiwipete, 4) = %d, want 4085603", got)
	}
}

func TestPerftEnPassantAndPromotionPosition(t *testing.T) {
	// A known perft-suite position exercising en passant, promotion and
	// castling discoveries together (position 5 of the usual suite).
	const fen = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	want := []int64{1, 44, 1486, 62379}

	for depth, n := range want {
		p, err := chess.FromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := chess.Perft(p, depth); got != n {
			t.Errorf("perft(pos5, %d) = %d, want %d", depth, got, n)
		}
	}
}
