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
	"fmt"
	"strconv"
	"strings"

	"github.com/arkenfall/chesscore/internal/chesslog"
	"github.com/arkenfall/chesscore/pkg/castling"
	"github.com/arkenfall/chesscore/pkg/piece"
	"github.com/arkenfall/chesscore/pkg/square"
	"github.com/arkenfall/chesscore/pkg/zobrist"
)

// Reason identifies why a FEN string was rejected.
type Reason int

const (
	BadFieldCount Reason = iota
	BadPieceLetter
	BadColorLetter
	BadCastlingLetter
	BadEnPassantFile
	BadClock
)

func (r Reason) String() string {
	switch r {
	case BadFieldCount:
		return "wrong number of fields"
	case BadPieceLetter:
		return "unknown piece letter"
	case BadColorLetter:
		return "unknown side to move letter"
	case BadCastlingLetter:
		return "unknown castling availability letter"
	case BadEnPassantFile:
		return "en passant file out of range"
	case BadClock:
		return "half-move clock is not a non-negative integer or full-move number is not a positive integer"
	default:
		return "unknown reason"
	}
}

// ParseError reports why FromFEN rejected a string.
type ParseError struct {
	Reason Reason
	FEN    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chess: invalid fen %q: %s", e.FEN, e.Reason)
}

// FromFEN parses a FEN string into a Position. The underlying
// field-level construction (New plus direct field assignment, as used
// below) performs no validation of its own and is undefined on
// malformed input; FromFEN is the one validating boundary, rejecting
// syntactically malformed input with a typed, logged error instead of
// producing an undefined Position.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, reject(fen, BadFieldCount)
	}

	p := New()

	rank := square.Rank8
	file := square.FileA
	for _, c := range fields[0] {
		switch {
		case c == '/':
			rank--
			file = square.FileA
		case c >= '1' && c <= '8':
			file += square.File(c - '0')
		default:
			id := string(c)
			if !strings.ContainsAny(id, "KQRBNPkqrbnp") {
				return nil, reject(fen, BadPieceLetter)
			}
			p.FillSquare(square.New(file, rank), piece.NewFromString(id))
			file++
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = piece.White
	case "b":
		p.SideToMove = piece.Black
	default:
		return nil, reject(fen, BadColorLetter)
	}

	if fields[2] != "-" && strings.Trim(fields[2], "KQkq") != "" {
		return nil, reject(fen, BadCastlingLetter)
	}
	p.CastlingRights = castling.NewRights(fields[2])

	if fields[3] == "-" {
		p.EnPassantFile = FileNone
	} else {
		if len(fields[3]) != 2 || fields[3][0] < 'a' || fields[3][0] > 'h' {
			return nil, reject(fen, BadEnPassantFile)
		}
		p.EnPassantFile = File(square.FileFrom(fields[3][0]))
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		return nil, reject(fen, BadClock)
	}
	p.HalfMoveClock = clock

	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil || moveNumber < 1 {
		return nil, reject(fen, BadClock)
	}
	p.FullMoveNumber = moveNumber

	p.Hash = computeHash(p)
	p.History[0] = p.Hash
	p.GenerateMoves()

	return p, nil
}

func reject(fen string, reason Reason) error {
	err := &ParseError{Reason: reason, FEN: fen}
	chesslog.Errorf("%s", err)
	return err
}

// computeHash derives the Zobrist hash of p from scratch. Used once at
// load time; every subsequent change is incremental (ClearSquare,
// FillSquare, and the side/castling XORs in ApplyMove).
func computeHash(p *Position) zobrist.Key {
	var h zobrist.Key
	for s := square.A1; s <= square.H8; s++ {
		if pc := p.Mailbox[s]; pc != piece.NoPiece {
			h ^= zobrist.PieceSquare[pc][s]
		}
	}
	if p.SideToMove == piece.Black {
		h ^= zobrist.SideToMove
	}
	h ^= zobrist.CastlingKey(p.CastlingRights)
	return h
}

// FEN renders p as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.Mailbox[square.New(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	if p.EnPassantFile == FileNone {
		sb.WriteByte('-')
	} else {
		rank := epTargetRank(p.SideToMove)
		sb.WriteString(square.New(square.File(p.EnPassantFile), rank).String())
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfMoveClock, p.FullMoveNumber)
	return sb.String()
}
