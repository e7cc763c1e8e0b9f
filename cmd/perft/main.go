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

// Command perft enumerates the legal move tree of a position to a
// given depth and reports the per-root-move breakdown, the standard
// way of debugging a mismatch against published node counts.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arkenfall/chesscore/pkg/chess"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: perft <depth> <fen>")
		os.Exit(1)
	}

	depth, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: bad depth %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	fen := os.Args[2]
	for i := 3; i < len(os.Args); i++ {
		fen += " " + os.Args[i]
	}

	p, err := chess.FromFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	divide, total := chess.PerftDivide(p, depth)
	for move, nodes := range divide {
		fmt.Printf("%s: %d\n", move, nodes)
	}
	fmt.Printf("\nnodes searched: %d\n", total)
}
