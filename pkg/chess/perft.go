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

import "github.com/arkenfall/chesscore/internal/perftutil"

// Perft walks the move tree rooted at p to the given depth and returns
// the total leaf count. It is the standard move generator correctness
// harness: every leaf corresponds to one reachable position, so a
// mismatch against a known-good table pinpoints a generation bug.
//
// p.MoveList must already reflect the current position (FromFEN and
// ApplyMove populate it; New does not); Perft does not mutate p.
func Perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range p.MoveList {
		child := p.Clone()
		child.ApplyMove(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide reports the leaf count contributed by each root move
// separately, which is what a perft mismatch is actually debugged
// against. A progress bar tracks the (potentially very slow) deepest
// runs.
func PerftDivide(p *Position, depth int) (map[string]int64, int64) {
	divide := make(map[string]int64, len(p.MoveList))
	bar := perftutil.NewBar(depth, expectedNodes(depth))
	defer bar.Close()

	var total int64
	for _, m := range p.MoveList {
		child := p.Clone()
		child.ApplyMove(m)

		n := Perft(child, depth-1)
		divide[m.String()] = n
		total += n
		bar.Add(n)
	}
	return divide, total
}

// expectedNodes is a rough branching-factor estimate (35^depth) used
// only to size the progress bar; it has no effect on correctness.
func expectedNodes(depth int) int64 {
	n := int64(1)
	for i := 0; i < depth; i++ {
		n *= 35
	}
	return n
}
