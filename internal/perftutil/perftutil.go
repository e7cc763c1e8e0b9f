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

// Package perftutil provides progress feedback for the long-running
// perft node-count tests, which run into the hundreds of millions of
// nodes at higher depths.
package perftutil

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/arkenfall/chesscore/internal/chesslog"
)

// Bar wraps a progressbar/v3 bar sized for a perft run of known depth.
// The expected node count is only a display estimate; Add64 is safe to
// call past it.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates a progress bar labeled for the given perft depth.
func NewBar(depth int, expectedNodes int64) *Bar {
	return &Bar{
		bar: progressbar.NewOptions64(expectedNodes,
			progressbar.OptionSetDescription(fmt.Sprintf("perft depth %d", depth)),
			progressbar.OptionThrottle(0),
		),
	}
}

// Add records n additional visited nodes.
func (b *Bar) Add(n int64) {
	if err := b.bar.Add64(n); err != nil {
		chesslog.Debugf("perftutil: %v", err)
	}
}

// Close finalizes the bar's output.
func (b *Bar) Close() {
	if err := b.bar.Close(); err != nil {
		chesslog.Debugf("perftutil: %v", err)
	}
}
