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

package square

// File represents a file (a vertical line of squares) on the board.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on a chessboard.
const FileN = 8

func (f File) String() string {
	const fileToStr = "abcdefgh"
	return string(fileToStr[f])
}

// FileFrom parses a File from its letter, e.g. 'e'.
func FileFrom(id byte) File {
	return File(id - 'a')
}

// Rank represents a rank (a horizontal line of squares) on the board.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks on a chessboard.
const RankN = 8

func (r Rank) String() string {
	const rankToStr = "12345678"
	return string(rankToStr[r])
}

// RankFrom parses a Rank from its digit, e.g. '4'.
func RankFrom(id byte) Rank {
	return Rank(id - '1')
}

// Diagonal indexes the 15 a1-h8-parallel diagonals.
type Diagonal int8

// DiagonalN is the number of a1-h8-parallel diagonals.
const DiagonalN = 15

// AntiDiagonal indexes the 15 a8-h1-parallel diagonals.
type AntiDiagonal int8

// AntiDiagonalN is the number of a8-h1-parallel diagonals.
const AntiDiagonalN = 15
