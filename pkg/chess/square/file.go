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

package square

// File represents a file (a vertical line of squares) on the chessboard.
type File int8

// constants representing every file
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

// FileN is the number of files.
const FileN = 8

// edgeDistance maps a file to its distance from the nearest edge file,
// the {0,1,2,3,3,2,1,0} sequence used by the quarter-board PSQT index.
var edgeDistance = [FileN]int{0, 1, 2, 3, 3, 2, 1, 0}

// EdgeDistance returns how many files f is from the closest of the A/H edges.
func (f File) EdgeDistance() int {
	return edgeDistance[f]
}

// String converts a File into its string representation.
func (f File) String() string {
	const fileToStr = "abcdefgh"
	return string(fileToStr[f])
}

// FileFrom creates an instance of File from the given file id.
func FileFrom(id string) File {
	return File(id[0] - 'a')
}

// Mirror returns the file mirrored across the board's central vertical
// axis: FileA<->FileH, FileB<->FileG, and so on. King-storm tables are
// indexed by this mirrored file.
func (f File) Mirror() File {
	return FileH - f
}

// Rank represents a rank (a horizontal line of squares) on the chessboard.
type Rank int8

// constants representing every rank, Rank8 first to match Square's layout
const (
	Rank8 Rank = iota
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
)

// RankN is the number of ranks.
const RankN = 8

// String converts a Rank into its string representation.
func (r Rank) String() string {
	const rankToStr = "87654321"
	return string(rankToStr[r])
}

// RankFrom creates an instance of Rank from the given rank id.
func RankFrom(id string) Rank {
	return Rank1 - Rank(id[0]-'1')
}

// RelativeTo returns the rank as seen from the given color's
// perspective, counting up from that color's own back rank.
func (r Rank) RelativeTo(white bool) Rank {
	if white {
		return Rank1 - r
	}
	return r
}
