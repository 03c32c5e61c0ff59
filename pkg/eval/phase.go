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

package eval

import (
	"github.com/corvidlab/corvid/internal/util"
	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// phaseWeight[t] is how much one piece of type t contributes to the
// 24-point game-phase counter (§4.8): queens 4, rooks 2, minors 1.
var phaseWeight = [piece.TypeN]int{
	piece.Queen:  4,
	piece.Rook:   2,
	piece.Knight: 1,
	piece.Bishop: 1,
}

const maxPhase = 24

// gamePhase computes b's game phase on the 0 (middlegame) to 256
// (endgame) scale taper expects, counting non-pawn material and
// clamping before the 24->256 remap (§4.8).
func gamePhase(b *board.Board) int {
	phase := maxPhase
	for t, w := range phaseWeight {
		if w == 0 {
			continue
		}
		count := b.Pieces[t].Count()
		phase -= w * count
	}
	phase = util.Max(phase, 0)
	return (phase*256 + maxPhase/2) / maxPhase
}

// scaleFactor reports the denominator-128 scale to apply to the
// endgame score (§4.8): opposite-colored-bishop endgames are scaled
// down because they are notoriously drawish, more so the fewer other
// pieces remain on the board.
func scaleFactor(b *board.Board) int {
	whiteBishops := b.Bishops(piece.White)
	blackBishops := b.Bishops(piece.Black)
	if whiteBishops.Count() != 1 || blackBishops.Count() != 1 {
		return ScaleNormal
	}

	whiteSquare := whiteBishops.FirstOne()
	blackSquare := blackBishops.FirstOne()
	whiteDark := (int(whiteSquare.File()) + int(whiteSquare.Rank())) % 2
	blackDark := (int(blackSquare.File()) + int(blackSquare.Rank())) % 2
	if whiteDark == blackDark {
		return ScaleNormal
	}

	nonBishopMinors := b.Knights(piece.White).Count() + b.Knights(piece.Black).Count()
	rooks := b.Rooks(piece.White).Count() + b.Rooks(piece.Black).Count()
	queens := b.Queens(piece.White).Count() + b.Queens(piece.Black).Count()

	switch {
	case queens > 0:
		return ScaleNormal
	case rooks == 0 && nonBishopMinors == 0:
		return ScaleOCBBishopsOnly
	case rooks == 0 && nonBishopMinors == 2:
		return ScaleOCBOneKnight
	case rooks == 2 && nonBishopMinors == 0:
		return ScaleOCBOneRook
	default:
		return ScaleNormal
	}
}

// taper blends mg/eg using phase (0 middlegame to 256 endgame) and the
// endgame scale factor, matching the formula in §4.8:
// (mg*(256-phase) + eg*phase*scale/ScaleNormal) / 256.
func taper(total score.Score, phase, scale int) int {
	mg, eg := total.MG(), total.EG()
	return (mg*(256-phase) + eg*phase*scale/ScaleNormal) / 256
}
