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

package psqt

import "github.com/corvidlab/corvid/pkg/eval/score"

// psqt32 are the tuning constants of the quarter-board piece-square
// tables (§4.2): one entry per (file in {A,B,C,D}, rank), indexed
// 4*relativeRank+edgeDistance[file] with relativeRank counted from the
// piece's own back rank (rank 0) towards the enemy camp (rank 7).
type psqt32 [32]score.Score

func p(mg, eg int) score.Score { return score.MakeScore(mg, eg) }

var pawn32 = psqt32{
	p(0, 0), p(0, 0), p(0, 0), p(0, 0), // rank 1 (never occupied by a pawn)
	p(-8, 4), p(2, 2), p(-6, -2), p(4, -4),
	p(-10, 2), p(-2, -1), p(6, -6), p(10, -8),
	p(-6, 12), p(3, 8), p(8, 2), p(16, -2),
	p(4, 24), p(10, 20), p(18, 10), p(22, 4),
	p(14, 46), p(22, 40), p(30, 26), p(34, 14),
	p(10, 80), p(16, 74), p(20, 58), p(24, 40),
	p(0, 0), p(0, 0), p(0, 0), p(0, 0), // rank 8 (pawns promote before reaching here)
}

var knight32 = psqt32{
	p(-62, -38), p(-20, -22), p(-12, -12), p(-6, -6),
	p(-18, -18), p(0, -6), p(6, 0), p(10, 4),
	p(-10, -10), p(6, 0), p(14, 8), p(18, 12),
	p(-6, -6), p(10, 4), p(18, 14), p(24, 18),
	p(-4, -4), p(14, 8), p(22, 18), p(28, 22),
	p(-8, -10), p(10, 4), p(20, 14), p(24, 18),
	p(-14, -18), p(2, -4), p(10, 4), p(14, 8),
	p(-64, -40), p(-22, -20), p(-14, -10), p(-8, -4),
}

var bishop32 = psqt32{
	p(-18, -14), p(-6, -6), p(-10, -6), p(-8, -4),
	p(-4, -6), p(8, 0), p(4, -2), p(2, 0),
	p(-2, -4), p(10, 2), p(8, 2), p(8, 4),
	p(-2, -4), p(4, 2), p(10, 6), p(14, 8),
	p(-4, -4), p(6, 2), p(10, 6), p(16, 10),
	p(-6, -6), p(8, 0), p(8, 4), p(10, 6),
	p(-8, -8), p(4, -2), p(2, 0), p(6, 2),
	p(-20, -16), p(-10, -8), p(-14, -8), p(-10, -6),
}

var rook32 = psqt32{
	p(-4, 0), p(0, 0), p(2, 0), p(4, 0),
	p(-10, 0), p(-2, 0), p(0, 0), p(2, 0),
	p(-10, 0), p(-2, 0), p(0, 0), p(2, 0),
	p(-10, 0), p(-2, 0), p(0, 0), p(2, 0),
	p(-8, 2), p(0, 2), p(2, 2), p(4, 2),
	p(-6, 4), p(2, 4), p(4, 4), p(6, 4),
	p(2, 4), p(8, 4), p(10, 4), p(12, 4),
	p(0, 2), p(4, 2), p(6, 2), p(8, 2),
}

var queen32 = psqt32{
	p(-14, -24), p(-6, -14), p(-6, -8), p(-2, -4),
	p(-6, -14), p(2, -4), p(2, 0), p(4, 2),
	p(-4, -8), p(4, 0), p(6, 6), p(6, 8),
	p(-2, -4), p(4, 2), p(6, 8), p(8, 12),
	p(-2, -4), p(4, 2), p(6, 8), p(8, 12),
	p(-6, -8), p(2, 0), p(4, 4), p(4, 6),
	p(-8, -14), p(0, -4), p(0, 0), p(2, 2),
	p(-16, -24), p(-8, -14), p(-8, -10), p(-4, -6),
}

var king32 = psqt32{
	p(36, -52), p(48, -28), p(18, -12), p(6, -6),
	p(30, -28), p(36, -10), p(8, 6), p(-4, 14),
	p(-6, -12), p(4, 6), p(-6, 18), p(-20, 26),
	p(-30, -6), p(-20, 14), p(-30, 26), p(-44, 34),
	p(-48, -6), p(-38, 14), p(-46, 26), p(-58, 34),
	p(-56, -12), p(-46, 6), p(-54, 18), p(-64, 26),
	p(-62, -28), p(-54, -10), p(-58, 6), p(-66, 14),
	p(-66, -52), p(-60, -28), p(-62, -12), p(-68, -6),
}
