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
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// evaluatePassedPawns prices every pawn of us that C4 marked passed
// (§4.7): a rank-indexed base bonus gated by whether the pawn can push
// at all and whether that push is contested, plus king-distance terms
// and a bonus when the entire remaining path to promotion is safe.
func evaluatePassedPawns(info *EvalInfo, us piece.Color) score.Score {
	them := us.Other()
	friendlyKing := info.board.King(us)
	enemyKing := info.board.King(them)

	var eval score.Score
	for bb := info.passedPawns & info.board.Pawns(us); bb != bitboard.Empty; {
		s := bb.Pop()
		relRank := s.Rank().RelativeTo(us == piece.White)

		pushBB := bitboard.Squares[s].Up(us)
		canAdvance := boolIndex(pushBB&info.occupied == bitboard.Empty)
		safeAdvance := boolIndex(pushBB&info.attacked[them] == bitboard.Empty)

		eval += PassedPawn[canAdvance][safeAdvance][relRank]
		info.trace.add(termPassedPawn, us, 1)

		eval += score.Score(square.Distance(friendlyKing, s)) * PassedFriendlyDistance[relRank]
		eval += score.Score(square.Distance(enemyKing, s)) * PassedEnemyDistance[relRank]

		path := bitboard.PassedPawnMask[us][s] & bitboard.Files[s.File()]
		if path&info.attacked[them] == bitboard.Empty {
			eval += PassedSafePromotionPath
		}
	}

	return eval
}
