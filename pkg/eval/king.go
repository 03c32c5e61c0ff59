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
	"github.com/corvidlab/corvid/pkg/chess/attacks"
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// kingAreaAttackScale is the fixed-point scale applied to
// kingAttacksCount before dividing by the king area's size, standing
// in for the 9.0 float factor in scaledAttackCounts (§4.6).
const kingAreaAttackScale = 9

// evaluateKingShelterStorm scores the pawn shield in front of us's king
// and the enemy pawn storm facing it down the same files (§4.6). This
// term only depends on pawn and king placement, so it belongs to the
// pawn-king subtotal the cache (§4.9) persists.
func evaluateKingShelterStorm(info *EvalInfo, us piece.Color) score.Score {
	them := us.Other()
	kingFile := info.board.King(us).File()
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)

	var eval score.Score
	for f := kingFile - 1; f <= kingFile+1; f++ {
		if f < square.FileA || f > square.FileH {
			continue
		}

		king := info.board.King(us)

		ours := ownPawns & bitboard.Files[f]
		shelterDist := 7
		if ours != bitboard.Empty {
			shelterDist = shelterRankDistance(ours, king)
		}
		same := boolIndex(f == kingFile)
		eval += KingShelter[same][f][shelterDist]
		info.trace.add(termKingShelter, us, 1)

		theirs := enemyPawns & bitboard.Files[f]
		stormDist := 7
		blocked := 0
		if theirs != bitboard.Empty {
			stormDist = shelterRankDistance(theirs, king)
			if ours != bitboard.Empty && stormDist == shelterDist+1 {
				blocked = 1
			}
		}
		eval += KingStorm[blocked][f.Mirror()][stormDist]
		info.trace.add(termKingStorm, us, 1)
	}

	return eval
}

// shelterRankDistance returns how many ranks separate the king from
// the nearest pawn in the given (already file-masked) set, clamped
// into the 0-7 table range.
func shelterRankDistance(pawns bitboard.Board, king square.Square) int {
	best := 7
	for bb := pawns; bb != bitboard.Empty; {
		s := bb.Pop()
		best = util.Min(best, util.Abs(int(s.Rank())-int(king.Rank())))
	}
	return best
}

// evaluateKingDanger computes the quadratic king-safety damping (§4.6)
// for us's king: a weighted count of weaknesses and potential checks,
// squared and scaled down, applied only once enough attackers justify
// it. Unlike shelter/storm this depends on piece placement too, so it
// is never folded into the pawn-king cache.
func evaluateKingDanger(info *EvalInfo, us piece.Color) score.Score {
	if !info.kingDangerThreshold(us) {
		return score.MakeScore(0, 0)
	}

	them := us.Other()
	kingSq := info.board.King(us)

	// weak squares are those them attacks, us doesn't doubly defend,
	// and either doesn't defend at all or defends only with the queen
	// or king (a defender that can't actually recapture there).
	weak := info.attacked[them] &^ info.attackedBy2[us]
	weak &= ^info.attacked[us] | info.attackedBy[us][piece.Queen] | info.attackedBy[us][piece.King]

	weakSquares := (weak & info.kingAreas[us]).Count()
	shelterCount := (info.board.Pawns(us) & info.kingAreas[us] &^ weak).Count()

	noEnemyQueens := boolIndex(info.board.Queens(them) == bitboard.Empty)

	occ := info.occupied
	rookLines := attacks.Rook(kingSq, occ)
	bishopLines := attacks.Bishop(kingSq, occ)

	// safe squares for them's checking pieces: not occupied by them,
	// and either undefended by us or weak against a second attacker.
	safe := ^info.board.Colours[them] & (^info.attacked[us] | (weak & info.attackedBy2[them]))

	queenChecks := ((rookLines | bishopLines) & info.attackedBy[them][piece.Queen] & safe).Count()
	rookChecks := (rookLines & info.attackedBy[them][piece.Rook] & safe).Count()
	bishopChecks := (bishopLines & info.attackedBy[them][piece.Bishop] & safe).Count()
	knightChecks := (attacks.Knight[kingSq] & info.attackedBy[them][piece.Knight] & safe).Count()

	// scaledAttackCounts is 9*kingAttacksCount[us]/popcount(kingAreas[us]),
	// kept as a single fixed-point division (rather than float32) so it
	// is bit-exact across compilers; areaCount is never 0 since a king
	// area always includes the king's own square.
	areaCount := info.kingAreas[us].Count()
	scaledAttackTerm := SafetyScaledAttackWeight * kingAreaAttackScale * info.kingAttacksCount[us] / areaCount

	danger := info.kingAttackersCount[us]*info.kingAttackersWeight[us] +
		scaledAttackTerm +
		weakSquares*SafetyWeightWeakSquares +
		shelterCount*SafetyWeightOwnPawns +
		noEnemyQueens*SafetyWeightNoEnemyQueens +
		queenChecks*SafetyWeightQueenCheck +
		rookChecks*SafetyWeightRookCheck +
		bishopChecks*SafetyWeightBishopCheck +
		knightChecks*SafetyWeightKnightCheck +
		SafetyAdjustment

	danger = util.Max(danger, 0)

	mg := -(danger * danger) / 720
	eg := -danger / 20

	return score.MakeScore(mg, eg)
}
