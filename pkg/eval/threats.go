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
	"github.com/corvidlab/corvid/pkg/chess/attacks"
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// evaluateThreats prices every way us currently menaces them's pieces
// (§4.7/§6): undefended pawns, minors and rooks hanging to successively
// weaker attackers, queens hanging to anything, pieces overloaded
// defending at least one other hanging piece, and safe pawn-push threats.
func evaluateThreats(info *EvalInfo, us piece.Color) score.Score {
	them := us.Other()
	var eval score.Score

	enemyPawns := info.board.Pawns(them)
	weakPawns := enemyPawns &^ info.pawnAttacks[them] & info.attacked[us]
	eval += score.Score(weakPawns.Count()) * ThreatWeakPawn
	info.trace.add(termThreatWeakPawn, us, weakPawns.Count())

	enemyMinors := info.board.Knights(them) | info.board.Bishops(them)
	minorAttacks := info.attackedBy[us][piece.Knight] | info.attackedBy[us][piece.Bishop]
	majorAttacks := info.attackedBy[us][piece.Rook] | info.attackedBy[us][piece.Queen]
	kingAttacks := info.attackedBy[us][piece.King]

	byPawn := enemyMinors & info.pawnAttacks[us]
	byMinor := enemyMinors & minorAttacks &^ byPawn
	byMajor := enemyMinors & majorAttacks &^ byPawn &^ byMinor
	byKing := enemyMinors & kingAttacks &^ byPawn &^ byMinor &^ byMajor

	eval += score.Score(byPawn.Count()) * ThreatMinorAttackedByPawn
	eval += score.Score(byMinor.Count()) * ThreatMinorAttackedByMinor
	eval += score.Score(byMajor.Count()) * ThreatMinorAttackedByMajor
	eval += score.Score(byKing.Count()) * ThreatMinorAttackedByKing
	info.trace.add(termThreatMinorAttackedByPawn, us, byPawn.Count())
	info.trace.add(termThreatMinorAttackedByMinor, us, byMinor.Count())
	info.trace.add(termThreatMinorAttackedByMajor, us, byMajor.Count())
	info.trace.add(termThreatMinorAttackedByKing, us, byKing.Count())

	enemyRooks := info.board.Rooks(them)
	lesserAttacks := info.pawnAttacks[us] | minorAttacks
	rookByLesser := enemyRooks & lesserAttacks
	rookByKing := enemyRooks & kingAttacks &^ rookByLesser
	eval += score.Score(rookByLesser.Count()) * ThreatRookAttackedByLesser
	eval += score.Score(rookByKing.Count()) * ThreatRookAttackedByKing
	info.trace.add(termThreatRookAttackedByLesser, us, rookByLesser.Count())
	info.trace.add(termThreatRookAttackedByKing, us, rookByKing.Count())

	enemyQueens := info.board.Queens(them)
	queensHanging := enemyQueens & info.attacked[us]
	eval += score.Score(queensHanging.Count()) * ThreatQueenAttackedByOne
	info.trace.add(termThreatQueenAttackedByOne, us, queensHanging.Count())

	overloaded := overloadedPieces(info, us, them)
	eval += score.Score(overloaded) * ThreatOverloadedPieces
	info.trace.add(termThreatOverloadedPieces, us, overloaded)

	pushThreats := pawnPushThreats(info, us, them)
	eval += score.Score(pushThreats) * ThreatByPawnPush
	info.trace.add(termThreatByPawnPush, us, pushThreats)

	// the Threat* weights are penalties seen from the threatened side, so
	// their sum counts in us's favour.
	return -eval
}

// overloadedPieces counts them's non-king, non-pawn pieces that are
// both hanging to us and still defending at least one other them
// piece that is also hanging, the classic overload pattern.
func overloadedPieces(info *EvalInfo, us, them piece.Color) int {
	kingSq := info.board.King(them)
	hangingPieces := (info.board.Colours[them] &^ info.board.Pawns(them) &^ bitboard.Squares[kingSq]) & info.attacked[us]

	count := 0
	for bb := hangingPieces; bb != bitboard.Empty; {
		s := bb.Pop()
		p := info.board.PieceAt(s)
		defends := attacks.Of(p, s, info.occupied) & hangingPieces
		if defends != bitboard.Empty {
			count++
		}
	}
	return count
}

// pawnPushThreats counts enemy non-pawn pieces that would come under
// attack from a one- or two-square advance of one of us's pawns,
// a cheap two-ply look-ahead for tactics the static eval can otherwise
// see coming (§4.7).
func pawnPushThreats(info *EvalInfo, us, them piece.Color) int {
	ownPawns := info.board.Pawns(us)
	doublePushRank := bitboard.Rank4
	if us == piece.Black {
		doublePushRank = bitboard.Rank5
	}

	singlePush := ownPawns.Up(us) &^ info.occupied
	doublePush := singlePush.Up(us) &^ info.occupied & doublePushRank
	pushSquares := (singlePush | doublePush) &^ info.attacked[them]

	pushAttacks := attacks.Pawns(pushSquares, us)
	threatened := pushAttacks & info.board.Colours[them] &^ info.board.Pawns(them)
	return threatened.Count()
}
