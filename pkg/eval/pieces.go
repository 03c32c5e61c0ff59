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
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// relativeRankSeventh/relativeRankEighth are the relative-rank values
// (as returned by square.Rank.RelativeTo, which counts 0 from a
// color's own back rank) for that color's seventh and eighth ranks:
// white's rank 7 and rank 8 are relative ranks 6 and 7, since
// square.Rank7 (=1) and square.Rank8 (=0) are absolute board ranks,
// not relative ones.
const (
	relativeRankSeventh = 6
	relativeRankEighth  = 7
)

// lightSquares/darkSquares classify every square by bishop color
// complex, used to price rammed pawns sitting on a bishop's own color.
var lightSquares, darkSquares bitboard.Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		if (int(s.File())+int(s.Rank()))%2 == 0 {
			darkSquares.Set(s)
		} else {
			lightSquares.Set(s)
		}
	}
}

// evaluatePieces scores every non-pawn, non-king piece of us in fixed
// knight/bishop/rook/queen order (§4.5), feeding attack bitboards and
// king-attacker counts into info for C6 to consume afterwards.
func evaluatePieces(info *EvalInfo, us piece.Color) score.Score {
	them := us.Other()

	var eval score.Score
	eval += evaluateKnights(info, us, them)
	eval += evaluateBishops(info, us, them)
	eval += evaluateRooks(info, us, them)
	eval += evaluateQueens(info, us, them)

	if info.board.Bishops(us).Count() >= 2 {
		eval += BishopPair
		info.trace.add(termBishopPair, us, 1)
	}

	return eval
}

// accumulateKingAttacks folds a piece's attack set into us's king-danger
// counters for them, recording an attacker only once per piece even if
// it hits the king area on more than one square.
func accumulateKingAttacks(info *EvalInfo, us, them piece.Color, pt piece.Type, atk bitboard.Board) {
	hits := atk & info.kingAreas[them]
	if hits == bitboard.Empty {
		return
	}
	info.kingAttackersCount[them]++
	info.kingAttackersWeight[them] += KSAttackWeight[pt]
	info.kingAttacksCount[them] += hits.Count()
}

func evaluateKnights(info *EvalInfo, us, them piece.Color) score.Score {
	var eval score.Score
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)

	for bb := info.board.Knights(us); bb != bitboard.Empty; {
		s := bb.Pop()
		atk := attacks.Knight[s]

		info.attackedBy2[us] |= info.attacked[us] & atk
		info.attacked[us] |= atk
		info.attackedBy[us][piece.Knight] |= atk

		mobility := (atk & info.mobilityAreas[us]).Count()
		eval += MobilityKnight[mobility]
		info.trace.add(termMobilityKnight, us, 1)

		sq := bitboard.Squares[s]
		if bitboard.OutpostRanks[us]&sq != bitboard.Empty && enemyPawns&bitboard.OutpostSquareMask[us][s] == bitboard.Empty {
			defended := boolIndex(sq&info.pawnAttacks[us] != bitboard.Empty)
			eval += Outpost[defended]
			info.trace.add(termOutpost, us, 1)
		}
		if sq.Up(us)&ownPawns != bitboard.Empty {
			eval += BehindPawn
			info.trace.add(termBehindPawn, us, 1)
		}

		accumulateKingAttacks(info, us, them, piece.Knight, atk)
	}

	return eval
}

func evaluateBishops(info *EvalInfo, us, them piece.Color) score.Score {
	var eval score.Score
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)
	occ := info.occupiedMinusBishops[us]

	for bb := info.board.Bishops(us); bb != bitboard.Empty; {
		s := bb.Pop()
		atk := attacks.Bishop(s, occ)

		info.attackedBy2[us] |= info.attacked[us] & atk
		info.attacked[us] |= atk
		info.attackedBy[us][piece.Bishop] |= atk

		mobility := (atk & info.mobilityAreas[us]).Count()
		eval += MobilityBishop[mobility]
		info.trace.add(termMobilityBishop, us, 1)

		sq := bitboard.Squares[s]
		if bitboard.OutpostRanks[us]&sq != bitboard.Empty && enemyPawns&bitboard.OutpostSquareMask[us][s] == bitboard.Empty {
			defended := boolIndex(sq&info.pawnAttacks[us] != bitboard.Empty)
			eval += Outpost[defended]
			info.trace.add(termOutpost, us, 1)
		}
		if sq.Up(us)&ownPawns != bitboard.Empty {
			eval += BehindPawn
			info.trace.add(termBehindPawn, us, 1)
		}

		sameColor := lightSquares
		if darkSquares&sq != bitboard.Empty {
			sameColor = darkSquares
		}
		rammed := (info.rammedPawns[us] & sameColor).Count()
		eval += score.Score(rammed) * BishopRammedPawns
		info.trace.add(termBishopRammedPawns, us, rammed)

		accumulateKingAttacks(info, us, them, piece.Bishop, atk)
	}

	return eval
}

func evaluateRooks(info *EvalInfo, us, them piece.Color) score.Score {
	var eval score.Score
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)
	occ := info.occupiedMinusRooks[us]

	for bb := info.board.Rooks(us); bb != bitboard.Empty; {
		s := bb.Pop()
		atk := attacks.Rook(s, occ)

		info.attackedBy2[us] |= info.attacked[us] & atk
		info.attacked[us] |= atk
		info.attackedBy[us][piece.Rook] |= atk

		mobility := (atk & info.mobilityAreas[us]).Count()
		eval += MobilityRook[mobility]
		info.trace.add(termMobilityRook, us, 1)

		file := s.File()
		if ownPawns&bitboard.Files[file] == bitboard.Empty {
			fullyOpen := boolIndex(enemyPawns&bitboard.Files[file] == bitboard.Empty)
			eval += RookFile[fullyOpen]
			info.trace.add(termRookFile, us, 1)
		}

		kingConfined := int(info.board.King(them).Rank().RelativeTo(us == piece.White)) >= relativeRankEighth
		if int(s.Rank().RelativeTo(us == piece.White)) == relativeRankSeventh && kingConfined {
			eval += RookOnSeventh
			info.trace.add(termRookOnSeventh, us, 1)
		}

		accumulateKingAttacks(info, us, them, piece.Rook, atk)
	}

	return eval
}

func evaluateQueens(info *EvalInfo, us, them piece.Color) score.Score {
	var eval score.Score
	occ := info.occupied

	for bb := info.board.Queens(us); bb != bitboard.Empty; {
		s := bb.Pop()
		atk := attacks.Queen(s, occ)

		info.attackedBy2[us] |= info.attacked[us] & atk
		info.attacked[us] |= atk
		info.attackedBy[us][piece.Queen] |= atk

		mobility := (atk & info.mobilityAreas[us]).Count()
		eval += MobilityQueen[mobility]
		info.trace.add(termMobilityQueen, us, 1)

		accumulateKingAttacks(info, us, them, piece.Queen, atk)
	}

	return eval
}
