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
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

func s(mg, eg int) score.Score { return score.MakeScore(mg, eg) }

// pawn structure terms (§4.4)
var (
	PawnIsolated  = s(-8, -10)
	PawnStacked   = s(-19, -26)
	PawnBackwards = [2]score.Score{s(-9, -7), s(-16, -10)} // [openFile]

	PawnConnected32 [32]score.Score

	// PawnCandidatePasser[supportDominates][relativeRank]
	PawnCandidatePasser [2][8]score.Score
)

func init() {
	for i := range PawnConnected32 {
		relRank := i / 4
		PawnConnected32[i] = s(2+3*relRank, 1+4*relRank)
	}

	for rank := 0; rank < 8; rank++ {
		PawnCandidatePasser[0][rank] = s(-2+2*rank, 4+4*rank)
		PawnCandidatePasser[1][rank] = s(0+3*rank, 8+6*rank)
	}
}

// piece evaluation terms (§4.5)
var (
	// Outpost[defendedByOwnPawn]
	Outpost           = [2]score.Score{s(10, 6), s(22, 14)}
	BehindPawn        = s(5, 13)
	BishopPair        = s(26, 70)
	BishopRammedPawns = s(-10, -16)

	// RookFile[isFullyOpen]
	RookFile      = [2]score.Score{s(10, 4), s(20, 8)}
	RookOnSeventh = s(0, 32)
)

// mobility tables, indexed by popcount(attacks & mobilityAreas).
// Sizes follow §4.5/§6: knight 9, bishop 14, rook 15, queen 28.
var (
	MobilityKnight [9]score.Score
	MobilityBishop [14]score.Score
	MobilityRook   [15]score.Score
	MobilityQueen  [28]score.Score
)

func init() {
	for i := range MobilityKnight {
		MobilityKnight[i] = s(-30+8*i, -25+6*i)
	}
	for i := range MobilityBishop {
		MobilityBishop[i] = s(-28+6*i, -30+5*i)
	}
	for i := range MobilityRook {
		MobilityRook[i] = s(-25+4*i, -30+5*i)
	}
	for i := range MobilityQueen {
		MobilityQueen[i] = s(-20+2*i, -25+3*i)
	}
}

// KSAttackWeight[piece.Type] is the per-attacker weight fed into the
// king danger count (§4.5/§4.6). Knight 16, Bishop 6, Rook 10, Queen 8;
// Pawn/King contribute 0 and never reach this table in practice.
var KSAttackWeight = [piece.TypeN]int{
	piece.Knight: 16,
	piece.Bishop: 6,
	piece.Rook:   10,
	piece.Queen:  8,
}

// king shelter/storm tables (§4.6), indexed [file][distance].
// KingShelter[f == kingFile][file][ourDist]
var KingShelter [2][square.FileN][8]score.Score

// KingStorm[blocked][mirrorFile(f)][theirDist]
var KingStorm [2][square.FileN][8]score.Score

func init() {
	for f := 0; f < square.FileN; f++ {
		for d := 0; d < 8; d++ {
			edge := square.File(f).EdgeDistance()
			KingShelter[0][f][d] = s(4*(7-d)+2*edge, 0)
			KingShelter[1][f][d] = s(8*(7-d)+4*edge, 2*(7-d))
			KingStorm[0][f][d] = s(-2*(7-d), 0)
			KingStorm[1][f][d] = s(-6*(7-d)-10, -2*(7-d))
		}
	}
}

// passed pawn terms (§4.7)
var (
	// PassedPawn[canAdvance][safeAdvance][relRank]
	PassedPawn [2][2][8]score.Score

	PassedFriendlyDistance  [8]score.Score
	PassedEnemyDistance     [8]score.Score
	PassedSafePromotionPath = s(-27, 36)
)

func init() {
	for rank := 0; rank < 8; rank++ {
		base := rank * rank
		PassedPawn[0][0][rank] = s(base/2, base)
		PassedPawn[0][1][rank] = s(base/2+4, base+10)
		PassedPawn[1][0][rank] = s(base/2+2, base+6)
		PassedPawn[1][1][rank] = s(base/2+10, base+24)

		PassedFriendlyDistance[rank] = s(0, -2*rank)
		PassedEnemyDistance[rank] = s(0, 3*rank)
	}
}

// threat terms (§4.7/§6)
var (
	ThreatWeakPawn             = s(-11, -20)
	ThreatMinorAttackedByPawn  = s(-45, -40)
	ThreatMinorAttackedByMinor = s(-25, -30)
	ThreatMinorAttackedByMajor = s(-20, -35)
	ThreatMinorAttackedByKing  = s(-18, -28)
	ThreatRookAttackedByLesser = s(-45, -30)
	ThreatRookAttackedByKing   = s(-20, -25)
	ThreatQueenAttackedByOne   = s(-50, -45)
	ThreatOverloadedPieces     = s(-7, -13)
	ThreatByPawnPush           = s(-15, -12)
)

// king safety scalar constants (§4.6), applied to the raw danger count.
const (
	SafetyWeightWeakSquares   = 38
	SafetyWeightOwnPawns      = -22
	SafetyWeightNoEnemyQueens = -276
	SafetyWeightQueenCheck    = 95
	SafetyWeightRookCheck     = 94
	SafetyWeightBishopCheck   = 51
	SafetyWeightKnightCheck   = 123
	SafetyAdjustment          = -18
	SafetyScaledAttackWeight  = 44
)

// Tempo is added, unconditionally, to the side to move before tapering.
var Tempo = s(25, 12)

// scale factors for C8's endgame scaling (§4.8).
const (
	ScaleNormal         = 128
	ScaleOCBBishopsOnly = 64
	ScaleOCBOneKnight   = 106
	ScaleOCBOneRook     = 96
)

