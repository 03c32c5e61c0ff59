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
	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// EvalInfo is the stack-allocated scratchpad §5 requires: every
// sub-evaluator reads and writes it, and nothing about it survives
// past a single Evaluate call. Two concurrent evaluations must each
// own one of these; none of its fields are ever shared.
type EvalInfo struct {
	board *board.Board

	occupied bitboard.Board

	// occupiedMinus[us][slider] removes us's own sliders of that kind,
	// enabling x-ray attack generation through them (§4.3).
	occupiedMinusBishops [piece.ColorN]bitboard.Board
	occupiedMinusRooks   [piece.ColorN]bitboard.Board

	pawnAttacks    [piece.ColorN]bitboard.Board
	pawnAttacksBy2 [piece.ColorN]bitboard.Board
	rammedPawns    [piece.ColorN]bitboard.Board
	blockedPawns   [piece.ColorN]bitboard.Board

	kingAreas     [piece.ColorN]bitboard.Board
	mobilityAreas [piece.ColorN]bitboard.Board

	attacked    [piece.ColorN]bitboard.Board
	attackedBy2 [piece.ColorN]bitboard.Board
	attackedBy  [piece.ColorN][piece.TypeN]bitboard.Board

	kingAttackersCount  [piece.ColorN]int
	kingAttacksCount    [piece.ColorN]int
	kingAttackersWeight [piece.ColorN]int

	// passedPawns is filled by C4 (or restored from a pawn-king cache
	// hit) and consumed by C7.
	passedPawns bitboard.Board

	// pkeval[us] is the pawn-and-king-only subtotal the pawn-king cache
	// persists; shelter/storm (part of C6) and every C4 term feed it.
	pkeval [piece.ColorN]score.Score

	phase int

	trace *Trace
}

// newEvalInfo builds an EvalInfo for b, seeding everything §4.3 says
// is precomputed once per position.
func newEvalInfo(b *board.Board, trace *Trace) *EvalInfo {
	info := &EvalInfo{board: b, trace: trace}

	white, black := b.Colours[piece.White], b.Colours[piece.Black]
	info.occupied = white | black

	whitePawns, blackPawns := b.Pawns(piece.White), b.Pawns(piece.Black)
	whiteAdvanced, blackAdvanced := whitePawns.Up(piece.White), blackPawns.Up(piece.Black)

	info.pawnAttacks[piece.White] = whiteAdvanced.East() | whiteAdvanced.West()
	info.pawnAttacks[piece.Black] = blackAdvanced.East() | blackAdvanced.West()
	info.pawnAttacksBy2[piece.White] = whiteAdvanced.East() & whiteAdvanced.West()
	info.pawnAttacksBy2[piece.Black] = blackAdvanced.East() & blackAdvanced.West()

	info.rammedPawns[piece.White] = whitePawns & blackPawns.Down(piece.White)
	info.rammedPawns[piece.Black] = blackPawns & whitePawns.Down(piece.Black)

	info.blockedPawns[piece.White] = whitePawns & info.occupied.Down(piece.White)
	info.blockedPawns[piece.Black] = blackPawns & info.occupied.Down(piece.Black)

	whiteKing, blackKing := b.King(piece.White), b.King(piece.Black)
	info.kingAreas[piece.White] = bitboard.KingAreaMasks[piece.White][whiteKing]
	info.kingAreas[piece.Black] = bitboard.KingAreaMasks[piece.Black][blackKing]

	info.mobilityAreas[piece.White] = ^(info.pawnAttacks[piece.Black] | bitboard.Squares[whiteKing] | info.blockedPawns[piece.White])
	info.mobilityAreas[piece.Black] = ^(info.pawnAttacks[piece.White] | bitboard.Squares[blackKing] | info.blockedPawns[piece.Black])

	info.occupiedMinusBishops[piece.White] = info.occupied ^ b.Bishops(piece.White) ^ b.Queens(piece.White)
	info.occupiedMinusBishops[piece.Black] = info.occupied ^ b.Bishops(piece.Black) ^ b.Queens(piece.Black)
	info.occupiedMinusRooks[piece.White] = info.occupied ^ b.Rooks(piece.White) ^ b.Queens(piece.White)
	info.occupiedMinusRooks[piece.Black] = info.occupied ^ b.Rooks(piece.Black) ^ b.Queens(piece.Black)

	info.attackedBy[piece.White][piece.King] = attacks.King[whiteKing]
	info.attackedBy[piece.Black][piece.King] = attacks.King[blackKing]
	info.attacked[piece.White] = info.attackedBy[piece.White][piece.King]
	info.attacked[piece.Black] = info.attackedBy[piece.Black][piece.King]

	return info
}

// kingDangerThreshold reports whether C6's quadratic safety term should
// be evaluated at all for the defender us (§4.6): two attackers, or one
// attacker when the opponent still has a queen.
func (info *EvalInfo) kingDangerThreshold(us piece.Color) bool {
	them := us.Other()
	hasQueen := 0
	if info.board.Queens(them) != bitboard.Empty {
		hasQueen = 1
	}
	return info.kingAttackersCount[us] > 1-hasQueen
}
