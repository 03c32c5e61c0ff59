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

// Package eval implements static position evaluation: a pure function
// from a board position to a centipawn score, with no move generation,
// search, or protocol handling of its own. Move generation, search and
// the UCI front end are external collaborators (§3) that call Evaluate
// and nothing else from this package's hot path.
package eval

import (
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/eval/pktable"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// Evaluate returns the static evaluation of b in centipawns, from the
// side to move's point of view, positive meaning better for the side
// to move (§6). pk may be nil, in which case every call recomputes the
// pawn-king subtotal from scratch instead of consulting a cache.
func Evaluate(b *board.Board, pk *pktable.Table) int {
	return evaluate(b, pk, nil)
}

// EvaluateTrace behaves like Evaluate but also accumulates per-term
// firing counts into trace, for the tuner (§9). trace must not be nil.
func EvaluateTrace(b *board.Board, trace *Trace) int {
	return evaluate(b, nil, trace)
}

func evaluate(b *board.Board, pk *pktable.Table, trace *Trace) int {
	info := newEvalInfo(b, trace)

	total := b.Psqtmat
	total += evaluatePawnKing(info, pk)

	var pieces [piece.ColorN]score.Score
	for _, us := range [piece.ColorN]piece.Color{piece.White, piece.Black} {
		pieces[us] = evaluatePieces(info, us)
	}

	for _, us := range [piece.ColorN]piece.Color{piece.White, piece.Black} {
		side := pieces[us]
		side += evaluatePassedPawns(info, us)
		side += evaluateThreats(info, us)
		if us == piece.White {
			total += side
		} else {
			total -= side
		}
	}

	total += evaluateKingDanger(info, piece.White)
	total -= evaluateKingDanger(info, piece.Black)

	if b.Side == piece.White {
		total += Tempo
		info.trace.add(termTempo, piece.White, 1)
	} else {
		total -= Tempo
		info.trace.add(termTempo, piece.Black, 1)
	}

	info.phase = gamePhase(b)
	scale := scaleFactor(b)

	raw := taper(total, info.phase, scale)
	if b.Side == piece.Black {
		raw = -raw
	}
	return raw
}

// evaluatePawnKing resolves the pawn-and-king subtotal either from the
// cache (a pkhash hit restores both sides' passed-pawn bitboards and
// eval directly) or by running C4 and the shelter/storm half of C6 for
// both sides and storing the result for next time.
func evaluatePawnKing(info *EvalInfo, pk *pktable.Table) score.Score {
	if pk != nil {
		if e, hit := pk.Probe(info.board.Pkhash); hit {
			info.passedPawns = e.PassedPawns[piece.White] | e.PassedPawns[piece.Black]
			info.pkeval = e.Eval
			return e.Eval[piece.White] - e.Eval[piece.Black]
		}
	}

	var perSide [piece.ColorN]score.Score
	var passed [piece.ColorN]bitboard.Board

	for _, us := range [piece.ColorN]piece.Color{piece.White, piece.Black} {
		before := info.passedPawns
		perSide[us] = evaluatePawns(info, us) + evaluateKingShelterStorm(info, us)
		passed[us] = info.passedPawns &^ before
	}
	info.pkeval = perSide

	if pk != nil {
		pk.Store(info.board.Pkhash, perSide, passed)
	}

	return perSide[piece.White] - perSide[piece.Black]
}
