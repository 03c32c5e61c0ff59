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

import "github.com/corvidlab/corvid/pkg/chess/piece"

// Trace records, per term and per side, how many times that term fired
// during one Evaluate call. It exists purely for the tuner (§9): the
// hot evaluation path never allocates or touches one unless the caller
// asks for it, so a nil *Trace must be a valid, cheap no-op receiver
// everywhere below.
type Trace struct {
	terms [termCount][piece.ColorN]int
}

// term identifiers, one per tunable table/constant that the tuner
// needs gradient counts for. Entries don't need to be exhaustive on
// day one; FetchTerm grows as the tuner grows.
const (
	termPawnIsolated = iota
	termPawnStacked
	termPawnBackwards
	termPawnConnected
	termPawnCandidatePasser
	termOutpost
	termBehindPawn
	termBishopPair
	termBishopRammedPawns
	termRookFile
	termRookOnSeventh
	termMobilityKnight
	termMobilityBishop
	termMobilityRook
	termMobilityQueen
	termKingShelter
	termKingStorm
	termPassedPawn
	termThreatWeakPawn
	termThreatMinorAttackedByPawn
	termThreatMinorAttackedByMinor
	termThreatMinorAttackedByMajor
	termThreatMinorAttackedByKing
	termThreatRookAttackedByLesser
	termThreatRookAttackedByKing
	termThreatQueenAttackedByOne
	termThreatOverloadedPieces
	termThreatByPawnPush
	termTempo

	termCount
)

// TermCount is the number of tunable terms Trace tracks, exported so
// pkg/eval/tuner can size its feature vectors without duplicating this
// list.
const TermCount = termCount

// termNames holds a short readable label per term, in the same order
// as the term constants above.
var termNames = [termCount]string{
	termPawnIsolated:               "pawn_isolated",
	termPawnStacked:                "pawn_stacked",
	termPawnBackwards:              "pawn_backwards",
	termPawnConnected:              "pawn_connected",
	termPawnCandidatePasser:        "pawn_candidate_passer",
	termOutpost:                    "outpost",
	termBehindPawn:                 "behind_pawn",
	termBishopPair:                 "bishop_pair",
	termBishopRammedPawns:          "bishop_rammed_pawns",
	termRookFile:                   "rook_file",
	termRookOnSeventh:              "rook_on_seventh",
	termMobilityKnight:             "mobility_knight",
	termMobilityBishop:             "mobility_bishop",
	termMobilityRook:               "mobility_rook",
	termMobilityQueen:              "mobility_queen",
	termKingShelter:                "king_shelter",
	termKingStorm:                  "king_storm",
	termPassedPawn:                 "passed_pawn",
	termThreatWeakPawn:             "threat_weak_pawn",
	termThreatMinorAttackedByPawn:  "threat_minor_by_pawn",
	termThreatMinorAttackedByMinor: "threat_minor_by_minor",
	termThreatMinorAttackedByMajor: "threat_minor_by_major",
	termThreatMinorAttackedByKing:  "threat_minor_by_king",
	termThreatRookAttackedByLesser: "threat_rook_by_lesser",
	termThreatRookAttackedByKing:   "threat_rook_by_king",
	termThreatQueenAttackedByOne:   "threat_queen_by_one",
	termThreatOverloadedPieces:     "threat_overloaded",
	termThreatByPawnPush:           "threat_pawn_push",
	termTempo:                      "tempo",
}

// TermName returns a short readable label for the given term index,
// for the tuner's (pkg/eval/tuner) diagnostics; it is not part of the
// evaluator's hot path.
func TermName(index int) string {
	if index < 0 || index >= len(termNames) {
		return "unknown"
	}
	return termNames[index]
}

// add increments the fired-count of term for side us. Safe to call on
// a nil *Trace: every sub-evaluator calls this unconditionally rather
// than guarding every call site with "if trace != nil".
func (t *Trace) add(term int, us piece.Color, n int) {
	if t == nil {
		return
	}
	t.terms[term][us] += n
}

// FetchTerm returns the signed count (white count minus black count)
// for the given term, the form the tuner's gradient computation wants.
func (t *Trace) FetchTerm(term int) int {
	if t == nil {
		return 0
	}
	return t.terms[term][piece.White] - t.terms[term][piece.Black]
}
