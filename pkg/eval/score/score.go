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

// Package score implements the packed middlegame/endgame Score pair
// that every evaluation term is expressed in, along with the material
// values the PSQT builder and board bookkeeping fold into it. It is a
// leaf package: pkg/chess/board depends on it for the incrementally
// maintained psqtmat field, and pkg/eval depends on it for every term,
// so it cannot live inside pkg/eval itself without an import cycle.
package score

import "github.com/corvidlab/corvid/pkg/chess/piece"

// Score packs a middlegame and an endgame evaluation into a single
// int64: the endgame half occupies the high 32 bits, the middlegame
// half the low 32. Addition and subtraction of Scores therefore
// operate on both halves at once.
type Score int64

// MakeScore packs a middlegame and endgame pair into a Score.
func MakeScore(mg, eg int) Score {
	return Score(eg)<<32 + Score(mg)
}

// MG extracts the middlegame half of the score.
func (s Score) MG() int {
	return int(int32(uint32(uint64(s))))
}

// EG extracts the endgame half of the score. The +(1<<31) rounds the
// low half's sign out of the high half before it is shifted down, so
// a negative middlegame contribution cannot corrupt the endgame half.
func (s Score) EG() int {
	return int(int32(uint32(uint64(s+(1<<31)) >> 32)))
}

// piece material values (mg, eg). King is zero; its placement value
// lives entirely in the PSQT, not in material.
var materialScore = [piece.TypeN]Score{
	piece.NoType: MakeScore(0, 0),
	piece.Pawn:   MakeScore(110, 129),
	piece.Knight: MakeScore(460, 412),
	piece.Bishop: MakeScore(481, 430),
	piece.Rook:   MakeScore(677, 714),
	piece.Queen:  MakeScore(1263, 1375),
	piece.King:   MakeScore(0, 0),
}

// Material returns the material-only Score of a piece type.
func Material(t piece.Type) Score {
	return materialScore[t]
}
