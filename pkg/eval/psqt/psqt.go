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

// Package psqt builds the full 12x64 piece-square table from the
// tuned quarter-board (32-entry) tables (§4.2), combined with material
// (§4.1). It is a leaf package consumed by both pkg/chess/board (to
// maintain psqtmat incrementally) and pkg/eval (to compute the
// "positional extras" on top of what's already folded into psqtmat).
package psqt

import (
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// Table[p][s] is the full piece-square-plus-material score of piece p
// standing on square s, built once at init from the quarter-board
// tuning tables.
var Table [piece.N][square.N]score.Score

// index computes 4*relativeRank(c,s) + edgeDistance[file(s)] (§4.2).
// edgeDistance is itself symmetric about the board's center files, so
// this naturally folds either color's full rank/file onto the tuned
// quarter-board's 32 entries without a separate file-folding step.
func index(c piece.Color, s square.Square) int {
	relRank := s.Rank().RelativeTo(c == piece.White)
	return 4*int(relRank) + s.File().EdgeDistance()
}

func build(t psqt32, pieceType piece.Type) {
	material := score.Material(pieceType)

	white := piece.New(pieceType, piece.White)
	black := piece.New(pieceType, piece.Black)

	for s := square.A8; s <= square.H1; s++ {
		Table[white][s] = material + t[index(piece.White, s)]
		Table[black][s] = -(material + t[index(piece.Black, s)])
	}
}

func init() {
	build(pawn32, piece.Pawn)
	build(knight32, piece.Knight)
	build(bishop32, piece.Bishop)
	build(rook32, piece.Rook)
	build(queen32, piece.Queen)
	build(king32, piece.King)
}
