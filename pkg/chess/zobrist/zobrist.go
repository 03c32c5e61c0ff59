// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package zobrist provides the random piece-square numbers the board
// representation folds into its hashes, including pkhash, the
// pawn-and-king-only hash the pawn-king cache is keyed by.
package zobrist

import (
	"github.com/corvidlab/corvid/internal/util"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
)

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare[p][s] is the random number toggled when p is placed on
// or removed from s.
var PieceSquare [piece.N][square.N]Key

// SideToMove is toggled whenever the side to move changes.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	SideToMove = Key(rng.Uint64())
}

// IsPawnOrKing reports whether p's placement should toggle pkhash, the
// pawn-and-king-only hash the pawn-king cache (§4.9) is keyed by.
func IsPawnOrKing(p piece.Piece) bool {
	t := p.Type()
	return t == piece.Pawn || t == piece.King
}
