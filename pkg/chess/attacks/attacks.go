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

// Package attacks precomputes and exposes the attack-bitboard primitives
// (knightAttacks, bishopAttacks, rookAttacks, kingAttacks, pawnAttacks)
// that the evaluator consumes as an external collaborator. Full legal
// move generation is out of scope for this module; these tables exist
// only to drive static evaluation.
package attacks

import (
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
)

// Knight[s] is the set of squares a knight on s attacks.
var Knight [square.N]bitboard.Board

// King[s] is the set of squares a king on s attacks.
var King [square.N]bitboard.Board

// Pawn[color][s] is the set of squares a pawn of the given color on s attacks.
var Pawn [piece.ColorN][square.N]bitboard.Board

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func init() {
	for s := square.A8; s <= square.H1; s++ {
		Knight[s] = leaperAttacks(s, knightOffsets)
		King[s] = leaperAttacks(s, kingOffsets)

		Pawn[piece.White][s] = pawnLeaperAttacks(s, -1)
		Pawn[piece.Black][s] = pawnLeaperAttacks(s, +1)
	}
}

func leaperAttacks(s square.Square, offsets [8][2]int) bitboard.Board {
	var bb bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, o := range offsets {
		nf, nr := f+o[0], r+o[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb.Set(square.New(square.File(nf), square.Rank(nr)))
	}
	return bb
}

// pawnLeaperAttacks builds the diagonal-capture squares of a pawn on s,
// advancing rank by dr (-1 towards rank8/white's forward, +1 for black).
func pawnLeaperAttacks(s square.Square, dr int) bitboard.Board {
	var bb bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	nr := r + dr
	if nr < 0 || nr > 7 {
		return bb
	}
	for _, df := range [2]int{-1, 1} {
		nf := f + df
		if nf < 0 || nf > 7 {
			continue
		}
		bb.Set(square.New(square.File(nf), square.Rank(nr)))
	}
	return bb
}

// Bishop returns the attack set of a bishop on s given the occupancy,
// computed with hyperbola quintessence along both diagonals.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()]) |
		bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
}

// Rook returns the attack set of a rook on s given the occupancy,
// computed with hyperbola quintessence along the file and rank.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return bitboard.Hyperbola(s, occ, bitboard.Files[s.File()]) |
		bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
}

// Queen returns the attack set of a queen on s: the union of a bishop's
// and a rook's attack sets from the same square.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}

// Of returns the attack set of the given piece on s with the given
// blocker set. The blocker set is unused for non-sliding pieces.
func Of(p piece.Piece, s square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unknown piece type")
	}
}

// PawnPush returns the result of advancing every pawn in pawns one square.
func PawnPush(pawns bitboard.Board, us piece.Color) bitboard.Board {
	return pawns.Up(us)
}

// Pawns returns the union of the left and right diagonal capture squares
// of every pawn in pawns.
func Pawns(pawns bitboard.Board, us piece.Color) bitboard.Board {
	advanced := pawns.Up(us)
	return advanced.East() | advanced.West()
}
