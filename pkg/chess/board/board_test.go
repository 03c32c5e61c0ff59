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

package board_test

import (
	"testing"

	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/psqt"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

func TestFEN(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
	}

	for n, want := range tests {
		b, err := board.New(want)
		if err != nil {
			t.Fatalf("test %d: New: %v", n, err)
		}
		if got := b.FEN(); got != want {
			t.Errorf("test %d: wrong fen\nwant %s\ngot  %s", n, want, got)
		}
	}
}

// TestPsqtmatInvariant checks §8 testable property 2: psqtmat, when
// maintained incrementally by FillSquare/ClearSquare/MovePiece, equals
// the from-scratch sum of PSQT[piece][square] over every piece on the
// board, both at the start position and after a short move sequence.
func TestPsqtmatInvariant(t *testing.T) {
	b, err := board.New(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	check := func(label string) {
		t.Helper()
		want := recomputePsqtmat(b)
		if b.Psqtmat != want {
			t.Errorf("%s: psqtmat = %v, want %v", label, b.Psqtmat, want)
		}
	}

	check("start position")

	b.MovePiece(square.E2, square.E4)
	check("after 1.e4")

	b.MovePiece(square.E7, square.E5)
	check("after 1...e5")

	b.MovePiece(square.G1, square.F3)
	check("after 2.Nf3")
}

func recomputePsqtmat(b *board.Board) score.Score {
	var total score.Score
	for s := square.A8; s <= square.H1; s++ {
		if p := b.PieceAt(s); p != piece.NoPiece {
			total += psqt.Table[p][s]
		}
	}
	return total
}
