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
	"testing"

	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/chess/piece"
)

func TestBishopPairBonus(t *testing.T) {
	pair := newTestInfo(t, "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	lone := newTestInfo(t, "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1")

	pairScore := evaluatePieces(pair, piece.White)
	loneScore := evaluatePieces(lone, piece.White)

	if pairScore-loneScore < BishopPair {
		t.Errorf("bishop pair delta = %v, want at least %v", pairScore-loneScore, BishopPair)
	}
}

func TestRookOpenFile(t *testing.T) {
	open := newTestInfo(t, "4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	blocked := newTestInfo(t, "4k3/8/8/8/8/8/3P4/3RK3 w - - 0 1")

	openScore := evaluateRooks(open, piece.White, piece.Black)
	blockedScore := evaluateRooks(blocked, piece.White, piece.Black)

	if openScore <= blockedScore {
		t.Errorf("open-file rook (%v) should outscore a rook behind its own pawn (%v)", openScore, blockedScore)
	}
}

func TestRookOnSeventhRequiresKingConfinement(t *testing.T) {
	rookOnSeventh := func(t *testing.T, fen string) bool {
		t.Helper()
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("board.New(%q): %v", fen, err)
		}
		var trace Trace
		info := newEvalInfo(b, &trace)
		evaluateRooks(info, piece.White, piece.Black)
		return trace.FetchTerm(termRookOnSeventh) != 0
	}

	// white rook on a7, black king penned on its own back rank: bonus.
	if !rookOnSeventh(t, "k7/R7/8/8/8/8/8/4K3 w - - 0 1") {
		t.Error("rook on relative rank 7 with enemy king confined to its back rank: want RookOnSeventh bonus")
	}

	// same rook file/rank shape but on relative rank 1 (a2, not a7):
	// must not fire even though the enemy king is still confined. This
	// guards against regressing to comparing against the wrong Rank
	// constant.
	if rookOnSeventh(t, "k7/8/8/8/8/8/R7/4K3 w - - 0 1") {
		t.Error("rook on relative rank 1 (a2): want no RookOnSeventh bonus")
	}

	// rook genuinely on the seventh rank, but the enemy king has escaped
	// its back rank: no bonus.
	if rookOnSeventh(t, "8/R7/8/4k3/8/8/8/4K3 w - - 0 1") {
		t.Error("rook on relative rank 7 with enemy king off its back rank: want no RookOnSeventh bonus")
	}
}

func TestKnightOutpost(t *testing.T) {
	// a knight on d5, defended by the c-pawn, with no black pawn able to
	// ever challenge it from c or e files.
	info := newTestInfo(t, "4k3/8/8/3N4/2P5/8/8/4K3 w - - 0 1")
	bare := newTestInfo(t, "4k3/8/8/3N4/8/8/8/4K3 w - - 0 1")

	outpostScore := evaluateKnights(info, piece.White, piece.Black)
	bareScore := evaluateKnights(bare, piece.White, piece.Black)

	if outpostScore <= bareScore {
		t.Errorf("defended outpost knight (%v) should score above a bare knight (%v)", outpostScore, bareScore)
	}
}
