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
	"github.com/corvidlab/corvid/pkg/chess/square"
)

func newTestInfo(t *testing.T, fen string) *EvalInfo {
	t.Helper()
	b, err := board.New(fen)
	if err != nil {
		t.Fatalf("board.New(%q): %v", fen, err)
	}
	return newEvalInfo(b, nil)
}

func TestIsolatedPawn(t *testing.T) {
	// white pawns on a2 and c2, nothing on the b-file: both are isolated.
	info := newTestInfo(t, "4k3/8/8/8/8/8/P1P5/4K3 w - - 0 1")
	got := evaluatePawns(info, piece.White)
	if got != 2*PawnIsolated {
		t.Errorf("evaluatePawns = %v, want %v (two isolated pawns)", got, 2*PawnIsolated)
	}
}

func TestStackedPawn(t *testing.T) {
	// two white pawns stacked on the e-file.
	info := newTestInfo(t, "4k3/8/8/8/4P3/8/4P3/4K3 w - - 0 1")
	got := evaluatePawns(info, piece.White)
	if want := 2*PawnIsolated + PawnStacked; got != want {
		t.Errorf("evaluatePawns = %v, want %v (two isolated pawns, one stacked pair)", got, want)
	}
}

func TestPassedPawnRecorded(t *testing.T) {
	info := newTestInfo(t, "4k3/8/4P3/8/8/8/8/4K3 w - - 0 1")
	evaluatePawns(info, piece.White)
	if !info.passedPawns.IsSet(square.E6) {
		t.Errorf("e6 pawn should have been recorded as passed")
	}
}

func TestConnectedPawns(t *testing.T) {
	info := newTestInfo(t, "4k3/8/8/8/8/8/PP6/4K3 w - - 0 1")
	got := evaluatePawns(info, piece.White)
	if got == 0 {
		t.Errorf("adjacent a2/b2 pawns should score a connected bonus, got 0")
	}
}
