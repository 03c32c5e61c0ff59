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

	"github.com/corvidlab/corvid/pkg/chess/piece"
)

func TestWeakPawnThreat(t *testing.T) {
	// black's e6 pawn is undefended (no d7/f7 pawn left) and attacked by
	// the white knight on d4.
	info := newTestInfo(t, "4k3/8/4p3/8/3N4/8/8/4K3 w - - 0 1")
	evaluatePieces(info, piece.White)

	got := evaluateThreats(info, piece.White)
	if got <= 0 {
		t.Errorf("weak pawn threat score = %v, want strictly positive", got)
	}
}

func TestMinorAttackedByPawnThreat(t *testing.T) {
	info := newTestInfo(t, "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	evaluatePieces(info, piece.White)

	got := evaluateThreats(info, piece.White)
	if got <= 0 {
		t.Errorf("minor attacked by pawn threat score = %v, want strictly positive", got)
	}
}

func TestPawnPushThreat(t *testing.T) {
	// e4-e5 would attack the knight on d6/f6; nothing currently attacks it.
	info := newTestInfo(t, "4k3/8/3n4/8/4P3/8/8/4K3 w - - 0 1")
	evaluatePieces(info, piece.White)

	got := pawnPushThreats(info, piece.White, piece.Black)
	if got == 0 {
		t.Errorf("pawn push threat count = 0, want at least one threatened piece")
	}
}
