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

package pktable

import (
	"testing"

	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/zobrist"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

func TestProbeMiss(t *testing.T) {
	tbl := New(1 << 8)
	if _, hit := tbl.Probe(zobrist.Key(42)); hit {
		t.Errorf("expected a miss on an empty table")
	}
}

func TestStoreThenProbeHits(t *testing.T) {
	tbl := New(1 << 8)
	key := zobrist.Key(1234)
	eval := [piece.ColorN]score.Score{piece.White: score.MakeScore(10, 20)}
	passed := [piece.ColorN]bitboard.Board{piece.White: bitboard.Squares[0]}

	tbl.Store(key, eval, passed)

	entry, hit := tbl.Probe(key)
	if !hit {
		t.Fatalf("expected a hit after Store")
	}
	if entry.Eval != eval {
		t.Errorf("entry.Eval = %v, want %v", entry.Eval, eval)
	}
	if entry.PassedPawns != passed {
		t.Errorf("entry.PassedPawns = %v, want %v", entry.PassedPawns, passed)
	}
}

func TestNewRoundsNonPowerOfTwoToDefault(t *testing.T) {
	tbl := New(100)
	if len(tbl.entries) != defaultSize {
		t.Errorf("New(100) entry count = %d, want defaultSize %d", len(tbl.entries), defaultSize)
	}
}

func TestCollisionReportsMiss(t *testing.T) {
	tbl := New(1 << 4)
	a, b := zobrist.Key(0), zobrist.Key(1<<4)

	tbl.Store(a, [piece.ColorN]score.Score{}, [piece.ColorN]bitboard.Board{})

	if _, hit := tbl.Probe(b); hit {
		t.Errorf("key %d should collide with %d's slot and miss, not hit", b, a)
	}
}
