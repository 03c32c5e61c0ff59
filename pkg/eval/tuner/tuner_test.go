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

package tuner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlab/corvid/pkg/chess/board"
)

func TestNewRejectsBadFEN(t *testing.T) {
	_, err := New([]Position{{FEN: "not a fen", Result: 1}}, 1, 0.01)
	require.Error(t, err)
}

func TestNewExtractsOneSamplePerPosition(t *testing.T) {
	tr, err := New([]Position{
		{FEN: board.StartFEN, Result: 0.5},
		{FEN: "4k3/8/4P3/8/8/8/8/4K3 w - - 0 1", Result: 1},
	}, 1, 0.01)
	require.NoError(t, err)
	require.Len(t, tr.samples, 2)
}

func TestSigmoidIsBoundedAndMonotonic(t *testing.T) {
	require.InDelta(t, 0.5, sigmoid(0, 1), 1e-9)
	require.Less(t, sigmoid(-100, 1), sigmoid(0, 1))
	require.Less(t, sigmoid(0, 1), sigmoid(100, 1))
}

func TestTuneNeverIncreasesMSE(t *testing.T) {
	tr, err := New([]Position{
		{FEN: board.StartFEN, Result: 0.5},
		{FEN: "4k3/8/4P3/8/8/8/8/4K3 w - - 0 1", Result: 1},
		{FEN: "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", Result: 0},
	}, 1, 1)
	require.NoError(t, err)

	before := tr.mse()
	_, err = tr.Tune(5, 0, "")
	require.NoError(t, err)
	after := tr.mse()

	require.LessOrEqual(t, after, before)
}
