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

package datagen

import (
	"os"
	"path/filepath"
	"testing"

	pgn "gopkg.in/freeeve/pgn.v1"

	"github.com/stretchr/testify/require"
)

const samplePGN = `[Event "Test"]
[Site "?"]
[Date "2023.01.01"]
[Round "1"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6
8. c3 O-O 9. h3 Nb8 10. d4 Nbd7 1-0
`

func writeTempPGN(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.pgn")
	require.NoError(t, os.WriteFile(path, []byte(samplePGN), 0o644))
	return path
}

func TestGenerateSamplesPositions(t *testing.T) {
	path := writeTempPGN(t)

	positions, err := Generate(path, Options{SamplesPerGame: 4, MinPly: 4})
	require.NoError(t, err)
	require.NotEmpty(t, positions)

	for _, p := range positions {
		require.Equal(t, 1.0, p.Result)
		require.NotEmpty(t, p.FEN)
	}
}

func TestGenerateSkipsGamesShorterThanMinPly(t *testing.T) {
	path := writeTempPGN(t)

	positions, err := Generate(path, Options{SamplesPerGame: 4, MinPly: 1000})
	require.NoError(t, err)
	require.Empty(t, positions)
}

func TestPassesFilter(t *testing.T) {
	game := &pgn.PGNGame{Tags: map[string]string{"Result": "1-0"}}
	require.True(t, passesFilter(game, map[string]string{"Result": "1-0"}))
	require.False(t, passesFilter(game, map[string]string{"Result": "0-1"}))
}
