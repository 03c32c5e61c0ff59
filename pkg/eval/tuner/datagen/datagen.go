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

// Package datagen samples labeled training positions out of a PGN
// game collection for pkg/eval/tuner to train against. It mirrors the
// teacher's own datagen tool: walk every game, keep positions past the
// opening, and label each with that game's final result.
package datagen

import (
	"fmt"

	"github.com/notnil/chess"
	pgn "gopkg.in/freeeve/pgn.v1"

	"github.com/corvidlab/corvid/pkg/eval/tuner"
)

// Options controls how aggressively Generate samples a game.
type Options struct {
	// SamplesPerGame caps how many positions are kept per game, spread
	// evenly across its move list, to avoid over-representing long
	// games in the training set.
	SamplesPerGame int
	// MinPly skips the book-theory opening, where nearly every game
	// agrees and the position carries little tuning signal.
	MinPly int
	// RequireTags, when non-empty, drops any game whose PGN headers
	// don't match every key/value pair given (e.g. a minimum time
	// control, or a decisive Termination).
	RequireTags map[string]string
}

// DefaultOptions mirrors the teacher datagen tool's defaults.
func DefaultOptions() Options {
	return Options{SamplesPerGame: 10, MinPly: 8}
}

// Generate reads every game out of the PGN file at path, replays each
// one's moves to recover its position history, and returns a labeled
// dataset for tuner.Tuner. Game headers are read with the lightweight
// gopkg.in/freeeve/pgn.v1 parser, since it exposes raw tag values more
// directly than notnil/chess does; the moves themselves are replayed
// through notnil/chess, since its Game tracks full rule legality and
// exposes each intermediate Position as a FEN string.
func Generate(path string, opt Options) ([]tuner.Position, error) {
	games, err := pgn.ParsePGNFile(path)
	if err != nil {
		return nil, fmt.Errorf("datagen: %w", err)
	}

	var positions []tuner.Position
	for _, g := range games {
		if !passesFilter(g, opt.RequireTags) {
			continue
		}

		fens, result, err := replay(g)
		if err != nil {
			continue
		}

		positions = append(positions, sample(fens, result, opt)...)
	}

	return positions, nil
}

func passesFilter(g *pgn.PGNGame, required map[string]string) bool {
	for tag, want := range required {
		if g.Tags[tag] != want {
			return false
		}
	}
	return true
}

// replay feeds g's SAN move list through a fresh notnil/chess Game,
// returning the FEN of every position reached and the game's result
// from White's point of view, read from its Result tag.
func replay(g *pgn.PGNGame) ([]string, float64, error) {
	game := chess.NewGame()
	fens := make([]string, 0, len(g.Moves))
	for _, san := range g.Moves {
		if err := game.MoveStr(san); err != nil {
			return nil, 0, fmt.Errorf("datagen: replay: %w", err)
		}
		fens = append(fens, game.Position().String())
	}

	switch g.Tags["Result"] {
	case "1-0":
		return fens, 1, nil
	case "0-1":
		return fens, 0, nil
	default:
		return fens, 0.5, nil
	}
}

// sample keeps up to opt.SamplesPerGame positions past opt.MinPly,
// spread evenly across the remaining move list.
func sample(fens []string, result float64, opt Options) []tuner.Position {
	if len(fens) <= opt.MinPly {
		return nil
	}

	usable := fens[opt.MinPly:]
	step := 1
	if opt.SamplesPerGame > 0 && len(usable) > opt.SamplesPerGame {
		step = len(usable) / opt.SamplesPerGame
	}

	var out []tuner.Position
	for i := 0; i < len(usable); i += step {
		if opt.SamplesPerGame > 0 && len(out) == opt.SamplesPerGame {
			break
		}
		out = append(out, tuner.Position{FEN: usable[i], Result: result})
	}
	return out
}
