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

// Command tune drives pkg/eval/tuner against a PGN dataset described
// in the tuner config (§9): it loads internal/config, samples training
// positions with pkg/eval/tuner/datagen, runs the tuning loop, and
// prints the resulting per-term weight deltas.
package main

import (
	"fmt"
	"os"

	"github.com/corvidlab/corvid/internal/config"
	"github.com/corvidlab/corvid/pkg/eval"
	"github.com/corvidlab/corvid/pkg/eval/tuner"
	"github.com/corvidlab/corvid/pkg/eval/tuner/datagen"
)

func main() {
	cfg := config.Load()

	positions, err := datagen.Generate(cfg.DatasetPath, datagen.DefaultOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(positions) == 0 {
		fmt.Fprintln(os.Stderr, "tune: no training positions sampled from dataset")
		os.Exit(1)
	}

	t, err := tuner.New(positions, cfg.K, cfg.LearningRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	weights, err := t.Tune(cfg.Epochs, cfg.ReportEvery, cfg.ChartPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, w := range weights {
		if w == 0 {
			continue
		}
		fmt.Printf("%s: %+.3f\n", eval.TermName(i), w)
	}
}
