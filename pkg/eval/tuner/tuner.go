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

// Package tuner implements a gradient-free, Texel-style tuner for the
// weights in pkg/eval (§9 of this module's design). It treats the
// evaluator as a black box: every position is scored once through
// eval.EvaluateTrace, and the tuner only ever reads per-term firing
// counts back out through Trace.FetchTerm, never the term's actual
// centipawn value. That mirrors the teacher's FetchTerm(index)
// indirection, and means this package never needs a type-specific
// accessor for every table shape in terms.go.
package tuner

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/eval"
)

// Position is one labeled training example: a FEN and the game result
// it was drawn from, from White's point of view (1 win, 0.5 draw, 0 loss).
type Position struct {
	FEN    string
	Result float64
}

// sample is a Position pre-evaluated into its per-term feature vector,
// built once up front so every tuning epoch just re-scores with the
// current weights instead of re-running the whole evaluator.
type sample struct {
	features [eval.TermCount]int
	result   float64
}

// Tuner holds a tuning run's dataset and hyperparameters.
type Tuner struct {
	samples      []sample
	weights      [eval.TermCount]float64
	k            float64
	learningRate float64
}

// New builds a Tuner from positions, extracting each one's per-term
// feature counts via eval.EvaluateTrace once at construction time.
func New(positions []Position, k, learningRate float64) (*Tuner, error) {
	t := &Tuner{k: k, learningRate: learningRate}
	t.samples = make([]sample, 0, len(positions))

	for _, p := range positions {
		b, err := board.New(p.FEN)
		if err != nil {
			return nil, fmt.Errorf("tuner: %w", err)
		}

		var trace eval.Trace
		eval.EvaluateTrace(b, &trace)

		var features [eval.TermCount]int
		for i := 0; i < eval.TermCount; i++ {
			features[i] = trace.FetchTerm(i)
		}

		t.samples = append(t.samples, sample{features: features, result: p.Result})
	}

	return t, nil
}

// sigmoid maps a centipawn score onto the [0,1] win-probability scale
// the tuner's K constant was chosen against.
func sigmoid(score, k float64) float64 {
	return 1 / (1 + math.Pow(10, -k*score/400))
}

// predict returns sample s's predicted score given the current weights:
// the dot product of its feature counts with the weight vector.
func (t *Tuner) predict(s sample) float64 {
	var total float64
	for i, f := range s.features {
		total += float64(f) * t.weights[i]
	}
	return total
}

// mse returns the mean squared error of the current weights over the
// whole dataset, the objective the tuning loop descends.
func (t *Tuner) mse() float64 {
	var sum float64
	for _, s := range t.samples {
		err := s.result - sigmoid(t.predict(s), t.k)
		sum += err * err
	}
	return sum / float64(len(t.samples))
}

// Tune runs a coordinate-descent local search for the given number of
// epochs: each epoch tries nudging every term's weight up and down by
// learningRate, keeping whichever direction (if either) lowers MSE. It
// reports progress on a progress bar and, if chartPath is non-empty,
// writes an HTML line chart of MSE-per-epoch there on completion.
func (t *Tuner) Tune(epochs, reportEvery int, chartPath string) ([eval.TermCount]float64, error) {
	history := make([]float64, 0, epochs)
	bar := progressbar.Default(int64(epochs), "tuning")

	best := t.mse()
	for epoch := 0; epoch < epochs; epoch++ {
		for i := range t.weights {
			best = t.tryStep(i, t.learningRate, best)
			best = t.tryStep(i, -t.learningRate, best)
		}

		history = append(history, best)
		if reportEvery > 0 && epoch%reportEvery == 0 {
			fmt.Fprintf(os.Stderr, "epoch %d: mse=%.6f\n", epoch, best)
		}
		_ = bar.Add(1)
	}

	if chartPath != "" {
		if err := renderChart(chartPath, history); err != nil {
			return t.weights, err
		}
	}

	return t.weights, nil
}

// tryStep nudges weight i by delta, keeping the change only if it
// brings the MSE strictly below currentBest.
func (t *Tuner) tryStep(i int, delta, currentBest float64) float64 {
	t.weights[i] += delta
	if next := t.mse(); next < currentBest {
		return next
	}
	t.weights[i] -= delta
	return currentBest
}

// renderChart writes an HTML line chart of MSE against epoch number,
// the same diagnostic the teacher's tuner produces after a run.
func renderChart(path string, history []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "tuner MSE"}))

	xAxis := make([]int, len(history))
	items := make([]opts.LineData, len(history))
	for i, v := range history {
		xAxis[i] = i
		items[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(xAxis).AddSeries("mse", items)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tuner: %w", err)
	}
	defer f.Close()

	return line.Render(f)
}
