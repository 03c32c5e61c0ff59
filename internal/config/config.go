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

// Package config loads and saves the settings the tuner CLI (cmd/tune)
// runs with. Settings are stored at ~/.corvid/tuner.toml in TOML format;
// a missing or unparsable file falls back to Default silently.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tuning holds the knobs the gradient-free tuner runs with.
type Tuning struct {
	// DatasetPath is the path to the PGN file the tuning positions are
	// sampled from.
	DatasetPath string `toml:"dataset_path"`
	// K is the sigmoid scaling constant; it is held fixed while the term
	// values are tuned.
	K float64 `toml:"k"`
	// Epochs is the number of full passes the tuner makes over the dataset.
	Epochs int `toml:"epochs"`
	// LearningRate scales the per-term nudge applied each epoch.
	LearningRate float64 `toml:"learning_rate"`
	// ReportEvery is how many epochs pass between progress reports.
	ReportEvery int `toml:"report_every"`
	// ChartPath is where the tuner writes its MSE-over-epoch chart.
	ChartPath string `toml:"chart_path"`
}

// Default returns the Tuning settings new installs start from.
func Default() Tuning {
	return Tuning{
		DatasetPath:  "dataset.epd",
		K:            1.0,
		Epochs:       1000,
		LearningRate: 1.0,
		ReportEvery:  10,
		ChartPath:    "tuning.html",
	}
}

// Load reads ~/.corvid/tuner.toml, falling back to Default on any error.
func Load() Tuning {
	path, err := filePath()
	if err != nil {
		return Default()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default()
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default()
	}

	return cfg
}

// Save writes cfg to ~/.corvid/tuner.toml, creating the directory if needed.
func Save(cfg Tuning) error {
	dir, err := Dir()
	if err != nil {
		return fmt.Errorf("config: get config directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create config directory: %w", err)
	}

	path, err := filePath()
	if err != nil {
		return fmt.Errorf("config: get config file path: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}

	return nil
}
