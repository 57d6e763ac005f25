// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fieldtrace/streamtracer/tracer"
)

// config is the on-disk shape streamtrace reads: a flattened field array
// plus the axes, seeds, and integration parameters Trace needs. This is a
// caller convenience, not a core concern — the core package never reads
// JSON itself.
type config struct {
	Nx        int          `json:"nx"`
	Ny        int          `json:"ny"`
	Nz        int          `json:"nz"`
	Field     []float64    `json:"field"`
	X         []float64    `json:"x"`
	Y         []float64    `json:"y"`
	Z         []float64    `json:"z"`
	Cyclic    [3]bool      `json:"cyclic"`
	Seeds     [][3]float64 `json:"seeds"`
	Direction int          `json:"direction"`
	StepSize  float64      `json:"step_size"`
	MaxSteps  int          `json:"max_steps"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &c, nil
}

func (c *config) buildGrid() (*tracer.Grid, error) {
	g, err := tracer.NewGrid(tracer.Field(c.Field), c.Nx, c.Ny, c.Nz, c.X, c.Y, c.Z,
		tracer.Cyclic{X: c.Cyclic[0], Y: c.Cyclic[1], Z: c.Cyclic[2]})
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	return g, nil
}
