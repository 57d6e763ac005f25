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

// Package tracer integrates streamlines through a three-dimensional vector
// field sampled on a regular, possibly non-uniform and possibly cyclic,
// grid.
//
// A Grid holds the field samples and coordinate axes. Trace drives a
// classical fourth-order Runge-Kutta integrator over a trilinearly
// interpolated field, forward, backward, or both, from a caller-supplied
// set of seed points, fanning out across a worker pool so that millions of
// independent seeds integrate in parallel.
//
// # Pipeline
//
//	Trace -> dispatch (parallel, one phase per direction) -> traceLine (one seed)
//	   -> rk4Step (repeated) -> Grid.sample (trilinear interpolation)
//
// # Example
//
//	g, err := tracer.NewGrid(field, nx, ny, nz, xAxis, yAxis, zAxis, tracer.Cyclic{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	trajectories, termination, err := tracer.Trace(seeds, g, tracer.Forward, 0.1, 2000)
package tracer
