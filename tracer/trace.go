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

package tracer

import (
	"math"

	"github.com/fieldtrace/streamtracer/tracer/contrib/vec3"
)

// Direction selects which way Trace integrates from each seed.
type Direction int

const (
	Backward Direction = -1
	Both     Direction = 0
	Forward  Direction = 1
)

// Option configures a Trace call beyond its required parameters. The set
// is deliberately small: everything Trace needs today is already a
// required positional argument, but an explicit options type avoids
// breaking callers the day a second optional knob (e.g. a caller-supplied
// origin override) is added.
type Option func(*traceConfig)

type traceConfig struct {
	origin *vec3.V3
}

// WithOrigin overrides the automatically computed origin
// (x[0], y[0], z[0]) with an explicit shift. Rarely needed: the default
// keeps the internal sampling frame starting at zero for numerical
// conditioning.
func WithOrigin(origin [3]float64) Option {
	return func(c *traceConfig) {
		o := vec3.V3(origin)
		c.origin = &o
	}
}

// Trace integrates a streamline from every seed through grid g, in the
// given direction, using a fixed RK4 arc length of stepSize times the
// grid's minimum adjacent node spacing, for at most maxSteps points per
// direction.
//
// For Forward or Backward, trajectories[i] has length in [1, maxSteps]
// and termination[i] has length 1. For Both, trajectories[i] has length in
// [1, 2*maxSteps-1] and termination[i] has length 2: (forward, backward).
//
// Trace returns a *ValidationError if g, direction, stepSize, or maxSteps
// is malformed; it never aborts tracing because of a per-seed condition;
// see Termination for how those are reported.
func Trace(seeds [][3]float64, g *Grid, direction Direction, stepSize float64, maxSteps int, opts ...Option) (trajectories [][][3]float64, termination [][]Termination, err error) {
	if g == nil {
		return nil, nil, validationErrorf("grid", "grid must not be nil")
	}
	if direction != Backward && direction != Both && direction != Forward {
		return nil, nil, validationErrorf("direction", "must be -1, 0, or 1, got %d", direction)
	}
	if maxSteps <= 0 {
		return nil, nil, validationErrorf("max_steps", "must be positive, got %d", maxSteps)
	}
	if !(stepSize > 0) || math.IsInf(stepSize, 0) || math.IsNaN(stepSize) {
		return nil, nil, validationErrorf("step_size", "must be a positive finite value, got %v", stepSize)
	}

	cfg := &traceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	origin := g.origin()
	if cfg.origin != nil {
		origin = *cfg.origin
	}

	internalSeeds := make([]vec3.V3, len(seeds))
	for i, s := range seeds {
		internalSeeds[i] = vec3.V3{s[0] - origin[0], s[1] - origin[1], s[2] - origin[2]}
	}

	// Shift the axes by the same origin so the sampler sees seeds and axes
	// in one frame.
	ig := &Grid{nx: g.nx, ny: g.ny, nz: g.nz, field: g.field, cyclic: g.cyclic}
	for d, a := range g.axes {
		vals := make([]float64, len(a.vals))
		for i, v := range a.vals {
			vals[i] = v - origin[d]
		}
		ig.axes[d] = &axis{vals: vals, minSpacing: a.minSpacing}
	}

	h := stepSize * g.minSpacing()

	trajectories = make([][][3]float64, len(seeds))
	termination = make([][]Termination, len(seeds))

	switch direction {
	case Forward, Backward:
		sign := float64(direction)
		results := dispatch(ig, internalSeeds, sign, h, maxSteps)
		for i, r := range results {
			trajectories[i] = toExternal(r.pts, origin)
			termination[i] = []Termination{r.term}
		}

	case Both:
		fwd := dispatch(ig, internalSeeds, 1, h, maxSteps)
		bwd := dispatch(ig, internalSeeds, -1, h, maxSteps)
		for i := range internalSeeds {
			trajectories[i] = toExternal(concatBidirectional(bwd[i].pts, fwd[i].pts), origin)
			termination[i] = []Termination{fwd[i].term, bwd[i].term}
		}
	}

	return trajectories, termination, nil
}

// concatBidirectional joins a backward and forward half-line into one
// polyline containing the shared seed exactly once:
// reverse(backward[1:]) ++ forward. Degrades gracefully when either half
// has length 0 or 1 (nothing to reverse, or nothing to prepend).
func concatBidirectional(backward, forward []vec3.V3) []vec3.V3 {
	tailLen := 0
	if len(backward) > 1 {
		tailLen = len(backward) - 1
	}

	out := make([]vec3.V3, 0, tailLen+len(forward))
	for i := len(backward) - 1; i >= 1; i-- {
		out = append(out, backward[i])
	}
	out = append(out, forward...)
	return out
}

func toExternal(pts []vec3.V3, origin vec3.V3) [][3]float64 {
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		out[i] = [3]float64{p[0] + origin[0], p[1] + origin[1], p[2] + origin[2]}
	}
	return out
}
