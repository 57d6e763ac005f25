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

import "github.com/fieldtrace/streamtracer/tracer/contrib/vec3"

// Termination classifies why a trajectory stopped.
type Termination int8

const (
	// TermNaN means a NaN was encountered in the sampled field or in the
	// computed position.
	TermNaN Termination = -1
	// TermMaxSteps means the step budget (max_steps) was exhausted.
	TermMaxSteps Termination = 1
	// TermOutOfDomain means the next step would leave the domain on a
	// non-cyclic face.
	TermOutOfDomain Termination = 2
)

// direction evaluates d(x) = sign * v(x) / ||v(x)|| at x by sampling the
// grid. A zero-magnitude interior sample makes the direction undefined,
// which is reported as TermNaN.
func direction(g *Grid, x vec3.V3, sign float64) (vec3.V3, Termination, bool) {
	v, status := g.sample(x)
	switch status {
	case sampleOutOfDomain:
		return vec3.V3{}, TermOutOfDomain, false
	case sampleNaN:
		return vec3.V3{}, TermNaN, false
	}
	unit, ok := vec3.Normalize(v)
	if !ok {
		return vec3.V3{}, TermNaN, false
	}
	return vec3.Scale(sign, unit), 0, true
}

// rk4Step performs one classical fourth-order Runge-Kutta step of fixed
// arc length h along the unit direction field, from p, using the given
// integration sign. On success it returns the next point — wrapped into
// the canonical range on any cyclic axis — and ok=true. On failure it
// returns the termination code and ok=false; the caller must not advance
// past p in that case — p remains the last in-domain point on
// TermOutOfDomain, and tracing stops immediately on TermNaN.
func rk4Step(g *Grid, p vec3.V3, sign, h float64) (vec3.V3, Termination, bool) {
	k1, term, ok := direction(g, p, sign)
	if !ok {
		return vec3.V3{}, term, false
	}

	k2, term, ok := direction(g, vec3.AddScaled(p, h/2, k1), sign)
	if !ok {
		return vec3.V3{}, term, false
	}

	k3, term, ok := direction(g, vec3.AddScaled(p, h/2, k2), sign)
	if !ok {
		return vec3.V3{}, term, false
	}

	k4, term, ok := direction(g, vec3.AddScaled(p, h, k3), sign)
	if !ok {
		return vec3.V3{}, term, false
	}

	next := vec3.Add(p, vec3.Sum4Scaled(h/6, k1, k2, k3, k4))
	if vec3.HasNaN(next) {
		return vec3.V3{}, TermNaN, false
	}

	for i := 0; i < 3; i++ {
		if g.cyclic[i] {
			next[i] = g.axes[i].wrap(next[i])
		}
	}

	return next, 0, true
}
