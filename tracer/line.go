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

// traceLine repeatedly steps from seed until termination, carrying it
// through Start -> Running -> Terminated.
//
// The returned slice always contains at least one point (the seed,
// verbatim, at index 0) and never more than maxSteps. The returned
// Termination is always one of TermNaN, TermMaxSteps, TermOutOfDomain.
func traceLine(g *Grid, seed vec3.V3, sign, h float64, maxSteps int) ([]vec3.V3, Termination) {
	pts := make([]vec3.V3, 1, maxSteps)
	pts[0] = seed

	// Validate the seed itself against the domain; an out-of-domain seed
	// never enters the Running state.
	if _, status := g.sample(seed); status == sampleOutOfDomain {
		return pts, TermOutOfDomain
	} else if status == sampleNaN {
		return pts, TermNaN
	}

	for len(pts) < maxSteps {
		next, term, ok := rk4Step(g, pts[len(pts)-1], sign, h)
		if !ok {
			return pts, term
		}
		pts = append(pts, next)
	}

	return pts, TermMaxSteps
}
