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
	"github.com/fieldtrace/streamtracer/tracer/contrib/vec3"
)

// sampleStatus classifies the outcome of a Sampler lookup.
type sampleStatus int8

const (
	sampleOK sampleStatus = iota
	sampleOutOfDomain
	sampleNaN
)

// sample locates the cell enclosing p (after cyclic wrapping on cyclic
// axes) and returns the trilinearly interpolated field vector there, or a
// status explaining why no value could be produced.
//
// A non-cyclic axis treats its outer faces as inclusive: a point exactly
// on axis[0] or axis[N-1] is in-domain.
func (g *Grid) sample(p vec3.V3) (vec3.V3, sampleStatus) {
	wrapped := p
	for i := 0; i < 3; i++ {
		if g.cyclic[i] {
			wrapped[i] = g.axes[i].wrap(p[i])
		}
	}

	var idx [3]int
	var frac [3]float64
	for i := 0; i < 3; i++ {
		j, f, ok := g.axes[i].locate(wrapped[i])
		if !ok {
			return vec3.V3{}, sampleOutOfDomain
		}
		idx[i], frac[i] = j, f
	}

	v := g.trilinear(idx, frac)
	if vec3.HasNaN(v) {
		return vec3.V3{}, sampleNaN
	}
	return v, sampleOK
}

// trilinear interpolates the three field components independently across
// the eight corner nodes of the cell (idx[0]..idx[0]+1, idx[1]..idx[1]+1,
// idx[2]..idx[2]+1), wrapping the "+1" corner to index 0 along any cyclic
// axis whose idx already sits at its last node.
func (g *Grid) trilinear(idx [3]int, frac [3]float64) vec3.V3 {
	hi := [3]int{idx[0] + 1, idx[1] + 1, idx[2] + 1}
	for i := 0; i < 3; i++ {
		n := [3]int{g.nx, g.ny, g.nz}[i]
		if hi[i] >= n {
			hi[i] = 0
		}
	}

	c := func(i, j, k int) vec3.V3 {
		x := idx[0]
		if i == 1 {
			x = hi[0]
		}
		y := idx[1]
		if j == 1 {
			y = hi[1]
		}
		z := idx[2]
		if k == 1 {
			z = hi[2]
		}
		return g.field.at(g.nx, g.ny, g.nz, x, y, z)
	}

	fx, fy, fz := frac[0], frac[1], frac[2]

	c00 := lerp(c(0, 0, 0), c(1, 0, 0), fx)
	c01 := lerp(c(0, 0, 1), c(1, 0, 1), fx)
	c10 := lerp(c(0, 1, 0), c(1, 1, 0), fx)
	c11 := lerp(c(0, 1, 1), c(1, 1, 1), fx)

	c0 := lerp(c00, c10, fy)
	c1 := lerp(c01, c11, fy)

	return lerp(c0, c1, fz)
}

func lerp(a, b vec3.V3, t float64) vec3.V3 {
	return vec3.V3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
