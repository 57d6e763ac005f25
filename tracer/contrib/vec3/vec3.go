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

// Package vec3 provides element-wise arithmetic over fixed 3-component
// vectors: the positions and field samples the tracer package integrates.
//
// Unlike the wider hwy/contrib/vec package this is narrowed from, these
// operations are not SIMD-dispatched: at width 3 there is nothing for a
// lane-width kernel to amortize over, so the functions here are the plain
// scalar arithmetic the tracer's hot loop needs, each taking and returning
// V3 values by copy.
package vec3

import "math"

// V3 is a point or vector in R3: (x, y, z).
type V3 = [3]float64

// Add returns a + b.
func Add(a, b V3) V3 {
	return V3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// AddScaled returns a + s*b.
func AddScaled(a V3, s float64, b V3) V3 {
	return V3{a[0] + s*b[0], a[1] + s*b[1], a[2] + s*b[2]}
}

// Scale returns s*a.
func Scale(s float64, a V3) V3 {
	return V3{s * a[0], s * a[1], s * a[2]}
}

// Sum4Scaled returns (k1 + 2*k2 + 2*k3 + k4) * s, the RK4 composite update
// term shared by every classical fourth-order step.
func Sum4Scaled(s float64, k1, k2, k3, k4 V3) V3 {
	return V3{
		s * (k1[0] + 2*k2[0] + 2*k3[0] + k4[0]),
		s * (k1[1] + 2*k2[1] + 2*k3[1] + k4[1]),
		s * (k1[2] + 2*k2[2] + 2*k3[2] + k4[2]),
	}
}

// Magnitude returns the L2 norm of v.
func Magnitude(v V3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v scaled to unit length. The second return is false if
// v has zero (or non-finite) magnitude, in which case the direction is
// undefined and the caller must not use the returned vector.
func Normalize(v V3) (V3, bool) {
	m := Magnitude(v)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return V3{}, false
	}
	return Scale(1/m, v), true
}

// HasNaN reports whether any component of v is NaN.
func HasNaN(v V3) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}
