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
	"sync/atomic"
)

// Field is a flattened (Nx, Ny, Nz, 3) vector field sample array. Entry
// (i, j, k, c) is component c of the field at grid node (i, j, k), stored
// with c fastest-varying, then k, then j, then i.
type Field []float64

func (f Field) at(nx, ny, nz, i, j, k int) [3]float64 {
	base := ((i*ny+j)*nz + k) * 3
	return [3]float64{f[base], f[base+1], f[base+2]}
}

// Cyclic selects, per axis, whether positions wrap modulo the axis span
// instead of terminating a trajectory at the boundary.
type Cyclic struct {
	X, Y, Z bool
}

// axis is one monotone strictly-increasing coordinate axis. Binary search
// locates the enclosing cell for a non-uniform axis; lastIdx caches the
// most recently located cell index to amortize repeated nearby lookups
// (e.g. successive RK4 substeps along one streamline). The cache is
// advisory: concurrent tracer goroutines share one Grid and therefore one
// axis, so a cache hit observed under a race is simply re-validated before
// use and a miss just costs a full binary search — never a wrong answer.
type axis struct {
	vals       []float64
	minSpacing float64
	lastIdx    atomic.Int64
}

func newAxis(field, name string, vals []float64) (*axis, error) {
	if len(vals) < 2 {
		return nil, validationErrorf(field, "axis %s must have at least 2 nodes, got %d", name, len(vals))
	}
	minSpacing := vals[1] - vals[0]
	for i := 1; i < len(vals); i++ {
		d := vals[i] - vals[i-1]
		if d <= 0 {
			return nil, validationErrorf(field, "axis %s must be strictly increasing, node %d (%v) <= node %d (%v)", name, i, vals[i], i-1, vals[i-1])
		}
		if d < minSpacing {
			minSpacing = d
		}
	}
	a := &axis{vals: vals, minSpacing: minSpacing}
	a.lastIdx.Store(0)
	return a, nil
}

func (a *axis) length() int { return len(a.vals) }

func (a *axis) span() float64 { return a.vals[len(a.vals)-1] - a.vals[0] }

// locate returns the lower index i such that vals[i] <= q < vals[i+1], and
// the in-cell fraction of q between vals[i] and vals[i+1]. ok is false if
// q lies outside [vals[0], vals[n-1]]. A point exactly on an interior node
// resolves to the cell that starts at that node (frac 0); q == vals[n-1]
// resolves to the last cell with frac 1.
func (a *axis) locate(q float64) (idx int, frac float64, ok bool) {
	n := len(a.vals)
	last := a.vals[n-1]
	first := a.vals[0]
	if q < first || q > last {
		return 0, 0, false
	}
	if q == last {
		// Inclusive boundary: resolve into the final cell.
		return n - 2, 1, true
	}

	if hint := int(a.lastIdx.Load()); hint >= 0 && hint < n-1 && a.vals[hint] <= q && q < a.vals[hint+1] {
		idx = hint
	} else {
		idx = a.binarySearch(q)
		a.lastIdx.Store(int64(idx))
	}

	lo, hi := a.vals[idx], a.vals[idx+1]
	frac = (q - lo) / (hi - lo)
	return idx, frac, true
}

func (a *axis) binarySearch(q float64) int {
	lo, hi := 0, len(a.vals)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if a.vals[mid] <= q {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// wrap reduces q modulo the axis span into [vals[0], vals[n-1]) using a
// single fmod-style reduction, so a point arbitrarily far outside the
// domain lands inside after one step with no accumulated drift.
func (a *axis) wrap(q float64) float64 {
	span := a.span()
	first := a.vals[0]
	r := math.Mod(q-first, span)
	if r < 0 {
		r += span
	}
	return first + r
}

// Grid is an immutable bundle of field samples, three monotone coordinate
// axes, and a per-axis cyclic flag. Construct with NewGrid; once built, a
// Grid is safe for concurrent read-only use by any number of tracing
// goroutines.
type Grid struct {
	nx, ny, nz int
	field      Field
	axes       [3]*axis
	cyclic     [3]bool
}

// NewGrid validates and constructs a Grid. field must have length
// nx*ny*nz*3. x, y, z must each be strictly monotone increasing and have
// length nx, ny, nz respectively. On every cyclic axis, the field samples
// at the first and last node of that axis must be equal componentwise.
func NewGrid(field Field, nx, ny, nz int, x, y, z []float64, cyclic Cyclic) (*Grid, error) {
	if nx < 2 || ny < 2 || nz < 2 {
		return nil, validationErrorf("shape", "nx, ny, nz must each be >= 2, got (%d, %d, %d)", nx, ny, nz)
	}
	if len(field) != nx*ny*nz*3 {
		return nil, validationErrorf("field", "expected length %d (nx*ny*nz*3), got %d", nx*ny*nz*3, len(field))
	}
	if len(x) != nx {
		return nil, validationErrorf("axes.x", "expected length %d, got %d", nx, len(x))
	}
	if len(y) != ny {
		return nil, validationErrorf("axes.y", "expected length %d, got %d", ny, len(y))
	}
	if len(z) != nz {
		return nil, validationErrorf("axes.z", "expected length %d, got %d", nz, len(z))
	}

	ax, err := newAxis("axes.x", "x", x)
	if err != nil {
		return nil, err
	}
	ay, err := newAxis("axes.y", "y", y)
	if err != nil {
		return nil, err
	}
	az, err := newAxis("axes.z", "z", z)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		nx: nx, ny: ny, nz: nz,
		field:  field,
		axes:   [3]*axis{ax, ay, az},
		cyclic: [3]bool{cyclic.X, cyclic.Y, cyclic.Z},
	}

	if cyclic.X {
		if err := g.checkCyclicFaces(0, nx); err != nil {
			return nil, err
		}
	}
	if cyclic.Y {
		if err := g.checkCyclicFaces(1, ny); err != nil {
			return nil, err
		}
	}
	if cyclic.Z {
		if err := g.checkCyclicFaces(2, nz); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// checkCyclicFaces verifies field[...,0,...] == field[...,n-1,...] across
// the whole face perpendicular to axis dim (n is that axis's node count).
func (g *Grid) checkCyclicFaces(dim, n int) error {
	names := [3]string{"x", "y", "z"}
	otherDims := [3][2]int{{1, 2}, {0, 2}, {0, 1}}[dim]
	d1, d2 := otherDims[0], otherDims[1]
	lens := [3]int{g.nx, g.ny, g.nz}

	for a := 0; a < lens[d1]; a++ {
		for b := 0; b < lens[d2]; b++ {
			lo := [3]int{}
			hi := [3]int{}
			lo[d1], hi[d1] = a, a
			lo[d2], hi[d2] = b, b
			lo[dim] = 0
			hi[dim] = n - 1

			fv := g.field.at(g.nx, g.ny, g.nz, lo[0], lo[1], lo[2])
			lv := g.field.at(g.nx, g.ny, g.nz, hi[0], hi[1], hi[2])
			if fv != lv {
				return validationErrorf("cyclic."+names[dim],
					"field at first and last node of a cyclic axis must match; differ at (%d,%d,%d) vs (%d,%d,%d): %v != %v",
					lo[0], lo[1], lo[2], hi[0], hi[1], hi[2], fv, lv)
			}
		}
	}
	return nil
}

// minSpacing returns the minimum adjacent node spacing across all three
// axes, used to scale step_size into a fixed RK4 arc length.
func (g *Grid) minSpacing() float64 {
	m := g.axes[0].minSpacing
	if g.axes[1].minSpacing < m {
		m = g.axes[1].minSpacing
	}
	if g.axes[2].minSpacing < m {
		m = g.axes[2].minSpacing
	}
	return m
}

// origin returns (x[0], y[0], z[0]), the frame shift Trace applies before
// and after dispatching.
func (g *Grid) origin() [3]float64 {
	return [3]float64{g.axes[0].vals[0], g.axes[1].vals[0], g.axes[2].vals[0]}
}
