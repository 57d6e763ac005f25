// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package tracer

import (
	"math"
	"testing"

	"github.com/fieldtrace/streamtracer/tracer/contrib/vec3"
	"github.com/stretchr/testify/assert"
)

func TestRK4StepUniformFieldAdvancesByH(t *testing.T) {
	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	h := 0.1
	next, term, ok := rk4Step(g, vec3.V3{0, 0, 0}, 1, h)
	if !ok {
		t.Fatalf("rk4Step failed: term=%v", term)
	}
	assert.InDelta(t, h, next[0], 1e-12)
	assert.InDelta(t, 0, next[1], 1e-12)
	assert.InDelta(t, 0, next[2], 1e-12)
}

func TestRK4StepMagnitudeIndependence(t *testing.T) {
	// A field with larger magnitude must still advance by ~h in arc length,
	// since the step uses the unit direction field.
	g1 := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})
	g2 := mustGrid(t, uniformField(101, 101, 101, [3]float64{50, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	h := 0.1
	n1, _, ok1 := rk4Step(g1, vec3.V3{10, 10, 10}, 1, h)
	n2, _, ok2 := rk4Step(g2, vec3.V3{10, 10, 10}, 1, h)
	if !ok1 || !ok2 {
		t.Fatal("expected both steps to succeed")
	}
	assert.InDelta(t, vec3.Magnitude(vec3.Add(n1, vec3.Scale(-1, vec3.V3{10, 10, 10}))), h, 1e-9)
	assert.InDelta(t, vec3.Magnitude(vec3.Add(n2, vec3.Scale(-1, vec3.V3{10, 10, 10}))), h, 1e-9)
}

func TestRK4StepOutOfDomainTerminatesAtCurrentPoint(t *testing.T) {
	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	_, term, ok := rk4Step(g, vec3.V3{100, 0, 0}, 1, 0.1)
	if ok {
		t.Fatal("expected step to fail at domain edge")
	}
	if term != TermOutOfDomain {
		t.Errorf("term = %v, want TermOutOfDomain", term)
	}
}

func TestRK4StepBackwardOutOfDomainAtOrigin(t *testing.T) {
	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	_, term, ok := rk4Step(g, vec3.V3{0, 0, 0}, -1, 0.1)
	if ok {
		t.Fatal("expected backward step to fail at domain edge")
	}
	if term != TermOutOfDomain {
		t.Errorf("term = %v, want TermOutOfDomain", term)
	}
}

func TestRK4StepZeroFieldIsUndefinedDirection(t *testing.T) {
	g := mustGrid(t, uniformField(4, 4, 4, [3]float64{0, 0, 0}), 4, 4, 4,
		uniformAxis(4, 0), uniformAxis(4, 0), uniformAxis(4, 0), Cyclic{})

	_, term, ok := rk4Step(g, vec3.V3{1, 1, 1}, 1, 0.1)
	if ok {
		t.Fatal("expected step with zero field to fail")
	}
	if term != TermNaN {
		t.Errorf("term = %v, want TermNaN", term)
	}
}

func TestRK4StepCyclicWrapsReturnedPoint(t *testing.T) {
	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{X: true})

	next, term, ok := rk4Step(g, vec3.V3{99.95, 50, 50}, 1, 0.1)
	if !ok {
		t.Fatalf("rk4Step failed: term=%v", term)
	}
	assert.InDelta(t, 0.05, next[0], 1e-9)
	assert.InDelta(t, 50.0, next[1], 1e-12)
	assert.InDelta(t, 50.0, next[2], 1e-12)
}

func TestRK4StepNaNInFieldPropagates(t *testing.T) {
	nx, ny, nz := 4, 4, 4
	f := uniformField(nx, ny, nz, [3]float64{1, 0, 0})
	// Make a node NaN somewhere the first RK4 substep will read.
	f[((2*ny+2)*nz+2)*3] = math.NaN()
	g := mustGrid(t, f, nx, ny, nz, uniformAxis(nx, 0), uniformAxis(ny, 0), uniformAxis(nz, 0), Cyclic{})

	_, term, ok := rk4Step(g, vec3.V3{1.9, 1.9, 1.9}, 1, 0.5)
	if ok {
		t.Fatal("expected step to fail due to NaN")
	}
	if term != TermNaN {
		t.Errorf("term = %v, want TermNaN", term)
	}
}
