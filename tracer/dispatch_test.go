// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package tracer

import (
	"testing"

	"github.com/fieldtrace/streamtracer/tracer/contrib/vec3"
)

func TestDispatchPreservesSeedOrder(t *testing.T) {
	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	seeds := make([]vec3.V3, 50)
	for i := range seeds {
		seeds[i] = vec3.V3{0, float64(i), 0}
	}

	results := dispatch(g, seeds, 1, 0.1, 2000)

	if len(results) != len(seeds) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(seeds))
	}
	for i, r := range results {
		if r.pts[0] != seeds[i] {
			t.Errorf("results[%d] first point = %v, want seed %v", i, r.pts[0], seeds[i])
		}
		// Every line here stays at y = i, z = 0 throughout.
		for _, p := range r.pts {
			if p[1] != float64(i) {
				t.Errorf("results[%d]: point y = %v, want %v", i, p[1], i)
			}
		}
	}
}

func TestDispatchEmptySeeds(t *testing.T) {
	g := mustGrid(t, uniformField(4, 4, 4, [3]float64{1, 0, 0}), 4, 4, 4,
		uniformAxis(4, 0), uniformAxis(4, 0), uniformAxis(4, 0), Cyclic{})

	results := dispatch(g, nil, 1, 0.1, 10)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSetWorkerCountAndGet(t *testing.T) {
	prev := WorkerCount()
	defer SetWorkerCount(prev)

	SetWorkerCount(3)
	if WorkerCount() != 3 {
		t.Errorf("WorkerCount() = %d, want 3", WorkerCount())
	}

	// Non-positive values are ignored.
	SetWorkerCount(0)
	if WorkerCount() != 3 {
		t.Errorf("WorkerCount() = %d after SetWorkerCount(0), want unchanged 3", WorkerCount())
	}
	SetWorkerCount(-5)
	if WorkerCount() != 3 {
		t.Errorf("WorkerCount() = %d after SetWorkerCount(-5), want unchanged 3", WorkerCount())
	}
}

func TestDispatchUsesConfiguredWorkerCount(t *testing.T) {
	prev := WorkerCount()
	defer SetWorkerCount(prev)
	SetWorkerCount(2)

	g := mustGrid(t, uniformField(101, 101, 101, [3]float64{1, 0, 0}), 101, 101, 101,
		uniformAxis(101, 0), uniformAxis(101, 0), uniformAxis(101, 0), Cyclic{})

	seeds := make([]vec3.V3, 200)
	for i := range seeds {
		seeds[i] = vec3.V3{0, 0, 0}
	}
	results := dispatch(g, seeds, 1, 0.1, 2000)
	if len(results) != len(seeds) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(seeds))
	}
	if got := sharedPool().NumWorkers(); got != 2 {
		t.Errorf("shared pool has %d workers, want 2", got)
	}
}
