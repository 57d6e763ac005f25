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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/fieldtrace/streamtracer/tracer/contrib/vec3"
	"github.com/fieldtrace/streamtracer/tracer/contrib/workerpool"
)

// workerCount is the process-wide worker-pool size: a default at process
// start, mutated only through SetWorkerCount, read by the dispatcher at
// the start of each trace.
var workerCount atomic.Int64

func init() {
	workerCount.Store(int64(runtime.GOMAXPROCS(0)))
}

// SetWorkerCount sets the number of workers used by subsequent calls to
// Trace. n must be positive.
func SetWorkerCount(n int) {
	if n <= 0 {
		return
	}
	workerCount.Store(int64(n))
}

// WorkerCount returns the current worker-pool size.
func WorkerCount() int {
	return int(workerCount.Load())
}

// lineResult is one seed's trajectory and termination code for a single
// integration direction.
type lineResult struct {
	pts  []vec3.V3
	term Termination
}

// sharedPool lazily builds (or rebuilds, if the configured size changed)
// the shared worker pool used by dispatch. A package-level pool avoids
// paying goroutine spawn cost on every Trace call.
var (
	poolMu   sync.Mutex
	pool     *workerpool.Pool
	poolSize int
)

func sharedPool() *workerpool.Pool {
	poolMu.Lock()
	defer poolMu.Unlock()

	want := WorkerCount()
	if pool == nil || poolSize != want {
		if pool != nil {
			pool.Close()
		}
		pool = workerpool.New(want)
		poolSize = want
	}
	return pool
}

// dispatch traces every seed in one integration direction in parallel,
// preserving seed order in the returned slice regardless of completion
// order.
func dispatch(g *Grid, seeds []vec3.V3, sign, h float64, maxSteps int) []lineResult {
	results := make([]lineResult, len(seeds))
	if len(seeds) == 0 {
		return results
	}

	p := sharedPool()
	p.ParallelForAtomic(len(seeds), func(i int) {
		pts, term := traceLine(g, seeds[i], sign, h, maxSteps)
		results[i] = lineResult{pts: pts, term: term}
	})

	return results
}
