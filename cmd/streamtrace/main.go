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

// Command streamtrace traces streamlines through a vector field described
// by a JSON config file and prints each seed's trajectory length and
// termination code.
//
// Usage:
//
//	streamtrace -config field.json
//	streamtrace -configs a.json,b.json,c.json
//
// With -configs, each file is built and traced concurrently; the core
// tracer package itself never needs this (one Trace call already fans out
// over every seed) but a caller juggling many independent fields benefits
// from running the independent Trace calls concurrently too.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fieldtrace/streamtracer/tracer"
	"github.com/fieldtrace/streamtracer/tracer/contrib/workerpool"
)

var (
	configPath  = flag.String("config", "", "Path to a single field/seed JSON config")
	configPaths = flag.String("configs", "", "Comma-separated paths to trace concurrently")
	workers     = flag.Int("workers", 0, "Worker pool size (default: GOMAXPROCS)")
)

func main() {
	flag.Parse()

	if *configPath == "" && *configPaths == "" {
		fmt.Fprintf(os.Stderr, "Error: -config or -configs is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if *workers > 0 {
		tracer.SetWorkerCount(*workers)
	}
	fmt.Fprintf(os.Stderr, "streamtrace: %s, worker pool size %d\n", workerpool.CPUHint(), tracer.WorkerCount())

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	for _, p := range strings.Split(*configPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	if err := runAll(paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAll(paths []string) error {
	var g errgroup.Group

	for _, p := range paths {
		g.Go(func() error {
			return runOne(p)
		})
	}

	return g.Wait()
}

func runOne(path string) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	grid, err := cfg.buildGrid()
	if err != nil {
		return err
	}

	trajectories, termination, err := tracer.Trace(cfg.Seeds, grid, tracer.Direction(cfg.Direction), cfg.StepSize, cfg.MaxSteps)
	if err != nil {
		return fmt.Errorf("trace %s: %w", path, err)
	}

	for i, traj := range trajectories {
		fmt.Printf("%s seed %d: %d points, termination=%v\n", path, i, len(traj), termination[i])
	}
	return nil
}
