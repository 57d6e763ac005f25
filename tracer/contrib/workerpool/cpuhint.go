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

package workerpool

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUHint returns a short diagnostic string describing the host's logical
// core count and detected wide-vector support. The pool itself never
// branches on this — work distribution is purely count-based — but it is
// useful output for a caller deciding what to pass to New, the way the
// teacher library uses the same x/sys/cpu detection to pick a SIMD
// dispatch target instead.
func CPUHint() string {
	cores := runtime.NumCPU()
	switch {
	case cpu.X86.HasAVX2:
		return fmt.Sprintf("%d logical cores, AVX2", cores)
	case cpu.ARM64.HasASIMD:
		return fmt.Sprintf("%d logical cores, NEON", cores)
	default:
		return fmt.Sprintf("%d logical cores", cores)
	}
}
