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

import "fmt"

// ValidationError reports a malformed input to NewGrid or Trace. It is
// returned synchronously, before any tracing begins; it never describes a
// per-seed condition (see Termination for that).
type ValidationError struct {
	// Field names the offending argument or precondition, e.g. "field",
	// "axes.x", "direction", "max_steps".
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("streamtracer: %s: %s", e.Field, e.Msg)
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
