// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "testing"

func TestCPUHintNonEmpty(t *testing.T) {
	hint := CPUHint()
	if hint == "" {
		t.Error("CPUHint() returned empty string")
	}
}
