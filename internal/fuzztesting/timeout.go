// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fuzztesting contains helpers for fuzz tests and for the regression
// tests that replay inputs a fuzzer found.
package fuzztesting

import (
	"context"
	"testing"
	"time"
)

// RunWithFuzzerTimeout runs fn a few times and fails t if that takes longer
// than a fuzzer would tolerate. fn should abandon its work once ctx is done.
func RunWithFuzzerTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()
	// Fuzzers complain if 100 iterations take longer than 60 seconds. Only 3
	// iterations run here, so the deadline can be much tighter.
	allowedDuration := 2 * time.Second
	if isRace {
		// The race detector has been observed to make runs ~8x slower, and
		// coverage on top of it even more.
		allowedDuration = 20 * time.Second
		t.Logf("allowing %v since race detector is enabled", allowedDuration)
	}
	ctx, cancel := context.WithTimeout(context.Background(), allowedDuration)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowedDuration)
		}
		cancel()
	}()
	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
