// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import "sync/atomic"

// interruptRequested is the process-wide cooperative cancellation flag.
// Long-running operations poll it at coarse milestones and abort with
// ErrInterrupted when it is set.
var interruptRequested atomic.Bool

// RequestInterrupt asks the currently running operation to abort at its next
// milestone. Safe to call from any goroutine.
func RequestInterrupt() { interruptRequested.Store(true) }

// CancelInterrupt clears a pending interrupt request.
func CancelInterrupt() { interruptRequested.Store(false) }

// CheckForInterrupts returns ErrInterrupted if an interrupt has been
// requested, consuming the request.
func CheckForInterrupts() error {
	if interruptRequested.CompareAndSwap(true, false) {
		return ErrInterrupted
	}
	return nil
}
