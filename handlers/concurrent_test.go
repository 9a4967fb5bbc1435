// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/testutil"
)

// TestConcurrentPercentageUpdates verifies that simultaneous edits to the
// same party never leave a state unbalanced
func TestConcurrentPercentageUpdates(t *testing.T) {
	sessions := newTestSessions(t)
	handler := NewStateHandler(sessions)

	numWorkers := 12
	editsPerWorker := 25
	states := []string{"IA", "NH", "SC", "FL"}

	var okCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for j := 0; j < editsPerWorker; j++ {
				state := states[(worker+j)%len(states)]
				candidate := strconv.Itoa((worker + j) % 3)
				percent := float64((worker*7 + j*13) % 90)

				w := updatePercentage(handler, "gop", state, candidate, percentBody(percent))
				if w.Code == http.StatusOK {
					okCount.Add(1)
				}
			}
		}(i)
	}

	wg.Wait()

	if int(okCount.Load()) != numWorkers*editsPerWorker {
		t.Errorf("Expected %d successful edits, got %d", numWorkers*editsPerWorker, okCount.Load())
	}

	sessions.With(testutil.TestPartyID, func(s *allocation.Session) error {
		total := 0
		for _, state := range s.States() {
			percent := state.UnallocatedPercentage
			delegates := state.UnallocatedDelegates
			for _, r := range state.Results {
				percent += r.Percent
				delegates += r.Delegates
				if r.Percent < 0 {
					t.Errorf("state %s: negative percent %v", state.Initials, r.Percent)
				}
			}
			if math.Abs(percent-100) > 1e-9 {
				t.Errorf("state %s: percentages sum to %v", state.Initials, percent)
			}
			if delegates != state.TotalDelegates {
				t.Errorf("state %s: delegates sum to %d, want %d", state.Initials, delegates, state.TotalDelegates)
			}
		}

		for _, c := range s.Candidates() {
			total += c.Delegates
		}
		if total != s.AllocatedDelegates() {
			t.Errorf("candidate totals %d != allocated %d", total, s.AllocatedDelegates())
		}
		return nil
	})
}
