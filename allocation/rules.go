// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"math"

	"github.com/danielhkuo/delegate-tracker/models"
)

// updateStateDelegates redistributes a state's delegates from its current
// percentages according to its allocation method.
func updateStateDelegates(state *models.StateRecord) {
	switch state.AllocationMethod {
	case models.AllocationWinnerTakeAll, models.AllocationWinnerTakeMost:
		allocateWinnerTakeAll(state)
	default:
		allocateProportional(state)
	}
}

// allocateWinnerTakeAll gives every delegate to the top candidate, provided
// they clear the minimum threshold. A leader at 0% wins nothing.
func allocateWinnerTakeAll(state *models.StateRecord) {
	leader := -1
	for i, r := range state.Results {
		if r.Percent <= 0 {
			continue
		}
		if leader < 0 || r.Percent > state.Results[leader].Percent {
			leader = i
		}
	}

	if leader >= 0 {
		if threshold, ok := minThreshold(state); ok && state.Results[leader].Percent <= threshold {
			leader = -1
		}
	}

	awardAll(state, leader)
}

// allocateProportional splits delegates by share among candidates at or above
// the minimum threshold. A candidate reaching the winner-take-all trigger takes
// the whole state instead.
//
// Per-candidate rounding can leave the allocated total a delegate or two off
// the state's total. That drift is kept as is.
func allocateProportional(state *models.StateRecord) {
	if trigger, ok := wtaTrigger(state); ok {
		for i, r := range state.Results {
			if r.Percent >= trigger {
				awardAll(state, i)
				return
			}
		}
	}

	threshold, hasThreshold := minThreshold(state)
	qualifies := func(r models.CandidateResult) bool {
		return !hasThreshold || r.Percent >= threshold
	}

	base := state.UnallocatedPercentage
	for _, r := range state.Results {
		if qualifies(r) {
			base += r.Percent
		}
	}
	if base <= 0 {
		base = 100
	}

	for i, r := range state.Results {
		delegates := 0
		if qualifies(r) {
			delegates = int(math.Round(r.Percent / base * float64(state.TotalDelegates)))
		}
		updateCandidateDelegates(state, i, delegates)
	}
}

// awardAll hands every delegate to winner; winner -1 leaves them all unallocated.
func awardAll(state *models.StateRecord, winner int) {
	for i := range state.Results {
		delegates := 0
		if i == winner {
			delegates = state.TotalDelegates
		}
		updateCandidateDelegates(state, i, delegates)
	}
}

func minThreshold(state *models.StateRecord) (float64, bool) {
	if state.ElectionRules == nil {
		return 0, false
	}
	return ruleValue(state.ElectionRules.MinThreshold)
}

func wtaTrigger(state *models.StateRecord) (float64, bool) {
	if state.ElectionRules == nil {
		return 0, false
	}
	return ruleValue(state.ElectionRules.WTATrigger)
}

func ruleValue(v *float64) (float64, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}
