// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import "github.com/danielhkuo/delegate-tracker/models"

// percentEpsilon absorbs float dust left by typed decimal shares, so a state
// that sums to 100 can always be reclaimed in full.
const percentEpsilon = 1e-9

// unallocatePercentages reclaims target points for excludeID, first from the
// state's unallocated pool and then from the weakest other candidates.
// It returns whatever could not be reclaimed (0 on success); shortfalls within
// percentEpsilon count as reclaimed.
//
// Every pass either finishes or zeroes one candidate, so the loop runs at most
// once per slot.
func unallocatePercentages(state *models.StateRecord, target float64, excludeID int) float64 {
	remaining := target

	for range len(state.Results) + 1 {
		if remaining <= state.UnallocatedPercentage+percentEpsilon {
			state.UnallocatedPercentage = max(0, state.UnallocatedPercentage-remaining)
			return 0
		}
		remaining -= state.UnallocatedPercentage
		state.UnallocatedPercentage = 0

		loser := losingCandidate(state, excludeID)
		if loser < 0 {
			return remaining
		}

		result := &state.Results[loser]
		if result.Percent+percentEpsilon >= remaining {
			result.Percent = max(0, result.Percent-remaining)
			return 0
		}
		remaining -= result.Percent
		result.Percent = 0
	}

	return remaining
}

// losingCandidate returns the slot with the lowest positive percent other than
// excludeID, preferring the lowest slot id on ties. -1 when nobody is left.
func losingCandidate(state *models.StateRecord, excludeID int) int {
	loser := -1
	for i, r := range state.Results {
		if i == excludeID || r.Percent <= 0 {
			continue
		}
		if loser < 0 || r.Percent < state.Results[loser].Percent {
			loser = i
		}
	}
	return loser
}
