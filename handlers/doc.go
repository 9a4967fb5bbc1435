// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the delegate tracker API.

# Sessions

Sessions owns one live allocation.Session per party, each behind its own
mutex. Every handler reaches a session through With, so edits to one party
never overlap:

	err := sessions.With(partyID, func(s *allocation.Session) error {
		return s.UpdateCandidatePercentage(candidateID, stateID, percent)
	})

Datasets are loaded once at startup with Load. A failed load is logged and
leaves the party's session empty.

# Handler Types

  - PartyHandler: party list and race summary
  - CandidateHandler: candidate slots, renaming and per-candidate reset
  - StateHandler: state records, percentage edits and per-state reset
  - ScenarioHandler: saving, sharing and restoring what-if scenarios

# Editing Results

	PUT /parties/{party}/states/{state}/candidates/{id}/percentage

{state} is a numeric id or the state's initials. Raising a candidate takes
from the state's unallocated pool first, then from the weakest other
candidates. When even that can't cover the request, the value is clamped and
the response carries a warning.

# Errors

  - unknown party, state or candidate: 404
  - non-numeric candidate id, invalid JSON: 400
  - editing an unnamed candidate slot: 409
  - wrong X-Edit-Key on PUT /scenarios/{id}: 401

# Scenarios

	POST /parties/{party}/scenarios → SaveScenario (returns edit_key, share_slug)
	GET /scenarios/{slug}           → GetScenario
	PUT /scenarios/{id}             → UpdateScenario (X-Edit-Key)
	POST /scenarios/{slug}/restore  → RestoreScenario
*/
package handlers
