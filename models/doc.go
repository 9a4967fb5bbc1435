// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

Reference data and live allocation state:

  - Party: party metadata, total delegate pool, default candidates, excluded states
  - CandidateSlot: one of eight fixed candidate slots (id, color, name, delegates)
  - StateDefinition: a state as loaded from the dataset
  - StateRecord: a state with live results and unallocated pools
  - CandidateResult: one candidate's percent and delegates in one state
  - ElectionRules: optional minimum threshold and winner-take-all trigger

# Scenario Types

Saved snapshots of a party session:

  - Scenario: stored scenario metadata plus payload
  - ScenarioPayload: candidate names and per-state percentages

# Request Types

  - UpdatePercentageRequest: percent
  - SetCandidateNameRequest: name
  - SaveScenarioRequest: title

# Response Types

  - UpdatePercentageResponse: state, candidates, warning
  - SummaryResponse: leader, winner, allocated delegates, headline
  - SaveScenarioResponse: scenario_id, share_slug, edit_key
  - RestoreScenarioResponse: party_id, summary, warning
  - ErrorResponse: error, message

# Constants

Allocation methods:

	AllocationProportional      = "proportional"
	AllocationWinnerTakeAll     = "winner-take-all"
	AllocationWinnerTakeMost    = "winner-take-most"
	AllocationDelegateSelection = "delegate-selection"

Every party registry carries CandidateSlotCount (8) slots.
*/
package models
