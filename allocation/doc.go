// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package allocation turns per-state vote percentages into delegates.

# Engine

Engine owns every state record of one party. Each state keeps, per candidate
slot, a percent and a delegate count, plus an unallocated percentage pool and an
unallocated delegate pool:

	sum(percent) + unallocated percentage == 100
	sum(delegates) + unallocated delegates == total delegates

UpdateCandidatePercentage is the only way percentages move. Raising a candidate
takes the difference from the unallocated pool first, then from the weakest
other candidate (lowest positive percent, lowest slot on ties), and so on.
Lowering a candidate returns the difference to the pool.

# Allocation Methods

After every edit the state's delegates are redistributed:

  - winner-take-all, winner-take-most: the top candidate takes everything if
    they are above the minimum threshold
  - proportional, delegate-selection: a candidate at or above the
    winner-take-all trigger takes everything; otherwise qualifying candidates
    get round(percent / base * total), where base is the unallocated pool plus
    the qualifying candidates' share

# Registry

Registry holds the eight candidate slots of a party. A slot with an empty name
is unused and can't be edited. LeadingCandidate breaks ties by slot id;
WinnerCandidate requires half of the party's full delegate pool.

# Session

Session wires a Registry to an Engine for one party:

	s, err := allocation.NewSession("gop", catalog)
	err = s.LoadStates(defs)
	err = s.UpdateCandidatePercentage(0, stateID, 55)
	winner, ok := s.WinnerCandidate()

Mutations end by re-aggregating candidate totals and state colors, so reads
are always current. Nothing here is safe for concurrent use; callers serialize
access per session.
*/
package allocation
