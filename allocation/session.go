// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/danielhkuo/delegate-tracker/models"
)

// PartyCatalog is the read-only party reference data a session needs.
type PartyCatalog interface {
	PartyTotalDelegates(partyID string) int
	PartyDefaultCandidates(partyID string) []string
	PartyExcludedStateIDs(partyID string) []int
}

// Session binds one party's candidate registry to its state engine.
//
// Every mutating method finishes by re-aggregating candidate delegate totals
// and state colors before it returns, so reads never observe stale totals.
// A Session is not safe for concurrent use.
type Session struct {
	partyID  string
	excluded []int
	engine   *Engine
	registry *Registry
}

// NewSession creates an empty session for a party. States arrive via LoadStates.
func NewSession(partyID string, catalog PartyCatalog) (*Session, error) {
	total := catalog.PartyTotalDelegates(partyID)
	if total <= 0 {
		return nil, fmt.Errorf("%w: party %q", ErrInvalidIdentifier, partyID)
	}
	return &Session{
		partyID:  partyID,
		excluded: catalog.PartyExcludedStateIDs(partyID),
		engine:   NewEngine(models.CandidateSlotCount),
		registry: NewRegistry(total, catalog.PartyDefaultCandidates(partyID)),
	}, nil
}

func (s *Session) PartyID() string { return s.partyID }

// Loaded reports whether any states are in scope.
func (s *Session) Loaded() bool { return s.engine.Len() > 0 }

// LoadStates bulk-loads the party's states, dropping the ones the party
// excludes. On error the session keeps whatever it had before.
func (s *Session) LoadStates(defs []models.StateDefinition) error {
	inScope := make([]models.StateDefinition, 0, len(defs))
	for _, def := range defs {
		if slices.Contains(s.excluded, def.ID) {
			continue
		}
		inScope = append(inScope, def)
	}

	if err := s.engine.Load(inScope); err != nil {
		return fmt.Errorf("load states for %s: %w", s.partyID, err)
	}
	s.recompute()
	return nil
}

// UpdateCandidatePercentage edits one candidate's share in one state.
// Unused slots can't be edited. An error wrapping ErrRebalanceExhausted means
// the edit was applied with a clamped value.
func (s *Session) UpdateCandidatePercentage(candidateID, stateID int, percent float64) error {
	slot, ok := s.registry.CandidateByID(candidateID)
	if !ok {
		return fmt.Errorf("%w: candidate %d", ErrInvalidIdentifier, candidateID)
	}
	if slot.Inert() {
		return fmt.Errorf("%w: candidate %d", ErrInertCandidate, candidateID)
	}

	err := s.engine.UpdateCandidatePercentage(candidateID, stateID, percent)
	if err != nil && !errors.Is(err, ErrRebalanceExhausted) {
		return err
	}
	if err != nil {
		slog.Warn("percentage clamped", "party", s.partyID, "state", stateID,
			"candidate", candidateID, "requested", percent, "error", err)
	}

	s.recompute()
	return err
}

// SetCandidateName renames a slot. Clearing a name retires the slot, which
// releases its share back to every state's pool.
func (s *Session) SetCandidateName(candidateID int, name string) error {
	if err := s.registry.SetCandidateName(candidateID, name); err != nil {
		return err
	}
	if name == "" {
		if err := s.engine.ResetAllResultsForCandidate(candidateID); err != nil {
			return err
		}
	}
	s.recompute()
	return nil
}

func (s *Session) ResetStateResults(stateID int) error {
	if err := s.engine.ResetStateResults(stateID); err != nil {
		return err
	}
	s.recompute()
	return nil
}

func (s *Session) ResetAllResultsForCandidate(candidateID int) error {
	if err := s.engine.ResetAllResultsForCandidate(candidateID); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// recompute writes the derived fields: each slot's delegate total and each
// state's leading color. It never calls back into a mutating method.
func (s *Session) recompute() {
	for id := range models.CandidateSlotCount {
		s.registry.setDelegates(id, s.engine.CandidateTotalDelegates(id))
	}

	for i := range s.engine.states {
		state := &s.engine.states[i]
		state.Color = s.registry.CandidateColor(stateLeader(state))
	}
}

// stateLeader returns the slot holding the most delegates in a state, or -1
// when nobody holds any.
func stateLeader(state *models.StateRecord) int {
	leader := -1
	for i, r := range state.Results {
		if r.Delegates <= 0 {
			continue
		}
		if leader < 0 || r.Delegates > state.Results[leader].Delegates {
			leader = i
		}
	}
	return leader
}

// Reads

func (s *Session) Candidates() []models.CandidateSlot { return s.registry.Candidates() }

func (s *Session) CandidateByID(id int) (models.CandidateSlot, bool) {
	return s.registry.CandidateByID(id)
}

func (s *Session) States() []models.StateRecord { return s.engine.States() }

func (s *Session) StateByID(id int) (models.StateRecord, bool) { return s.engine.StateByID(id) }

func (s *Session) StateByInitials(initials string) (models.StateRecord, bool) {
	return s.engine.StateByInitials(initials)
}

func (s *Session) LeadingCandidate() (models.CandidateSlot, bool) {
	return s.registry.LeadingCandidate()
}

func (s *Session) WinnerCandidate() (models.CandidateSlot, bool) {
	return s.registry.WinnerCandidate()
}

// AllocatedDelegates counts delegates handed out across all in-scope states.
func (s *Session) AllocatedDelegates() int {
	total := 0
	for _, c := range s.registry.slots {
		total += c.Delegates
	}
	return total
}

// Summary gathers the party-wide standings.
func (s *Session) Summary() models.SummaryResponse {
	summary := models.SummaryResponse{
		PartyID:            s.partyID,
		TotalDelegates:     s.registry.TotalDelegates(),
		AllocatedDelegates: s.AllocatedDelegates(),
		DelegatesToWin:     s.registry.DelegatesToWin(),
		Candidates:         s.registry.Candidates(),
	}
	if leader, ok := s.registry.LeadingCandidate(); ok && leader.Delegates > 0 {
		summary.Leader = &leader
	}
	if winner, ok := s.registry.WinnerCandidate(); ok {
		summary.Winner = &winner
	}
	summary.Headline = Headline(summary)
	return summary
}
