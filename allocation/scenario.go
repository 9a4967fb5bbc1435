// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/delegate-tracker/models"
)

// Snapshot captures candidate names and every state's percentages.
// Delegates are left out; they are re-derived on Restore.
func (s *Session) Snapshot() models.ScenarioPayload {
	payload := models.ScenarioPayload{
		CandidateNames: make([]string, 0, models.CandidateSlotCount),
		States:         make([]models.ScenarioState, 0, s.engine.Len()),
	}
	for _, c := range s.registry.slots {
		payload.CandidateNames = append(payload.CandidateNames, c.Name)
	}
	for _, state := range s.engine.states {
		percents := make([]float64, len(state.Results))
		allocated := false
		for i, r := range state.Results {
			percents[i] = r.Percent
			allocated = allocated || r.Percent > 0
		}
		if !allocated {
			continue
		}
		payload.States = append(payload.States, models.ScenarioState{
			StateID:  state.ID,
			Percents: percents,
		})
	}
	return payload
}

// Restore replaces the session's names and percentages with a snapshot.
// Percentages are replayed through UpdateCandidatePercentage on freshly reset
// states, so every state ends up settled. States the session doesn't know are
// skipped; an error wrapping ErrRebalanceExhausted means a snapshot value was
// larger than its state could hold.
func (s *Session) Restore(payload models.ScenarioPayload) error {
	if len(payload.CandidateNames) > models.CandidateSlotCount {
		return fmt.Errorf("%w: snapshot has %d candidates", ErrInvalidIdentifier, len(payload.CandidateNames))
	}

	for id := range models.CandidateSlotCount {
		name := ""
		if id < len(payload.CandidateNames) {
			name = payload.CandidateNames[id]
		}
		if err := s.registry.SetCandidateName(id, name); err != nil {
			return err
		}
	}
	for i := range s.engine.states {
		if err := s.engine.ResetStateResults(s.engine.states[i].ID); err != nil {
			return err
		}
	}

	var errs []error
	for _, st := range payload.States {
		if _, ok := s.engine.index[st.StateID]; !ok {
			continue
		}
		for id, percent := range st.Percents {
			if id >= models.CandidateSlotCount || percent <= 0 || s.registry.slots[id].Inert() {
				continue
			}
			if err := s.engine.UpdateCandidatePercentage(id, st.StateID, percent); err != nil {
				errs = append(errs, err)
			}
		}
	}

	s.recompute()
	return errors.Join(errs...)
}
