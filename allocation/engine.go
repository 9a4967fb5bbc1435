// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielhkuo/delegate-tracker/models"
)

// Engine holds the per-state results for one party.
// It is not safe for concurrent use.
type Engine struct {
	slots  int
	states []models.StateRecord
	index  map[int]int // state id -> position in states
}

// NewEngine creates an empty engine with the given number of candidate slots
func NewEngine(slots int) *Engine {
	return &Engine{
		slots: slots,
		index: make(map[int]int),
	}
}

// Load replaces the engine's states with fresh records built from defs.
// On error the engine is left untouched.
func (e *Engine) Load(defs []models.StateDefinition) error {
	states := make([]models.StateRecord, 0, len(defs))
	index := make(map[int]int, len(defs))

	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return err
		}
		if _, dup := index[def.ID]; dup {
			return fmt.Errorf("%w: duplicate state id %d", ErrInvalidDataset, def.ID)
		}
		if def.AllocationMethod == "" {
			def.AllocationMethod = models.AllocationProportional
		}

		results := make([]models.CandidateResult, e.slots)
		for i := range results {
			results[i].ID = i
		}

		index[def.ID] = len(states)
		states = append(states, models.StateRecord{
			StateDefinition:       def,
			Results:               results,
			UnallocatedPercentage: 100,
			UnallocatedDelegates:  def.TotalDelegates,
		})
	}

	e.states = states
	e.index = index
	return nil
}

func validateDefinition(def models.StateDefinition) error {
	if def.ID < 0 {
		return fmt.Errorf("%w: negative state id %d", ErrInvalidDataset, def.ID)
	}
	if def.TotalDelegates <= 0 {
		return fmt.Errorf("%w: state %d has %d delegates", ErrInvalidDataset, def.ID, def.TotalDelegates)
	}
	if def.AllocationMethod != "" && !def.AllocationMethod.Valid() {
		return fmt.Errorf("%w: state %d has unknown allocation method %q", ErrInvalidDataset, def.ID, def.AllocationMethod)
	}
	if rules := def.ElectionRules; rules != nil {
		for _, v := range []*float64{rules.MinThreshold, rules.WTATrigger} {
			if v != nil && (*v < 0 || *v > 100 || math.IsNaN(*v)) {
				return fmt.Errorf("%w: state %d has rule value %v outside [0,100]", ErrInvalidDataset, def.ID, *v)
			}
		}
	}
	return nil
}

// UpdateCandidatePercentage sets a candidate's share of the vote in a state,
// reclaims or releases the difference, and reallocates the state's delegates.
//
// When the requested share can't be covered by the pool plus the other
// candidates, the candidate is clamped to what could be reclaimed and the
// returned error wraps ErrRebalanceExhausted. The state is settled either way.
func (e *Engine) UpdateCandidatePercentage(candidateID, stateID int, percent float64) error {
	state, err := e.mutableState(stateID)
	if err != nil {
		return err
	}
	if candidateID < 0 || candidateID >= e.slots {
		return fmt.Errorf("%w: candidate %d", ErrInvalidIdentifier, candidateID)
	}

	if percent < 0 || math.IsNaN(percent) {
		percent = 0
	}

	result := &state.Results[candidateID]
	delta := percent - result.Percent
	result.Percent = percent

	var exhausted error
	switch {
	case delta > 0:
		if left := unallocatePercentages(state, delta, candidateID); left > percentEpsilon {
			result.Percent -= left
			exhausted = fmt.Errorf("%w: state %d short %.3f points for candidate %d",
				ErrRebalanceExhausted, stateID, left, candidateID)
		}
	case delta < 0:
		state.UnallocatedPercentage -= delta
	}

	updateStateDelegates(state)
	return exhausted
}

// ResetStateResults puts a state back into its unedited shape.
func (e *Engine) ResetStateResults(stateID int) error {
	state, err := e.mutableState(stateID)
	if err != nil {
		return err
	}

	for i := range state.Results {
		state.Results[i].Percent = 0
		state.Results[i].Delegates = 0
	}
	state.UnallocatedPercentage = 100
	state.UnallocatedDelegates = state.TotalDelegates
	return nil
}

// ResetAllResultsForCandidate zeroes a candidate in every state. Their share goes
// back to each state's pool; it is never handed to other candidates.
func (e *Engine) ResetAllResultsForCandidate(candidateID int) error {
	if candidateID < 0 || candidateID >= e.slots {
		return fmt.Errorf("%w: candidate %d", ErrInvalidIdentifier, candidateID)
	}

	for i := range e.states {
		state := &e.states[i]
		result := &state.Results[candidateID]
		if result.Percent == 0 && result.Delegates == 0 {
			continue
		}
		state.UnallocatedPercentage += result.Percent
		result.Percent = 0
		updateStateDelegates(state)
	}
	return nil
}

// updateCandidateDelegates writes a delegate count and moves the difference
// into or out of the state's unallocated pool.
func updateCandidateDelegates(state *models.StateRecord, candidateID, delegates int) {
	result := &state.Results[candidateID]
	diff := delegates - result.Delegates
	result.Delegates = delegates
	state.UnallocatedDelegates -= diff
}

func (e *Engine) mutableState(stateID int) (*models.StateRecord, error) {
	i, ok := e.index[stateID]
	if !ok {
		return nil, fmt.Errorf("%w: state %d", ErrInvalidIdentifier, stateID)
	}
	return &e.states[i], nil
}

func (e *Engine) result(candidateID, stateID int) (models.CandidateResult, bool) {
	i, ok := e.index[stateID]
	if !ok || candidateID < 0 || candidateID >= e.slots {
		return models.CandidateResult{}, false
	}
	return e.states[i].Results[candidateID], true
}

// Reads. Unknown ids return zero values.

func (e *Engine) CandidateDelegates(candidateID, stateID int) int {
	r, _ := e.result(candidateID, stateID)
	return r.Delegates
}

func (e *Engine) CandidatePercentage(candidateID, stateID int) float64 {
	r, _ := e.result(candidateID, stateID)
	return r.Percent
}

// CandidateTotalDelegates sums a candidate's delegates over every loaded state.
func (e *Engine) CandidateTotalDelegates(candidateID int) int {
	if candidateID < 0 || candidateID >= e.slots {
		return 0
	}
	total := 0
	for i := range e.states {
		total += e.states[i].Results[candidateID].Delegates
	}
	return total
}

func (e *Engine) StateByID(stateID int) (models.StateRecord, bool) {
	i, ok := e.index[stateID]
	if !ok {
		return models.StateRecord{}, false
	}
	return e.states[i].Clone(), true
}

// StateByInitials looks a state up by its postal initials, ignoring case.
func (e *Engine) StateByInitials(initials string) (models.StateRecord, bool) {
	initials = strings.TrimSpace(initials)
	for i := range e.states {
		if strings.EqualFold(e.states[i].Initials, initials) {
			return e.states[i].Clone(), true
		}
	}
	return models.StateRecord{}, false
}

// States returns copies of every loaded state in dataset order.
func (e *Engine) States() []models.StateRecord {
	out := make([]models.StateRecord, len(e.states))
	for i := range e.states {
		out[i] = e.states[i].Clone()
	}
	return out
}

func (e *Engine) StateMinThreshold(stateID int) (float64, bool) {
	i, ok := e.index[stateID]
	if !ok {
		return 0, false
	}
	return minThreshold(&e.states[i])
}

func (e *Engine) StateWTATrigger(stateID int) (float64, bool) {
	i, ok := e.index[stateID]
	if !ok {
		return 0, false
	}
	return wtaTrigger(&e.states[i])
}

func (e *Engine) StateTotalDelegates(stateID int) int {
	i, ok := e.index[stateID]
	if !ok {
		return 0
	}
	return e.states[i].TotalDelegates
}

// StateAllocatedDelegates counts the delegates handed to candidates in a state.
func (e *Engine) StateAllocatedDelegates(stateID int) int {
	i, ok := e.index[stateID]
	if !ok {
		return 0
	}
	sum := 0
	for _, r := range e.states[i].Results {
		sum += r.Delegates
	}
	return sum
}

func (e *Engine) StateUnallocatedDelegates(stateID int) int {
	i, ok := e.index[stateID]
	if !ok {
		return 0
	}
	return e.states[i].UnallocatedDelegates
}

// Len returns the number of loaded states.
func (e *Engine) Len() int { return len(e.states) }
