// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// AllocationMethod is the rule a state uses to turn vote share into delegates.
type AllocationMethod string

// Allocation method constants
const (
	AllocationProportional      AllocationMethod = "proportional"
	AllocationWinnerTakeAll     AllocationMethod = "winner-take-all"
	AllocationWinnerTakeMost    AllocationMethod = "winner-take-most"
	AllocationDelegateSelection AllocationMethod = "delegate-selection"
)

// Valid reports whether m is one of the known allocation methods.
func (m AllocationMethod) Valid() bool {
	switch m {
	case AllocationProportional, AllocationWinnerTakeAll,
		AllocationWinnerTakeMost, AllocationDelegateSelection:
		return true
	}
	return false
}

// Number of candidate slots every party registry carries.
const CandidateSlotCount = 8

// Domain types

type CandidateSlot struct {
	ID        int    `json:"id"`
	Color     string `json:"color"`
	Name      string `json:"name"`
	Delegates int    `json:"delegates"`
}

// Inert reports whether the slot is unused. Unused slots cannot be edited.
func (c CandidateSlot) Inert() bool {
	return c.Name == ""
}

type Party struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Color                 string   `json:"color"`
	TotalDelegates        int      `json:"total_delegates"`
	DefaultCandidateNames []string `json:"default_candidate_names"`
	ExcludedStateIDs      []int    `json:"excluded_state_ids,omitempty"`
}

// ElectionRules are optional modifiers on a state's allocation method.
// A nil or non-positive value means the rule is unset.
type ElectionRules struct {
	MinThreshold *float64 `json:"min_threshold,omitempty"`
	WTATrigger   *float64 `json:"wta_trigger,omitempty"`
}

// StateDefinition is the reference data for a state as it arrives from the dataset
type StateDefinition struct {
	ID               int              `json:"id"`
	Initials         string           `json:"initials"`
	Name             string           `json:"name"`
	TotalDelegates   int              `json:"total_delegates"`
	AllocationMethod AllocationMethod `json:"allocation_method"`
	ElectionRules    *ElectionRules   `json:"election_rules,omitempty"`
	ElectionDate     string           `json:"election_date,omitempty"`
	ElectionType     string           `json:"election_type,omitempty"`
}

type CandidateResult struct {
	ID        int     `json:"id"`
	Percent   float64 `json:"percent"`
	Delegates int     `json:"delegates"`
}

// StateRecord is a loaded state with its live results.
type StateRecord struct {
	StateDefinition
	Color                 string            `json:"color"`
	Results               []CandidateResult `json:"results"`
	UnallocatedPercentage float64           `json:"unallocated_percentage"`
	UnallocatedDelegates  int               `json:"unallocated_delegates"`
}

// Clone returns a deep copy so callers can't reach the engine's results.
func (s StateRecord) Clone() StateRecord {
	out := s
	out.Results = append([]CandidateResult(nil), s.Results...)
	if s.ElectionRules != nil {
		rules := *s.ElectionRules
		out.ElectionRules = &rules
	}
	return out
}

// Scenario types

// ScenarioState holds one state's percentages indexed by candidate slot id
type ScenarioState struct {
	StateID  int       `json:"state_id"`
	Percents []float64 `json:"percents"`
}

type ScenarioPayload struct {
	CandidateNames []string        `json:"candidate_names"`
	States         []ScenarioState `json:"states"`
}

type Scenario struct {
	ID        string          `json:"id"`
	PartyID   string          `json:"party_id"`
	Title     string          `json:"title"`
	ShareSlug string          `json:"share_slug"`
	Payload   ScenarioPayload `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Request types

// UpdatePercentageRequest carries the new share; a missing percent is rejected
// rather than read as zero.
type UpdatePercentageRequest struct {
	Percent *float64 `json:"percent"`
}

type SetCandidateNameRequest struct {
	Name string `json:"name"`
}

type SaveScenarioRequest struct {
	Title string `json:"title"`
}

// Response types

type UpdatePercentageResponse struct {
	State      StateRecord     `json:"state"`
	Candidates []CandidateSlot `json:"candidates"`
	Warning    string          `json:"warning,omitempty"`
}

type SummaryResponse struct {
	PartyID            string          `json:"party_id"`
	TotalDelegates     int             `json:"total_delegates"`
	AllocatedDelegates int             `json:"allocated_delegates"`
	DelegatesToWin     int             `json:"delegates_to_win"`
	Leader             *CandidateSlot  `json:"leader,omitempty"`
	Winner             *CandidateSlot  `json:"winner,omitempty"`
	Candidates         []CandidateSlot `json:"candidates"`
	Headline           string          `json:"headline"`
}

type SaveScenarioResponse struct {
	ScenarioID string `json:"scenario_id"`
	ShareSlug  string `json:"share_slug"`
	EditKey    string `json:"edit_key"`
}

type RestoreScenarioResponse struct {
	PartyID string          `json:"party_id"`
	Summary SummaryResponse `json:"summary"`
	Warning string          `json:"warning,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
