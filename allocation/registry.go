// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"fmt"

	"github.com/danielhkuo/delegate-tracker/models"
)

// SlotColors are the display colors of the candidate slots, indexed by slot id.
// They do not change between parties.
var SlotColors = [models.CandidateSlotCount]string{
	"#FFC8B4", // light peach
	"#B5EAD7", // pastel teal
	"#E8D6CB", // pale pink
	"#C9E4CA", // pale green
	"#FFE0C2", // light orange
	"#C7CEEA", // pale lavender
	"#D4E6F1", // light blue
	"#E9D1D1", // light rose
}

// Registry is the candidate list of one party.
type Registry struct {
	totalDelegates int
	slots          []models.CandidateSlot
}

// NewRegistry lays out the fixed candidate slots and names them from names.
// Extra names are ignored; missing names leave the slot unused.
func NewRegistry(totalDelegates int, names []string) *Registry {
	slots := make([]models.CandidateSlot, models.CandidateSlotCount)
	for i := range slots {
		slots[i] = models.CandidateSlot{ID: i, Color: SlotColors[i]}
		if i < len(names) {
			slots[i].Name = names[i]
		}
	}
	return &Registry{totalDelegates: totalDelegates, slots: slots}
}

func (r *Registry) CandidateByID(id int) (models.CandidateSlot, bool) {
	if id < 0 || id >= len(r.slots) {
		return models.CandidateSlot{}, false
	}
	return r.slots[id], true
}

func (r *Registry) CandidateColor(id int) string {
	c, _ := r.CandidateByID(id)
	return c.Color
}

func (r *Registry) CandidateName(id int) string {
	c, _ := r.CandidateByID(id)
	return c.Name
}

// SetCandidateName renames a slot. Duplicate names are allowed.
func (r *Registry) SetCandidateName(id int, name string) error {
	if id < 0 || id >= len(r.slots) {
		return fmt.Errorf("%w: candidate %d", ErrInvalidIdentifier, id)
	}
	r.slots[id].Name = name
	return nil
}

// Candidates returns a copy of every slot in id order.
func (r *Registry) Candidates() []models.CandidateSlot {
	return append([]models.CandidateSlot(nil), r.slots...)
}

// TotalDelegates is the party's full delegate pool.
func (r *Registry) TotalDelegates() int { return r.totalDelegates }

// LeadingCandidate returns the slot with the most delegates. Ties go to the
// lowest slot id, so with nothing allocated slot 0 leads.
func (r *Registry) LeadingCandidate() (models.CandidateSlot, bool) {
	if len(r.slots) == 0 {
		return models.CandidateSlot{}, false
	}
	leader := r.slots[0]
	for _, c := range r.slots[1:] {
		if c.Delegates > leader.Delegates {
			leader = c
		}
	}
	return leader, true
}

// WinnerCandidate returns the leader once they hold at least half of the
// party's total delegates, whether or not every state has reported.
func (r *Registry) WinnerCandidate() (models.CandidateSlot, bool) {
	leader, ok := r.LeadingCandidate()
	if !ok || r.totalDelegates <= 0 {
		return models.CandidateSlot{}, false
	}
	if float64(leader.Delegates)/float64(r.totalDelegates) >= 0.5 {
		return leader, true
	}
	return models.CandidateSlot{}, false
}

// DelegatesToWin is the smallest count that satisfies WinnerCandidate.
func (r *Registry) DelegatesToWin() int {
	return (r.totalDelegates + 1) / 2
}

// setDelegates is only called by the session's aggregation step.
func (r *Registry) setDelegates(id, delegates int) {
	r.slots[id].Delegates = delegates
}
