// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/delegate-tracker/models"
)

func TestNewRegistryLayout(t *testing.T) {
	r := NewRegistry(2467, []string{"Donald J. Trump", "Ron DeSantis", "Nikki Haley"})

	slots := r.Candidates()
	require.Len(t, slots, models.CandidateSlotCount)
	for i, c := range slots {
		assert.Equal(t, i, c.ID)
		assert.Equal(t, SlotColors[i], c.Color)
		assert.Zero(t, c.Delegates)
	}
	assert.Equal(t, "Ron DeSantis", r.CandidateName(1))
	assert.True(t, slots[3].Inert())
	assert.False(t, slots[0].Inert())
}

func TestRegistryAbsentCandidates(t *testing.T) {
	r := NewRegistry(100, nil)

	_, ok := r.CandidateByID(8)
	assert.False(t, ok)
	_, ok = r.CandidateByID(-1)
	assert.False(t, ok)
	assert.Equal(t, "", r.CandidateColor(42))
	assert.Equal(t, "", r.CandidateName(42))

	require.ErrorIs(t, r.SetCandidateName(8, "Nobody"), ErrInvalidIdentifier)
}

func TestSetCandidateNameAllowsDuplicates(t *testing.T) {
	r := NewRegistry(100, []string{"A"})

	require.NoError(t, r.SetCandidateName(4, "A"))
	assert.Equal(t, "A", r.CandidateName(0))
	assert.Equal(t, "A", r.CandidateName(4))
}

func TestLeadingCandidate(t *testing.T) {
	tests := []struct {
		name      string
		delegates map[int]int
		want      int
	}{
		{"nothing allocated", nil, 0},
		{"clear leader", map[int]int{0: 10, 2: 30, 5: 7}, 2},
		{"tie goes to lowest slot", map[int]int{1: 30, 2: 30, 6: 30}, 1},
		{"later slot strictly ahead", map[int]int{0: 9, 7: 10}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(100, []string{"A", "B", "C"})
			for id, d := range tt.delegates {
				r.setDelegates(id, d)
			}

			leader, ok := r.LeadingCandidate()
			require.True(t, ok)
			assert.Equal(t, tt.want, leader.ID)
		})
	}
}

func TestWinnerCandidate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		delegates int
		wantWin   bool
	}{
		{"initial", 2467, 0, false},
		{"one short", 2467, 1233, false},
		{"exactly half", 2466, 1233, true},
		{"majority", 2467, 1234, true},
		{"no pool", 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.total, []string{"A", "B"})
			r.setDelegates(1, tt.delegates)

			winner, ok := r.WinnerCandidate()
			assert.Equal(t, tt.wantWin, ok)
			if ok {
				assert.Equal(t, 1, winner.ID)
			}
		})
	}
}

func TestDelegatesToWin(t *testing.T) {
	assert.Equal(t, 1234, NewRegistry(2467, nil).DelegatesToWin())
	assert.Equal(t, 2259, NewRegistry(4518, nil).DelegatesToWin())
}

func TestHeadline(t *testing.T) {
	r := NewRegistry(2467, []string{"Donald J. Trump"})
	summary := models.SummaryResponse{TotalDelegates: 2467, DelegatesToWin: r.DelegatesToWin()}
	assert.Equal(t, "No delegates allocated yet; 1,234 needed to win", Headline(summary))

	leader := models.CandidateSlot{ID: 0, Name: "Donald J. Trump", Delegates: 1000}
	summary.Leader = &leader
	assert.Equal(t, "Donald J. Trump leads with 1,000 delegates, 234 short of the 1,234 needed", Headline(summary))

	leader.Delegates = 1300
	summary.Winner = &leader
	assert.Equal(t, "Donald J. Trump clinches the nomination with 1,300 of 2,467 delegates", Headline(summary))

	summary.Winner = &models.CandidateSlot{ID: 5, Delegates: 1300}
	assert.Contains(t, Headline(summary), "Candidate 6")
}
