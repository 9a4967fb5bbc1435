// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parties

import (
	"errors"
	"testing"

	"github.com/danielhkuo/delegate-tracker/allocation"
)

var _ allocation.PartyCatalog = (*Catalog)(nil)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	tests := []struct {
		id       string
		total    int
		first    string
		excluded []int
	}{
		{Republican, 2467, "Donald J. Trump", nil},
		{Democratic, 4518, "Joe Biden", []int{newHampshireID}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := c.PartyTotalDelegates(tt.id); got != tt.total {
				t.Errorf("expected %d delegates, got %d", tt.total, got)
			}
			names := c.PartyDefaultCandidates(tt.id)
			if len(names) == 0 || names[0] != tt.first {
				t.Errorf("expected first candidate %q, got %v", tt.first, names)
			}
			if got := c.PartyExcludedStateIDs(tt.id); len(got) != len(tt.excluded) {
				t.Errorf("expected excluded %v, got %v", tt.excluded, got)
			}
		})
	}
}

func TestUnknownParty(t *testing.T) {
	c := Default()

	if _, err := c.Party("whig"); !errors.Is(err, ErrUnknownParty) {
		t.Errorf("expected ErrUnknownParty, got %v", err)
	}
	if c.PartyTotalDelegates("whig") != 0 {
		t.Error("expected 0 delegates for unknown party")
	}
	if c.PartyDefaultCandidates("whig") != nil || c.PartyExcludedStateIDs("whig") != nil {
		t.Error("expected nil slices for unknown party")
	}
}

func TestPartiesAreCopies(t *testing.T) {
	c := Default()

	list := c.Parties()
	list[0].DefaultCandidateNames[0] = "Someone Else"

	if got := c.PartyDefaultCandidates(Republican)[0]; got != "Donald J. Trump" {
		t.Errorf("catalog was modified through a copy: %q", got)
	}
}

func TestSessionFromCatalog(t *testing.T) {
	s, err := allocation.NewSession(Democratic, Default())
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := s.CandidateByID(1); c.Name != "Dean Phillips" {
		t.Errorf("expected Dean Phillips in slot 1, got %q", c.Name)
	}
	if _, err := allocation.NewSession("whig", Default()); err == nil {
		t.Error("expected error for unknown party")
	}
}
