// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parties

import (
	"errors"
	"slices"

	"github.com/danielhkuo/delegate-tracker/models"
)

// Party id constants
const (
	Republican = "gop"
	Democratic = "dem"
)

// New Hampshire's state id in the bundled datasets
const newHampshireID = 1

var ErrUnknownParty = errors.New("unknown party")

// Catalog is the fixed set of parties the tracker knows about.
type Catalog struct {
	parties []models.Party
}

// Default returns the catalog of the 2024 presidential primaries.
func Default() *Catalog {
	return &Catalog{parties: []models.Party{
		{
			ID:                    Republican,
			Name:                  "Republican Party",
			Color:                 "#E81B23",
			TotalDelegates:        2467,
			DefaultCandidateNames: []string{"Donald J. Trump", "Ron DeSantis", "Nikki Haley"},
		},
		{
			ID:                    Democratic,
			Name:                  "Democratic Party",
			Color:                 "#00AEF3",
			TotalDelegates:        4518,
			DefaultCandidateNames: []string{"Joe Biden", "Dean Phillips", "Marianne Williamson"},
			// The DNC did not sanction the New Hampshire primary.
			ExcludedStateIDs: []int{newHampshireID},
		},
	}}
}

// NewCatalog builds a catalog from arbitrary party data.
func NewCatalog(parties ...models.Party) *Catalog {
	return &Catalog{parties: parties}
}

// Parties returns every party in catalog order.
func (c *Catalog) Parties() []models.Party {
	out := make([]models.Party, len(c.parties))
	for i, p := range c.parties {
		out[i] = clone(p)
	}
	return out
}

// Party looks a party up by id.
func (c *Catalog) Party(id string) (models.Party, error) {
	for _, p := range c.parties {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return models.Party{}, ErrUnknownParty
}

// PartyTotalDelegates returns the party's full delegate pool, or 0 for unknown parties.
func (c *Catalog) PartyTotalDelegates(id string) int {
	p, err := c.Party(id)
	if err != nil {
		return 0
	}
	return p.TotalDelegates
}

func (c *Catalog) PartyDefaultCandidates(id string) []string {
	p, err := c.Party(id)
	if err != nil {
		return nil
	}
	return p.DefaultCandidateNames
}

func (c *Catalog) PartyExcludedStateIDs(id string) []int {
	p, err := c.Party(id)
	if err != nil {
		return nil
	}
	return p.ExcludedStateIDs
}

func clone(p models.Party) models.Party {
	p.DefaultCandidateNames = slices.Clone(p.DefaultCandidateNames)
	p.ExcludedStateIDs = slices.Clone(p.ExcludedStateIDs)
	return p
}
