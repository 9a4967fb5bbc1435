// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/dataset"
	"github.com/danielhkuo/delegate-tracker/metrics"
	"github.com/danielhkuo/delegate-tracker/models"
	"github.com/danielhkuo/delegate-tracker/parties"
)

// partySession pairs a session with the lock that serializes its edits
type partySession struct {
	mu      sync.Mutex
	session *allocation.Session
}

// Sessions owns one live allocation session per party.
type Sessions struct {
	catalog *parties.Catalog
	byParty map[string]*partySession
}

// NewSessions creates an empty session for every party in the catalog.
func NewSessions(catalog *parties.Catalog) (*Sessions, error) {
	s := &Sessions{
		catalog: catalog,
		byParty: make(map[string]*partySession),
	}
	for _, p := range catalog.Parties() {
		session, err := allocation.NewSession(p.ID, catalog)
		if err != nil {
			return nil, fmt.Errorf("create session for %s: %w", p.ID, err)
		}
		s.byParty[p.ID] = &partySession{session: session}
		publishTotals(session)
	}
	return s, nil
}

func (s *Sessions) Catalog() *parties.Catalog { return s.catalog }

// Load reads a party's dataset and loads it into its session. Failures are
// logged and returned; the session stays as it was.
func (s *Sessions) Load(ctx context.Context, loader *dataset.Loader, partyID string) error {
	defs, err := loader.Load(ctx, partyID)
	if err == nil {
		err = s.LoadStates(partyID, defs)
	}
	if err != nil {
		metrics.StateLoads.WithLabelValues(partyID, "error").Inc()
		slog.Error("failed to load states", "party", partyID, "error", err)
		return err
	}

	metrics.StateLoads.WithLabelValues(partyID, "success").Inc()
	slog.Info("states loaded", "party", partyID, "states", len(defs))
	return nil
}

// LoadStates loads already-decoded state definitions into a party's session.
func (s *Sessions) LoadStates(partyID string, defs []models.StateDefinition) error {
	return s.With(partyID, func(session *allocation.Session) error {
		return session.LoadStates(defs)
	})
}

// With runs fn while holding the party's lock, then republishes the party's
// delegate gauges.
func (s *Sessions) With(partyID string, fn func(*allocation.Session) error) error {
	ps, ok := s.byParty[partyID]
	if !ok {
		return fmt.Errorf("%w: %q", parties.ErrUnknownParty, partyID)
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	err := fn(ps.session)
	publishTotals(ps.session)
	return err
}

func publishTotals(session *allocation.Session) {
	for _, c := range session.Candidates() {
		metrics.CandidateDelegates.
			WithLabelValues(session.PartyID(), strconv.Itoa(c.ID)).
			Set(float64(c.Delegates))
	}
}
