// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/metrics"
	"github.com/danielhkuo/delegate-tracker/middleware"
	"github.com/danielhkuo/delegate-tracker/models"
)

const clampedWarning = "percentage exceeded what the state could free; the value was clamped"

type StateHandler struct {
	sessions *Sessions
}

func NewStateHandler(sessions *Sessions) *StateHandler {
	return &StateHandler{sessions: sessions}
}

// resolveState finds a state by numeric id or by initials
func resolveState(s *allocation.Session, ref string) (models.StateRecord, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		if state, ok := s.StateByID(id); ok {
			return state, nil
		}
	} else if state, ok := s.StateByInitials(ref); ok {
		return state, nil
	}
	return models.StateRecord{}, fmt.Errorf("%w: state %q", allocation.ErrInvalidIdentifier, ref)
}

// ListStates handles GET /parties/{party}/states
func (h *StateHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")

	var states []models.StateRecord
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		states = s.States()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, states)
}

// GetState handles GET /parties/{party}/states/{state}
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	ref := r.PathValue("state")

	var state models.StateRecord
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		var err error
		state, err = resolveState(s, ref)
		return err
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}

// UpdatePercentage handles PUT /parties/{party}/states/{state}/candidates/{id}/percentage
func (h *StateHandler) UpdatePercentage(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	ref := r.PathValue("state")
	candidateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePercentageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Percent == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "percent is required")
		return
	}
	percent := *req.Percent

	var resp models.UpdatePercentageResponse
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		state, err := resolveState(s, ref)
		if err != nil {
			return err
		}

		err = s.UpdateCandidatePercentage(candidateID, state.ID, percent)
		if err != nil && !errors.Is(err, allocation.ErrRebalanceExhausted) {
			return err
		}
		if err != nil {
			resp.Warning = clampedWarning
		}

		resp.State, _ = s.StateByID(state.ID)
		resp.Candidates = s.Candidates()
		return nil
	})
	if err != nil {
		metrics.PercentageUpdates.WithLabelValues(partyID, metrics.OutcomeRejected).Inc()
		writeSessionError(w, err)
		return
	}

	outcome := metrics.OutcomeApplied
	if resp.Warning != "" {
		outcome = metrics.OutcomeClamped
	}
	metrics.PercentageUpdates.WithLabelValues(partyID, outcome).Inc()

	slog.Info("percentage updated", "party", partyID, "state", resp.State.Initials,
		"candidate", candidateID, "percent", percent, "outcome", outcome)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ResetState handles POST /parties/{party}/states/{state}/reset
func (h *StateHandler) ResetState(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	ref := r.PathValue("state")

	var state models.StateRecord
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		found, err := resolveState(s, ref)
		if err != nil {
			return err
		}
		if err := s.ResetStateResults(found.ID); err != nil {
			return err
		}
		state, _ = s.StateByID(found.ID)
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	slog.Info("state reset", "party", partyID, "state", state.Initials)

	middleware.JSONResponse(w, http.StatusOK, state)
}
