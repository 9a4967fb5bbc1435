// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/middleware"
	"github.com/danielhkuo/delegate-tracker/models"
)

type CandidateHandler struct {
	sessions *Sessions
}

func NewCandidateHandler(sessions *Sessions) *CandidateHandler {
	return &CandidateHandler{sessions: sessions}
}

// ListCandidates handles GET /parties/{party}/candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")

	var candidates []models.CandidateSlot
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		candidates = s.Candidates()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// GetCandidate handles GET /parties/{party}/candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	candidateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var candidate models.CandidateSlot
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		c, found := s.CandidateByID(candidateID)
		if !found {
			return fmt.Errorf("%w: candidate %d", allocation.ErrInvalidIdentifier, candidateID)
		}
		candidate = c
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// SetCandidateName handles PUT /parties/{party}/candidates/{id}/name
// An empty name retires the slot and releases its share in every state.
func (h *CandidateHandler) SetCandidateName(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	candidateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.SetCandidateNameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	name := strings.TrimSpace(req.Name)

	var candidates []models.CandidateSlot
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		if err := s.SetCandidateName(candidateID, name); err != nil {
			return err
		}
		candidates = s.Candidates()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	slog.Info("candidate renamed", "party", partyID, "candidate", candidateID, "name", name)

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ResetCandidate handles POST /parties/{party}/candidates/{id}/reset
func (h *CandidateHandler) ResetCandidate(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")
	candidateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var summary models.SummaryResponse
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		if err := s.ResetAllResultsForCandidate(candidateID); err != nil {
			return err
		}
		summary = s.Summary()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	slog.Info("candidate results reset", "party", partyID, "candidate", candidateID)

	middleware.JSONResponse(w, http.StatusOK, summary)
}
