// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/middleware"
	"github.com/danielhkuo/delegate-tracker/models"
	"github.com/danielhkuo/delegate-tracker/parties"
)

type PartyHandler struct {
	sessions *Sessions
}

func NewPartyHandler(sessions *Sessions) *PartyHandler {
	return &PartyHandler{sessions: sessions}
}

// ListParties handles GET /parties
func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sessions.Catalog().Parties())
}

// GetSummary handles GET /parties/{party}/summary
func (h *PartyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")

	var summary models.SummaryResponse
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		summary = s.Summary()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// writeSessionError maps allocation and party errors onto HTTP statuses
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parties.ErrUnknownParty):
		middleware.ErrorResponse(w, http.StatusNotFound, "Party not found")
	case errors.Is(err, allocation.ErrInvalidIdentifier):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, allocation.ErrInertCandidate):
		middleware.ErrorResponse(w, http.StatusConflict, "Candidate slot is unused; name the candidate first")
	default:
		slog.Error("session operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// pathID parses a numeric path value. Non-numeric ids are reported as 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid "+name+" id")
		return 0, false
	}
	return id, true
}
