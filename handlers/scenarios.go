// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/delegate-tracker/allocation"
	"github.com/danielhkuo/delegate-tracker/auth"
	"github.com/danielhkuo/delegate-tracker/cliparse"
	"github.com/danielhkuo/delegate-tracker/metrics"
	"github.com/danielhkuo/delegate-tracker/middleware"
	"github.com/danielhkuo/delegate-tracker/models"
)

type ScenarioHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *Sessions
}

func NewScenarioHandler(db *sql.DB, cfg cliparse.Config, sessions *Sessions) *ScenarioHandler {
	return &ScenarioHandler{db: db, cfg: cfg, sessions: sessions}
}

// SaveScenario handles POST /parties/{party}/scenarios
// Captures the party's live session under a new id.
func (h *ScenarioHandler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("party")

	var req models.SaveScenarioRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	var payload models.ScenarioPayload
	err := h.sessions.With(partyID, func(s *allocation.Session) error {
		payload = s.Snapshot()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save scenario")
		return
	}

	scenarioID := auth.NewScenarioID()
	shareSlug := auth.GenerateShareSlug(scenarioID, h.cfg.ShareSlugSalt)
	editKey := auth.GenerateEditKey(scenarioID, h.cfg.EditKeySalt)
	now := time.Now().UTC()

	_, err = h.db.Exec(`
		INSERT INTO scenario (id, party_id, title, share_slug, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, scenarioID, partyID, title, shareSlug, string(encoded), now, now)
	if err != nil {
		slog.Error("failed to insert scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save scenario")
		return
	}

	metrics.ScenarioWrites.WithLabelValues("create").Inc()
	slog.Info("scenario saved", "scenario_id", scenarioID, "party", partyID, "states", len(payload.States))

	middleware.JSONResponse(w, http.StatusCreated, models.SaveScenarioResponse{
		ScenarioID: scenarioID,
		ShareSlug:  shareSlug,
		EditKey:    editKey,
	})
}

// GetScenario handles GET /scenarios/{slug}
func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	scenario, ok := h.scenarioBySlug(w, r.PathValue("slug"))
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scenario)
}

// UpdateScenario handles PUT /scenarios/{id}
// Overwrites the stored payload with the party's live session. Requires X-Edit-Key.
func (h *ScenarioHandler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := r.PathValue("id")
	if !auth.ValidScenarioID(scenarioID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid scenario id")
		return
	}

	editKey := r.Header.Get("X-Edit-Key")
	if err := auth.ValidateEditKey(scenarioID, editKey, h.cfg.EditKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid edit key")
		return
	}

	var req models.SaveScenarioRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var partyID, title string
	var createdAt time.Time
	err := h.db.QueryRow("SELECT party_id, title, created_at FROM scenario WHERE id = $1", scenarioID).
		Scan(&partyID, &title, &createdAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scenario not found")
		return
	}
	if err != nil {
		slog.Error("failed to query scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if t := strings.TrimSpace(req.Title); t != "" {
		title = t
	}

	var payload models.ScenarioPayload
	err = h.sessions.With(partyID, func(s *allocation.Session) error {
		payload = s.Snapshot()
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update scenario")
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(`
		UPDATE scenario
		SET title = $1, payload = $2, updated_at = $3
		WHERE id = $4
	`, title, string(encoded), now, scenarioID)
	if err != nil {
		slog.Error("failed to update scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update scenario")
		return
	}

	metrics.ScenarioWrites.WithLabelValues("update").Inc()
	slog.Info("scenario updated", "scenario_id", scenarioID, "party", partyID)

	middleware.JSONResponse(w, http.StatusOK, models.Scenario{
		ID:        scenarioID,
		PartyID:   partyID,
		Title:     title,
		ShareSlug: auth.GenerateShareSlug(scenarioID, h.cfg.ShareSlugSalt),
		Payload:   payload,
		CreatedAt: createdAt,
		UpdatedAt: now,
	})
}

// RestoreScenario handles POST /scenarios/{slug}/restore
// Replaces the party's live session with the saved names and percentages.
func (h *ScenarioHandler) RestoreScenario(w http.ResponseWriter, r *http.Request) {
	scenario, ok := h.scenarioBySlug(w, r.PathValue("slug"))
	if !ok {
		return
	}

	resp := models.RestoreScenarioResponse{PartyID: scenario.PartyID}
	err := h.sessions.With(scenario.PartyID, func(s *allocation.Session) error {
		err := s.Restore(scenario.Payload)
		if err != nil && !errors.Is(err, allocation.ErrRebalanceExhausted) {
			return err
		}
		if err != nil {
			resp.Warning = clampedWarning
		}
		resp.Summary = s.Summary()
		return nil
	})
	if errors.Is(err, allocation.ErrInvalidIdentifier) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Scenario payload does not fit this party")
		return
	}
	if err != nil {
		writeSessionError(w, err)
		return
	}

	metrics.ScenarioWrites.WithLabelValues("restore").Inc()
	slog.Info("scenario restored", "scenario_id", scenario.ID, "party", scenario.PartyID)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// scenarioBySlug loads a scenario, writing the error response itself on failure
func (h *ScenarioHandler) scenarioBySlug(w http.ResponseWriter, slug string) (models.Scenario, bool) {
	var (
		scenario models.Scenario
		payload  string
	)
	err := h.db.QueryRow(`
		SELECT id, party_id, title, share_slug, payload, created_at, updated_at
		FROM scenario
		WHERE share_slug = $1
	`, slug).Scan(&scenario.ID, &scenario.PartyID, &scenario.Title, &scenario.ShareSlug,
		&payload, &scenario.CreatedAt, &scenario.UpdatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scenario not found")
		return models.Scenario{}, false
	}
	if err != nil {
		slog.Error("failed to query scenario", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Scenario{}, false
	}

	if err := json.Unmarshal([]byte(payload), &scenario.Payload); err != nil {
		slog.Error("failed to decode scenario payload", "scenario_id", scenario.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt scenario")
		return models.Scenario{}, false
	}

	return scenario, true
}
