// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/delegate-tracker/cliparse"
	"github.com/danielhkuo/delegate-tracker/handlers"
	"github.com/danielhkuo/delegate-tracker/metrics"
	"github.com/danielhkuo/delegate-tracker/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *handlers.Sessions) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	partyHandler := handlers.NewPartyHandler(sessions)
	candidateHandler := handlers.NewCandidateHandler(sessions)
	stateHandler := handlers.NewStateHandler(sessions)
	scenarioHandler := handlers.NewScenarioHandler(db, cfg, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus
	mux.Handle("GET /metrics", metrics.Handler())

	// Parties
	mux.HandleFunc("GET /parties", middleware.WithLogging(partyHandler.ListParties))
	mux.HandleFunc("GET /parties/{party}/summary", middleware.WithLogging(partyHandler.GetSummary))

	// Candidate registry
	mux.HandleFunc("GET /parties/{party}/candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /parties/{party}/candidates/{id}", middleware.WithLogging(candidateHandler.GetCandidate))
	mux.HandleFunc("PUT /parties/{party}/candidates/{id}/name", middleware.WithLogging(candidateHandler.SetCandidateName))
	mux.HandleFunc("POST /parties/{party}/candidates/{id}/reset", middleware.WithLogging(candidateHandler.ResetCandidate))

	// State allocation
	mux.HandleFunc("GET /parties/{party}/states", middleware.WithLogging(stateHandler.ListStates))
	mux.HandleFunc("GET /parties/{party}/states/{state}", middleware.WithLogging(stateHandler.GetState))
	mux.HandleFunc("PUT /parties/{party}/states/{state}/candidates/{id}/percentage", middleware.WithLogging(stateHandler.UpdatePercentage))
	mux.HandleFunc("POST /parties/{party}/states/{state}/reset", middleware.WithLogging(stateHandler.ResetState))

	// Scenarios
	mux.HandleFunc("POST /parties/{party}/scenarios", middleware.WithLogging(scenarioHandler.SaveScenario))
	mux.HandleFunc("GET /scenarios/{slug}", middleware.WithLogging(scenarioHandler.GetScenario))
	mux.HandleFunc("PUT /scenarios/{id}", middleware.WithLogging(scenarioHandler.UpdateScenario))
	mux.HandleFunc("POST /scenarios/{slug}/restore", middleware.WithLogging(scenarioHandler.RestoreScenario))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("delegate-tracker API v1"))
	})

	return mux
}
