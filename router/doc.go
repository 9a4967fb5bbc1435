// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the delegate tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions)

# Endpoints

Health and telemetry:

	GET /health
	GET /metrics - Prometheus exposition

Parties:

	GET /parties                 - Party reference data
	GET /parties/{party}/summary - Leader, winner and headline

Candidates:

	GET  /parties/{party}/candidates           - All eight slots
	GET  /parties/{party}/candidates/{id}      - One slot
	PUT  /parties/{party}/candidates/{id}/name - Rename (empty name retires the slot)
	POST /parties/{party}/candidates/{id}/reset - Zero the candidate in every state

States ({state} is a numeric id or initials):

	GET  /parties/{party}/states
	GET  /parties/{party}/states/{state}
	PUT  /parties/{party}/states/{state}/candidates/{id}/percentage
	POST /parties/{party}/states/{state}/reset

Scenarios:

	POST /parties/{party}/scenarios   - Save the live session
	GET  /scenarios/{slug}            - Fetch by share slug
	PUT  /scenarios/{id}              - Overwrite (requires X-Edit-Key)
	POST /scenarios/{slug}/restore    - Replay into the party session

Every API route is wrapped in middleware.WithLogging.
*/
package router
