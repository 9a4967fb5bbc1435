// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the delegate tracker API server.

The delegate tracker is a what-if calculator for presidential primaries:
enter each candidate's vote share state by state and it allocates the
state's delegates under that state's rules (proportional, winner-take-all,
thresholds and winner-take-all triggers), then tallies the race for the
nomination.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	EDIT_KEY_SALT=... SHARE_SLUG_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --edit-salt ... --slug-salt ...

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - EDIT_KEY_SALT (--edit-salt): Secret for scenario edit keys
  - SHARE_SLUG_SALT (--slug-salt): Secret for scenario share slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: delegates.db)
  - STATE_DATA (-data): Dataset directory or http(s) base URL (default: bundled)

# Architecture

  - allocation: delegate allocation engine, candidate registry, party session
  - parties: party reference data
  - dataset: state dataset loading
  - handlers: HTTP handlers and the per-party session store
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: Domain, request and response types
  - auth: Scenario ids, edit keys and share slugs
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
