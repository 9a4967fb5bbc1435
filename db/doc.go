// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the scenario store and creates its schema.

# Drivers

Open picks a database/sql driver by type:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Queries use $N placeholders, which all three drivers accept.

# Tables

  - scenario: a saved what-if (candidate names plus per-state percentages)

The payload column holds the scenario as JSON text. Delegates are not stored;
they are re-derived when a scenario is restored.

# Indexes

  - scenario.share_slug (unique)
  - scenario.party_id
*/
package db
