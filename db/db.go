// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

// Open connects to the configured database. dbType is one of the
// cliparse database types and doubles as the database/sql driver name.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "sqlite", "postgres", "pgx":
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dbType, err)
	}

	if dbType == "sqlite" {
		// sqlite allows one writer; serialize through a single connection
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
