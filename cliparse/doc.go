// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: delegates.db)
  - StateData: dataset directory or http(s) base URL (default: bundled data)
  - EditKeySalt: Secret for scenario edit keys (required)
  - ShareSlugSalt: Secret for scenario share slugs (required)

# CLI Flags

	-p          Server port
	-t          Database type
	-d          Database URL
	-data       State dataset source
	--edit-salt Scenario edit key salt
	--slug-salt Scenario share slug salt

# Environment Variables

Environment variables are read first (github.com/caarlos0/env), then flags
override them:

	PORT            → -p
	DATABASE_TYPE   → -t
	DATABASE_URL    → -d
	STATE_DATA      → -data
	EDIT_KEY_SALT   → --edit-salt
	SHARE_SLUG_SALT → --slug-salt

main also loads a .env file from the working directory when one exists.

# Validation

ParseFlags returns an error if:

  - the port is outside 1-65535
  - the database type is unknown
  - postgres/pgx is selected without a DATABASE_URL
  - EDIT_KEY_SALT or SHARE_SLUG_SALT is missing
*/
package cliparse
