// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers and keys for saved scenarios.

# Scenario IDs

Scenarios are keyed by random UUIDs:

	id := auth.NewScenarioID()
	ok := auth.ValidScenarioID(id)

# Edit Keys

Edit keys use HMAC-SHA256 over the scenario ID:

	editKey := auth.GenerateEditKey(scenarioID, salt)
	err := auth.ValidateEditKey(scenarioID, editKey, salt)

The key is URL-safe base64 without padding. It is returned once when the
scenario is saved and never stored; the same ID and salt always produce the
same key.

# Share Slugs

Share slugs are short base62 strings derived from the scenario ID:

	slug := auth.GenerateShareSlug(scenarioID, salt)

Anyone holding the slug can view or restore the scenario. Overwriting it
needs the edit key.
*/
package auth
