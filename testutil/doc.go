// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil holds shared fixtures for handler and router tests: an
// in-memory SQLite scenario store, a one-party catalog with a matching state
// dataset, and request/response helpers.
package testutil
