// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/delegate-tracker/auth"
	"github.com/danielhkuo/delegate-tracker/cliparse"
	"github.com/danielhkuo/delegate-tracker/db"
	"github.com/danielhkuo/delegate-tracker/models"
	"github.com/danielhkuo/delegate-tracker/parties"
)

// TestPartyID is the only party in TestCatalog
const TestPartyID = "gop"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   ":memory:",
		EditKeySalt:   "test-edit-salt",
		ShareSlugSalt: "test-slug-salt",
	}
}

// TestCatalog returns a one-party catalog whose delegate total matches TestStates
func TestCatalog() *parties.Catalog {
	return parties.NewCatalog(models.Party{
		ID:                    TestPartyID,
		Name:                  "Test Party",
		Color:                 "#E81B23",
		TotalDelegates:        237,
		DefaultCandidateNames: []string{"Alice", "Bob", "Carol"},
	})
}

// TestStates returns a small mixed dataset:
// IA (id 0, 40, proportional), NH (id 1, 22, proportional, 10% threshold),
// SC (id 3, 50, winner-take-all) and FL (id 14, 125, winner-take-all).
func TestStates() []models.StateDefinition {
	threshold := 10.0
	return []models.StateDefinition{
		{ID: 0, Initials: "IA", Name: "Iowa", TotalDelegates: 40, AllocationMethod: models.AllocationProportional},
		{ID: 1, Initials: "NH", Name: "New Hampshire", TotalDelegates: 22, AllocationMethod: models.AllocationProportional,
			ElectionRules: &models.ElectionRules{MinThreshold: &threshold}},
		{ID: 3, Initials: "SC", Name: "South Carolina", TotalDelegates: 50, AllocationMethod: models.AllocationWinnerTakeAll},
		{ID: 14, Initials: "FL", Name: "Florida", TotalDelegates: 125, AllocationMethod: models.AllocationWinnerTakeAll},
	}
}

// CreateTestScenario stores a scenario directly and returns its id, edit key and share slug
func CreateTestScenario(t *testing.T, conn *sql.DB, cfg cliparse.Config, partyID string, payload models.ScenarioPayload) (scenarioID, editKey, shareSlug string) {
	t.Helper()

	scenarioID = auth.NewScenarioID()
	editKey = auth.GenerateEditKey(scenarioID, cfg.EditKeySalt)
	shareSlug = auth.GenerateShareSlug(scenarioID, cfg.ShareSlugSalt)

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to encode payload: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO scenario (id, party_id, title, share_slug, payload, created_at, updated_at)
		VALUES ($1, $2, 'Test Scenario', $3, $4, $5, $6)
	`, scenarioID, partyID, shareSlug, string(encoded), now, now)
	if err != nil {
		t.Fatalf("Failed to create test scenario: %v", err)
	}

	return scenarioID, editKey, shareSlug
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
