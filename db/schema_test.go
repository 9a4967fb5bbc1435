// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
	"time"
)

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, err := Open("mysql", "root@/test"); err == nil {
		t.Error("Open() with unknown type should fail")
	}
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}

	now := time.Now().UTC().Truncate(time.Second)
	_, err = conn.Exec(`
		INSERT INTO scenario (id, party_id, title, share_slug, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, "s1", "gop", "Test", "slug1", "{}", now, now)
	if err != nil {
		t.Fatalf("insert scenario: %v", err)
	}

	// share_slug is unique
	_, err = conn.Exec(`
		INSERT INTO scenario (id, party_id, title, share_slug, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, "s2", "gop", "Other", "slug1", "{}", now, now)
	if err == nil {
		t.Error("expected duplicate share_slug to fail")
	}

	var title string
	var createdAt time.Time
	err = conn.QueryRow("SELECT title, created_at FROM scenario WHERE id = $1", "s1").Scan(&title, &createdAt)
	if err != nil {
		t.Fatalf("select scenario: %v", err)
	}
	if title != "Test" || !createdAt.Equal(now) {
		t.Errorf("got %q %v, want %q %v", title, createdAt, "Test", now)
	}
}
