// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestNewScenarioID(t *testing.T) {
	id1 := NewScenarioID()
	id2 := NewScenarioID()

	if !ValidScenarioID(id1) {
		t.Errorf("NewScenarioID() = %q, not a valid UUID", id1)
	}
	if id1 == id2 {
		t.Error("NewScenarioID() produced duplicate IDs")
	}
}

func TestValidScenarioID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid", "7d444840-9dc0-11d1-b245-5ffdce74fad2", true},
		{"empty", "", false},
		{"slug", "aB3xYz9", false},
		{"truncated", "7d444840-9dc0-11d1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidScenarioID(tt.id); got != tt.want {
				t.Errorf("ValidScenarioID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestGenerateEditKey(t *testing.T) {
	tests := []struct {
		name       string
		scenarioID string
		salt       string
	}{
		{"standard", "scenario123", "secret-salt"},
		{"empty scenario id", "", "salt"},
		{"empty salt", "scenario456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateEditKey(tt.scenarioID, tt.salt)

			if key == "" {
				t.Error("GenerateEditKey() returned empty string")
			}

			if key != GenerateEditKey(tt.scenarioID, tt.salt) {
				t.Error("GenerateEditKey() is not deterministic")
			}

			if tt.scenarioID != "" && tt.salt != "" {
				if key == GenerateEditKey(tt.scenarioID+"x", tt.salt) {
					t.Error("GenerateEditKey() produced same key for different scenario IDs")
				}
			}

			if strings.Contains(key, "=") {
				t.Error("GenerateEditKey() contains padding characters")
			}
		})
	}
}

func TestValidateEditKey(t *testing.T) {
	scenarioID := "test-scenario-123"
	salt := "test-salt"
	validKey := GenerateEditKey(scenarioID, salt)

	tests := []struct {
		name       string
		scenarioID string
		editKey    string
		salt       string
		wantErr    bool
	}{
		{"valid key", scenarioID, validKey, salt, false},
		{"wrong key", scenarioID, "wrong-key", salt, true},
		{"wrong scenario id", "different-scenario", validKey, salt, true},
		{"wrong salt", scenarioID, validKey, "different-salt", true},
		{"empty key", scenarioID, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEditKey(tt.scenarioID, tt.editKey, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEditKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidEditKey {
				t.Errorf("ValidateEditKey() error = %v, want %v", err, ErrInvalidEditKey)
			}
		})
	}
}

func TestGenerateShareSlug(t *testing.T) {
	tests := []struct {
		name       string
		scenarioID string
		salt       string
	}{
		{"standard", "scenario-abc-123", "slug-salt"},
		{"different scenario", "scenario-xyz-456", "slug-salt"},
		{"different salt", "scenario-abc-123", "other-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := GenerateShareSlug(tt.scenarioID, tt.salt)

			if slug == "" {
				t.Error("GenerateShareSlug() returned empty string")
			}
			if slug != GenerateShareSlug(tt.scenarioID, tt.salt) {
				t.Error("GenerateShareSlug() is not deterministic")
			}
			if len(slug) > 15 {
				t.Errorf("GenerateShareSlug() too long: %d chars", len(slug))
			}
			for _, c := range slug {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
					t.Errorf("GenerateShareSlug() contains non-alphanumeric char: %c", c)
				}
			}
			// A slug must never be mistaken for a scenario ID
			if ValidScenarioID(slug) {
				t.Errorf("GenerateShareSlug() = %q parses as a UUID", slug)
			}
		})
	}

	if GenerateShareSlug("s1", "salt") == GenerateShareSlug("s2", "salt") {
		t.Error("GenerateShareSlug() produced same slug for different scenario IDs")
	}
	if GenerateShareSlug("s1", "salt1") == GenerateShareSlug("s1", "salt2") {
		t.Error("GenerateShareSlug() produced same slug for different salts")
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"zero bytes", []byte{0, 0, 0, 0}, "0"},
		{"one", []byte{0, 0, 0, 1}, "1"},
		{"sixty-two", []byte{0, 0, 0, 62}, "10"},
		{"letters", []byte{0, 0, 0, 61}, "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.input); got != tt.want {
				t.Errorf("base62Encode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if base62Encode([]byte{1, 2, 3, 4}) == base62Encode([]byte{5, 6, 7, 8}) {
		t.Error("base62Encode() produced same output for different inputs")
	}
}

func BenchmarkGenerateEditKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateEditKey("test-scenario-123", "test-salt")
	}
}

func BenchmarkGenerateShareSlug(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateShareSlug("test-scenario-123", "slug-salt")
	}
}
