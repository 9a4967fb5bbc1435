// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidEditKey = errors.New("invalid edit key")

// NewScenarioID returns a fresh random scenario identifier
func NewScenarioID() string {
	return uuid.NewString()
}

// ValidScenarioID reports whether id parses as a UUID
func ValidScenarioID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// GenerateEditKey creates an HMAC-based edit key for a scenario.
// Deterministic, so it never has to be stored.
func GenerateEditKey(scenarioID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(scenarioID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateEditKey checks if the provided edit key is valid for the scenario
func ValidateEditKey(scenarioID, editKey, salt string) error {
	expected := GenerateEditKey(scenarioID, salt)
	if !hmac.Equal([]byte(editKey), []byte(expected)) {
		return ErrInvalidEditKey
	}
	return nil
}

// GenerateShareSlug creates a short URL slug for a scenario
func GenerateShareSlug(scenarioID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(scenarioID))
	sum := h.Sum(nil)

	return base62Encode(sum[:8])
}

// base62Encode converts up to 8 bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11)
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
