// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/delegate-tracker/models"
	"github.com/danielhkuo/delegate-tracker/testutil"
)

func TestListParties(t *testing.T) {
	handler := NewPartyHandler(newTestSessions(t))

	w := httptest.NewRecorder()
	handler.ListParties(w, testutil.MakeRequest("GET", "/parties", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var parties []models.Party
	testutil.AssertJSON(t, w, &parties)
	if len(parties) != 1 || parties[0].ID != testutil.TestPartyID || parties[0].TotalDelegates != 237 {
		t.Errorf("Unexpected parties: %+v", parties)
	}
}

func TestGetSummary(t *testing.T) {
	tests := []struct {
		name         string
		edits        [][3]float64 // candidate, state, percent
		wantLeader   string
		wantWinner   string
		wantHeadline string
	}{
		{
			name:         "nothing allocated",
			wantHeadline: "No delegates allocated yet; 119 needed to win",
		},
		{
			name:         "leader short of majority",
			edits:        [][3]float64{{1, 0, 30}},
			wantLeader:   "Bob",
			wantHeadline: "Bob leads with 12 delegates, 107 short of the 119 needed",
		},
		{
			name:         "winner",
			edits:        [][3]float64{{0, 0, 60}, {0, 14, 50}},
			wantLeader:   "Alice",
			wantWinner:   "Alice",
			wantHeadline: "Alice clinches the nomination with 149 of 237 delegates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newTestSessions(t)
			for _, e := range tt.edits {
				setPercent(t, sessions, int(e[0]), int(e[1]), e[2])
			}

			handler := NewPartyHandler(sessions)
			req := withPath(testutil.MakeRequest("GET", "/parties/gop/summary", nil, nil), "party", "gop")
			w := httptest.NewRecorder()
			handler.GetSummary(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var summary models.SummaryResponse
			testutil.AssertJSON(t, w, &summary)

			if summary.DelegatesToWin != 119 || summary.TotalDelegates != 237 {
				t.Errorf("Expected 119 of 237, got %d of %d", summary.DelegatesToWin, summary.TotalDelegates)
			}
			if got := nameOf(summary.Leader); got != tt.wantLeader {
				t.Errorf("Expected leader %q, got %q", tt.wantLeader, got)
			}
			if got := nameOf(summary.Winner); got != tt.wantWinner {
				t.Errorf("Expected winner %q, got %q", tt.wantWinner, got)
			}
			if summary.Headline != tt.wantHeadline {
				t.Errorf("Expected headline %q, got %q", tt.wantHeadline, summary.Headline)
			}
		})
	}
}

func TestGetSummaryUnknownParty(t *testing.T) {
	handler := NewPartyHandler(newTestSessions(t))

	req := withPath(testutil.MakeRequest("GET", "/parties/whigs/summary", nil, nil), "party", "whigs")
	w := httptest.NewRecorder()
	handler.GetSummary(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func nameOf(c *models.CandidateSlot) string {
	if c == nil {
		return ""
	}
	return c.Name
}
