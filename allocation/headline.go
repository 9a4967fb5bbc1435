// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/delegate-tracker/models"
)

// Headline renders a one-line description of the race.
func Headline(s models.SummaryResponse) string {
	switch {
	case s.Winner != nil:
		return fmt.Sprintf("%s clinches the nomination with %s of %s delegates",
			displayName(*s.Winner), humanize.Comma(int64(s.Winner.Delegates)), humanize.Comma(int64(s.TotalDelegates)))
	case s.Leader != nil:
		return fmt.Sprintf("%s leads with %s delegates, %s short of the %s needed",
			displayName(*s.Leader), humanize.Comma(int64(s.Leader.Delegates)),
			humanize.Comma(int64(s.DelegatesToWin-s.Leader.Delegates)), humanize.Comma(int64(s.DelegatesToWin)))
	default:
		return fmt.Sprintf("No delegates allocated yet; %s needed to win", humanize.Comma(int64(s.DelegatesToWin)))
	}
}

func displayName(c models.CandidateSlot) string {
	if c.Name == "" {
		return fmt.Sprintf("Candidate %d", c.ID+1)
	}
	return c.Name
}
