// Package rankings extracts the tracked team's poll ranks and betting line.
package rankings

import (
	"fmt"
	"strings"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/team"
)

const (
	// NotRanked is shown when the team is absent from a poll.
	NotRanked = "NR"
	// NoOdds is shown when no line mentions the team.
	NoOdds = "Odds data coming soon."

	missing = "—"
)

// Poll queries matched against poll names.
const (
	PollAP      = "ap"
	PollCoaches = "coach"
)

// Latest returns the most recent snapshot by season and week. The earliest
// entry wins ties. ok is false for an empty list.
func Latest(snaps []domain.RankingSnapshot) (latest domain.RankingSnapshot, ok bool) {
	for i, s := range snaps {
		if i == 0 || s.OrderKey() > latest.OrderKey() {
			latest = s
		}
	}
	return latest, len(snaps) > 0
}

// Rank finds the tracked team's rank in the first poll whose name contains
// query, ignoring case.
func Rank(snap domain.RankingSnapshot, query string, tracker team.Tracker) string {
	query = strings.ToLower(query)
	for _, p := range snap.Polls {
		if !strings.Contains(strings.ToLower(p.Poll.Value), query) {
			continue
		}
		for _, e := range p.Ranks {
			if tracker.Matches(e.Name()) && e.Rank.Valid {
				return e.Rank.Value
			}
		}
		return NotRanked
	}
	return NotRanked
}

// Line renders "AP: <r> • Coaches: <r>" from the latest snapshot.
func Line(snaps []domain.RankingSnapshot, tracker team.Tracker) string {
	snap, _ := Latest(snaps)
	return fmt.Sprintf("AP: %s • Coaches: %s",
		Rank(snap, PollAP, tracker),
		Rank(snap, PollCoaches, tracker))
}

// OddsText formats the first quote of the first line mentioning the tracked
// team on either side.
func OddsText(lines []domain.OddsLine, tracker team.Tracker) string {
	for _, l := range lines {
		if !tracker.Matches(l.Home()) && !tracker.Matches(l.Away()) {
			continue
		}
		if len(l.Lines) == 0 {
			return NoOdds
		}
		q := l.Lines[0]
		return fmt.Sprintf("%s: spread %s, O/U %s",
			orMissing(domain.FirstPresent(q.Provider)),
			orMissing(domain.Coalesce(q.Spread, q.FormattedSpread)),
			orMissing(domain.Coalesce(q.OverUnder, q.Total)))
	}
	return NoOdds
}

func orMissing(t domain.Text) string {
	if !t.Valid {
		return missing
	}
	return t.Value
}
