// Package team resolves schedule entries from the tracked team's point of view.
package team

import (
	"fmt"
	"strings"
	"time"

	"gameday-hub/internal/domain/games"
)

// Location tags a game relative to the tracked team.
type Location string

const (
	LocationHome    Location = "Home"
	LocationAway    Location = "Away"
	LocationNeutral Location = "Neutral"
)

// Tracker is the tracked team's perspective over schedule entries.
type Tracker struct {
	name           string
	needle         string
	kickoffHourUTC int
}

// NewTracker builds a Tracker for name. Date-only kickoffs are placed at
// kickoffHourUTC.
func NewTracker(name string, kickoffHourUTC int) Tracker {
	return Tracker{
		name:           name,
		needle:         strings.ToLower(strings.TrimSpace(name)),
		kickoffHourUTC: kickoffHourUTC,
	}
}

// Name returns the tracked team's display name.
func (t Tracker) Name() string {
	return t.name
}

// Matches reports whether s mentions the tracked team, ignoring case.
func (t Tracker) Matches(s string) bool {
	if t.needle == "" || s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), t.needle)
}

// Kickoff resolves g's kickoff with the tracker's date-only hour.
func (t Tracker) Kickoff(g games.Game) (time.Time, bool) {
	return g.Kickoff(t.kickoffHourUTC)
}

// IsAway reports whether the tracked team is the away side of g.
func (t Tracker) IsAway(g games.Game) bool {
	return t.Matches(g.AwayName())
}

// Opponent names the other side of g. It is empty when neither side is the
// tracked team.
func (t Tracker) Opponent(g games.Game) string {
	switch {
	case t.Matches(g.HomeName()):
		return g.AwayName()
	case t.Matches(g.AwayName()):
		return g.HomeName()
	default:
		return ""
	}
}

// Location classifies g as a home, away or neutral-site game.
func (t Tracker) Location(g games.Game) Location {
	if t.Matches(g.HomeName()) {
		return LocationHome
	}
	if g.NeutralSite {
		return LocationNeutral
	}
	return LocationAway
}

// Result renders a final score as "W 31–17" with the tracked team's points
// first. It is empty unless both totals are known.
func (t Tracker) Result(g games.Game) string {
	home, away := g.Points()
	if !home.Valid || !away.Valid {
		return ""
	}
	ours, theirs := home, away
	if t.IsAway(g) {
		ours, theirs = away, home
	}

	tag := "T"
	switch {
	case ours.Value > theirs.Value:
		tag = "W"
	case ours.Value < theirs.Value:
		tag = "L"
	}
	return fmt.Sprintf("%s %s–%s", tag, ours, theirs)
}
