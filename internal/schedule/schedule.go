// Package schedule orders a season's games and shapes them into table rows.
package schedule

import (
	"sort"
	"time"

	"gameday-hub/internal/domain/games"
	"gameday-hub/internal/team"
	"gameday-hub/internal/timeutil"
)

// VisibleRows is how many rows stay visible while the table is collapsed.
const VisibleRows = 3

// Placeholder fills cells with no data.
const Placeholder = "—"

// Entry is a game with its resolved kickoff.
type Entry struct {
	Game     games.Game
	Kickoff  time.Time
	Explicit bool
}

// HasKickoff reports whether a kickoff could be derived.
func (e Entry) HasKickoff() bool {
	return !e.Kickoff.IsZero()
}

// Sort orders games by kickoff, earliest first. Games without a kickoff keep
// their relative order after all dated games.
func Sort(list []games.Game, tracker team.Tracker) []Entry {
	entries := make([]Entry, 0, len(list))
	for _, g := range list {
		kickoff, explicit := tracker.Kickoff(g)
		entries = append(entries, Entry{Game: g, Kickoff: kickoff, Explicit: explicit})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.HasKickoff() || !b.HasKickoff() {
			return a.HasKickoff() && !b.HasKickoff()
		}
		return a.Kickoff.Before(b.Kickoff)
	})
	return entries
}

// Row is one rendered schedule line.
type Row struct {
	When     string
	Opponent string
	Location team.Location
	TV       string
	Result   string
	// Extra rows are hidden while the table is collapsed.
	Extra bool
}

// Rows formats sorted entries for display.
func Rows(entries []Entry, tracker team.Tracker, f timeutil.Formatter) []Row {
	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		opponent := tracker.Opponent(e.Game)
		if opponent == "" {
			opponent = Placeholder
		}
		tv := Placeholder
		if b := e.Game.Broadcaster(); b.Valid {
			tv = b.Value
		}
		rows = append(rows, Row{
			When:     f.Format(e.Kickoff, e.Explicit),
			Opponent: opponent,
			Location: tracker.Location(e.Game),
			TV:       tv,
			Result:   tracker.Result(e.Game),
			Extra:    i >= VisibleRows,
		})
	}
	return rows
}
