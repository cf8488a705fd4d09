package testutil

import (
	"gameday-hub/internal/domain"
	"gameday-hub/internal/domain/games"
)

// SampleGame returns a game between home and away. An empty start leaves the
// kickoff unknown.
func SampleGame(home, away, start string) games.Game {
	g := games.Game{
		HomeTeam: domain.NewText(home),
		AwayTeam: domain.NewText(away),
		Venue:    domain.NewText("Neyland Stadium"),
		TV:       domain.NewText("ESPN"),
	}
	if start != "" {
		g.StartTime = domain.NewText(start)
	}
	return g
}

// ScheduleJSON is a small schedule document using mixed field conventions.
const ScheduleJSON = `[
	{"home_team": "Tennessee", "away_team": "Syracuse", "start_time": "2025-08-30T16:00:00Z", "home_points": 45, "away_points": 26, "tv": "ABC"},
	{"homeTeam": "Georgia", "awayTeam": "Tennessee", "start_date": "2025-09-13", "television": "CBS", "venue": "Sanford Stadium"},
	{"home": "Tennessee", "away": "Alabama", "week": 8}
]`

// MetaJSON is a current metadata document.
const MetaJSON = `{"lastUpdated": "2025-09-01T12:00:00Z", "weekNext": 3}`

// RankingsJSON holds two snapshots; week 2 is the latest.
const RankingsJSON = `[
	{"season": 2025, "week": 1, "polls": [{"poll": "AP Top 25", "ranks": [{"school": "Tennessee", "rank": 24}]}]},
	{"season": 2025, "week": 2, "polls": [
		{"poll": "AP Top 25", "ranks": [{"school": "Georgia", "rank": 5}, {"school": "Tennessee", "rank": 15}]},
		{"poll": "Coaches Poll", "ranks": [{"team": "Tennessee", "rank": 14}]}
	]}
]`

// LinesJSON holds odds for one tracked game.
const LinesJSON = `[
	{"home_team": "Alabama", "away_team": "Auburn", "lines": [{"provider": "Bovada", "spread": -7}]},
	{"home_team": "Georgia", "away_team": "Tennessee", "lines": [{"provider": "DraftKings", "formattedSpread": "Georgia -3.5", "total": 55.5}]}
]`

// PlacesJSON lists two places.
const PlacesJSON = `[
	{"name": "Market Square", "tip": "Pre-game food"},
	{"name": "Ayres Hall", "kind": "landmark"}
]`
