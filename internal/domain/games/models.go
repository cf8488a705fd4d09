package games

import (
	"time"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/timeutil"
)

// DefaultKickoffHourUTC is the hour assumed for games that only carry a date.
const DefaultKickoffHourUTC = 16

// Game is a schedule entry as found in the data feed. Feeds disagree on field
// names, so each concept keeps every alias seen in the wild; the accessor
// methods resolve them.
type Game struct {
	ID        domain.Text `json:"id"`
	StartTime domain.Text `json:"start_time"`
	StartDate domain.Text `json:"start_date"`

	HomeTeam    domain.Text `json:"home_team"`
	HomeTeamAlt domain.Text `json:"homeTeam"`
	Home        domain.Text `json:"home"`
	AwayTeam    domain.Text `json:"away_team"`
	AwayTeamAlt domain.Text `json:"awayTeam"`
	Away        domain.Text `json:"away"`

	HomePoints    domain.Number `json:"home_points"`
	HomePointsAlt domain.Number `json:"homePoints"`
	AwayPoints    domain.Number `json:"away_points"`
	AwayPointsAlt domain.Number `json:"awayPoints"`

	NeutralSite domain.Flag `json:"neutral_site"`
	Venue       domain.Text `json:"venue"`
	TV          domain.Text `json:"tv"`
	Television  domain.Text `json:"television"`
	Status      domain.Text `json:"status"`
	Week        domain.Text `json:"week"`
}

// Kickoff resolves when the game starts. An explicit start time wins; a
// date-only value is placed at hourUTC. explicit reports whether the time of
// day is known. The zero time means no kickoff could be derived.
func (g Game) Kickoff(hourUTC int) (kickoff time.Time, explicit bool) {
	if g.StartTime.Present() {
		if t, ok := timeutil.ParseInstant(g.StartTime.Value); ok {
			return t, true
		}
	}
	if g.StartDate.Present() {
		if d, err := timeutil.ParseDate(g.StartDate.Value); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), hourUTC, 0, 0, 0, time.UTC), false
		}
	}
	return time.Time{}, false
}

// HomeName returns the home team under any of its aliases.
func (g Game) HomeName() string {
	return domain.FirstPresent(g.HomeTeam, g.HomeTeamAlt, g.Home).Value
}

// AwayName returns the away team under any of its aliases.
func (g Game) AwayName() string {
	return domain.FirstPresent(g.AwayTeam, g.AwayTeamAlt, g.Away).Value
}

// Points returns the home and away totals when reported.
func (g Game) Points() (home, away domain.Number) {
	home = g.HomePoints
	if !home.Valid {
		home = g.HomePointsAlt
	}
	away = g.AwayPoints
	if !away.Valid {
		away = g.AwayPointsAlt
	}
	return home, away
}

// Broadcaster returns the TV network, if any field names one.
func (g Game) Broadcaster() domain.Text {
	return domain.Coalesce(g.TV, g.Television)
}
