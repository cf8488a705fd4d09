package domain

// Meta is the "current" metadata document.
type Meta struct {
	LastUpdated    Text `json:"lastUpdated"`
	LastUpdatedAlt Text `json:"last_updated"`
	WeekNext       Text `json:"weekNext"`
	Week           Text `json:"week"`
}

// Updated returns the last-updated stamp under either naming convention.
func (m Meta) Updated() Text {
	return FirstPresent(m.LastUpdated, m.LastUpdatedAlt)
}

// RankingSnapshot is one week's set of polls.
type RankingSnapshot struct {
	Season Number `json:"season"`
	Week   Number `json:"week"`
	Polls  []Poll `json:"polls"`
}

// OrderKey sorts snapshots chronologically: season*100 + week.
func (s RankingSnapshot) OrderKey() float64 {
	return s.Season.Value*100 + s.Week.Value
}

// Poll is a named ranking list, e.g. "AP Top 25".
type Poll struct {
	Poll  Text        `json:"poll"`
	Ranks []RankEntry `json:"ranks"`
}

// RankEntry places one school in a poll.
type RankEntry struct {
	School Text `json:"school"`
	Team   Text `json:"team"`
	Rank   Text `json:"rank"`
}

// Name returns the school under either field name.
func (e RankEntry) Name() string {
	return FirstPresent(e.School, e.Team).Value
}

// OddsLine groups provider quotes for one game.
type OddsLine struct {
	HomeTeam    Text    `json:"home_team"`
	HomeTeamAlt Text    `json:"homeTeam"`
	AwayTeam    Text    `json:"away_team"`
	AwayTeamAlt Text    `json:"awayTeam"`
	Lines       []Quote `json:"lines"`
}

// Home returns the home team under either naming convention.
func (l OddsLine) Home() string {
	return FirstPresent(l.HomeTeam, l.HomeTeamAlt).Value
}

// Away returns the away team under either naming convention.
func (l OddsLine) Away() string {
	return FirstPresent(l.AwayTeam, l.AwayTeamAlt).Value
}

// Quote is a single provider's spread and total.
type Quote struct {
	Provider        Text `json:"provider"`
	Spread          Text `json:"spread"`
	FormattedSpread Text `json:"formattedSpread"`
	OverUnder       Text `json:"overUnder"`
	Total           Text `json:"total"`
}

// Place is a point of interest near the venue.
type Place struct {
	Name Text `json:"name"`
	Tip  Text `json:"tip"`
	Kind Text `json:"kind"`
}

// Note returns the tip, falling back to the kind of place.
func (p Place) Note() string {
	return FirstPresent(p.Tip, p.Kind).Value
}
