package rankings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/team"
	"gameday-hub/internal/testutil"
)

var vols = team.NewTracker("Tennessee", 16)

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestLatestPicksHighestSeasonWeek(t *testing.T) {
	snaps := decode[[]domain.RankingSnapshot](t, `[
		{"season": 2025, "week": 3, "polls": [{"poll": "first"}]},
		{"season": 2024, "week": 15},
		{"season": 2025, "week": 3, "polls": [{"poll": "second"}]},
		{"season": 2025, "week": 2}
	]`)

	latest, ok := Latest(snaps)
	require.True(t, ok)
	require.Len(t, latest.Polls, 1)
	assert.Equal(t, "first", latest.Polls[0].Poll.Value)
}

func TestLatestEmpty(t *testing.T) {
	_, ok := Latest(nil)
	assert.False(t, ok)
}

func TestLineFromFixture(t *testing.T) {
	snaps := decode[[]domain.RankingSnapshot](t, testutil.RankingsJSON)
	assert.Equal(t, "AP: 15 • Coaches: 14", Line(snaps, vols))
}

func TestLineEmptyIsNotRanked(t *testing.T) {
	assert.Equal(t, "AP: NR • Coaches: NR", Line(nil, vols))

	snap := domain.RankingSnapshot{}
	for _, q := range []string{PollAP, PollCoaches, "playoff", ""} {
		assert.Equal(t, NotRanked, Rank(snap, q, vols), q)
	}
}

func TestRankUnlistedTeam(t *testing.T) {
	snaps := decode[[]domain.RankingSnapshot](t, testutil.RankingsJSON)
	latest, _ := Latest(snaps)
	assert.Equal(t, NotRanked, Rank(latest, PollAP, team.NewTracker("Vanderbilt", 16)))
	assert.Equal(t, "5", Rank(latest, "AP", team.NewTracker("georgia", 16)))
}

func TestOddsText(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{"fixture", testutil.LinesJSON, "DraftKings: spread Georgia -3.5, O/U 55.5"},
		{"empty", `[]`, NoOdds},
		{"no match", `[{"home_team": "Alabama", "away_team": "Auburn", "lines": [{"provider": "X"}]}]`, NoOdds},
		{"no quotes", `[{"homeTeam": "Tennessee", "awayTeam": "Kentucky", "lines": []}]`, NoOdds},
		{"raw spread", `[{"homeTeam": "Tennessee", "awayTeam": "Kentucky", "lines": [{"provider": "Bovada", "spread": -10.5, "overUnder": 48}]}]`, "Bovada: spread -10.5, O/U 48"},
		{"raw spread wins", `[{"home_team": "Tennessee", "lines": [{"provider": "ESPN Bet", "spread": "-6.5", "formattedSpread": "Tennessee -6.5", "total": 51}]}]`, "ESPN Bet: spread -6.5, O/U 51"},
		{"missing parts", `[{"away_team": "Tennessee", "lines": [{}]}]`, "—: spread —, O/U —"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := decode[[]domain.OddsLine](t, tt.lines)
			assert.Equal(t, tt.want, OddsText(lines, vols))
		})
	}
}
