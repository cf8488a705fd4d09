// Package weekstate decides which message the top strip shows for the
// current week.
package weekstate

import (
	"regexp"
	"strings"
	"time"

	"gameday-hub/internal/schedule"
	"gameday-hub/internal/timeutil"
)

// SoonWindow is how close a kickoff must be for the indicator to turn yellow.
const SoonWindow = 72 * time.Hour

// Kind is one of the mutually exclusive week states.
type Kind int

const (
	NoGame Kind = iota
	SeasonComplete
	ByeWeek
	Upcoming
)

func (k Kind) String() string {
	switch k {
	case SeasonComplete:
		return "season_complete"
	case ByeWeek:
		return "bye_week"
	case Upcoming:
		return "upcoming"
	default:
		return "no_game"
	}
}

// Dot is the traffic-light urgency indicator.
type Dot string

const (
	DotRed    Dot = "red"
	DotYellow Dot = "yellow"
	DotGreen  Dot = "green"
)

// Outcome is the classification for one instant.
type Outcome struct {
	Kind Kind
	// Next is the first game after now; set for ByeWeek and Upcoming.
	Next *schedule.Entry
	// Last is the latest game at or before now, when one exists.
	Last *schedule.Entry
	Dot  Dot
}

// liveStatus is a loose substring match: "Halftime" and "2nd Qtr" count as
// live, and so does any other status mentioning a half or quarter, such as
// "second half postponed". Only "final" outranks it.
var liveStatus = regexp.MustCompile(`(?i)1st|2nd|3rd|4th|half|qtr`)

// Classify picks the week state for now. entries must be sorted by kickoff;
// entries without a kickoff are ignored. Week boundaries are computed in loc.
func Classify(entries []schedule.Entry, now time.Time, loc *time.Location) Outcome {
	var next, last *schedule.Entry
	var dated []schedule.Entry
	for _, e := range entries {
		if e.HasKickoff() {
			dated = append(dated, e)
		}
	}
	for i := range dated {
		e := &dated[i]
		if e.Kickoff.After(now) {
			if next == nil {
				next = e
			}
		} else {
			last = e
		}
	}

	switch {
	case next == nil && last == nil:
		return Outcome{Kind: NoGame, Dot: DotRed}
	case next == nil:
		return Outcome{Kind: SeasonComplete, Last: last, Dot: DotRed}
	}

	weekStart, weekEnd := timeutil.WeekBounds(now, loc)
	inThisWeek := false
	for _, e := range dated {
		if !e.Kickoff.Before(weekStart) && e.Kickoff.Before(weekEnd) {
			inThisWeek = true
			break
		}
	}
	if !inThisWeek {
		return Outcome{Kind: ByeWeek, Next: next, Last: last, Dot: DotYellow}
	}
	return Outcome{
		Kind: Upcoming,
		Next: next,
		Last: last,
		Dot:  DotFor(next.Game.Status.Value, next.Kickoff, now),
	}
}

// DotFor maps game status and time-to-kickoff to an indicator. A final game
// is red, a game in progress green, a kickoff within SoonWindow yellow.
func DotFor(status string, kickoff, now time.Time) Dot {
	s := strings.ToLower(status)
	if strings.Contains(s, "final") {
		return DotRed
	}
	if strings.Contains(s, "in progress") || liveStatus.MatchString(s) {
		return DotGreen
	}
	if !kickoff.IsZero() && kickoff.Sub(now) <= SoonWindow {
		return DotYellow
	}
	return DotRed
}
