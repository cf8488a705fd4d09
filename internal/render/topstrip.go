package render

import (
	"fmt"
	"time"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/domain/games"
	"gameday-hub/internal/page"
	"gameday-hub/internal/rankings"
	"gameday-hub/internal/schedule"
	"gameday-hub/internal/weekstate"
)

// Top strip messages.
const (
	SeasonCompleteMsg  = "Season complete — thanks for riding with us! See you next season."
	SeasonCompleteLine = "Season complete"
	ByeWeekMsg         = "Bye week — no game scheduled this week."
)

// TopStripData is the input of one top strip pass.
type TopStripData struct {
	Meta     domain.Meta
	Games    []games.Game
	Rankings []domain.RankingSnapshot
	Lines    []domain.OddsLine
	// ICS reports the calendar download href and whether the file exists.
	// It is only consulted when there is a next game.
	ICS func() (href string, ok bool)
}

// TopStrip renders the score box, next-game panel, calendar links, rank line
// and odds line for now, and points cd at the next kickoff. It returns the
// week state it rendered.
func TopStrip(out Output, env Env, cd Countdown, data TopStripData, now time.Time) weekstate.Outcome {
	entries := schedule.Sort(data.Games, env.Tracker)
	outcome := weekstate.Classify(entries, now, env.Formatter.Location())

	switch outcome.Kind {
	case weekstate.SeasonComplete:
		scoreBox(out, SeasonCompleteMsg, weekstate.DotRed)
		out.SetText(page.NextLine, SeasonCompleteLine)
		out.SetText(page.NextVenue, "")
		disable(cd)
		HideICS(out)
	case weekstate.ByeWeek:
		scoreBox(out, ByeWeekMsg, weekstate.DotYellow)
		nextPanel(out, env, data.Meta, *outcome.Next)
		retarget(cd, outcome.Next.Kickoff)
	case weekstate.Upcoming:
		next := *outcome.Next
		when := env.Formatter.Format(next.Kickoff, next.Explicit)
		scoreBox(out, fmt.Sprintf("%s @ %s — %s", next.Game.AwayName(), next.Game.HomeName(), when), outcome.Dot)
		nextPanel(out, env, data.Meta, next)
		retarget(cd, next.Kickoff)
	default:
		scoreBox(out, fmt.Sprintf("No %s game found for this season.", env.Tracker.Name()), weekstate.DotRed)
		disable(cd)
	}

	if outcome.Next != nil {
		next := *outcome.Next
		title := fmt.Sprintf("%s vs %s", env.Tracker.Name(), env.Tracker.Opponent(next.Game))
		out.SetAttr(page.AddCalendar, "href", CalendarURL(title, next.Kickoff, next.Game.Venue.Value))
		if data.ICS != nil {
			if href, ok := data.ICS(); ok {
				ShowICS(out, href)
			}
		}
	}

	out.SetText(page.RankLine, rankings.Line(data.Rankings, env.Tracker))
	out.SetText(page.OddsLine, rankings.OddsText(data.Lines, env.Tracker))
	return outcome
}

func scoreBox(out Output, text string, dot weekstate.Dot) {
	out.SetText(page.ScoreMsg, text)
	out.SetAttr(page.ScoreDot, "data-state", string(dot))
}

// NextLine renders "Week 3: Tennessee vs Georgia — Sep 13".
func NextLine(env Env, meta domain.Meta, next schedule.Entry) string {
	week := domain.Coalesce(meta.WeekNext, meta.Week, next.Game.Week)
	wk := schedule.Placeholder
	if week.Valid {
		wk = week.Value
	}
	return fmt.Sprintf("Week %s: %s vs %s — %s",
		wk,
		env.Tracker.Name(),
		env.Tracker.Opponent(next.Game),
		env.Formatter.Format(next.Kickoff, next.Explicit))
}

func nextPanel(out Output, env Env, meta domain.Meta, next schedule.Entry) {
	out.SetText(page.NextLine, NextLine(env, meta, next))
	out.SetText(page.NextVenue, domain.FirstPresent(next.Game.Venue).Value)
}

func retarget(cd Countdown, at time.Time) {
	if cd != nil {
		cd.Retarget(at)
	}
}

func disable(cd Countdown) {
	if cd != nil {
		cd.Disable()
	}
}
