// Package render writes derived schedule, ranking and venue data into page
// slots. Renderers take their inputs and an Output and touch nothing else.
package render

import (
	"time"

	"gameday-hub/internal/countdown"
	"gameday-hub/internal/page"
	"gameday-hub/internal/team"
	"gameday-hub/internal/timeutil"
)

// Output is the set of slot writes a renderer may perform.
type Output interface {
	Has(slot page.Slot) bool
	SetText(slot page.Slot, text string)
	SetHTML(slot page.Slot, markup string)
	SetAttr(slot page.Slot, name, value string)
	SetHidden(slot page.Slot, hidden bool)
	SetClass(slot page.Slot, class string, on bool)
	WrapTogether(scope page.Slot, class string, first, second page.Slot)
}

var _ Output = (*page.Binding)(nil)

// Env is the tracked-team context shared by every renderer.
type Env struct {
	Tracker   team.Tracker
	Formatter timeutil.Formatter
}

// Countdown is the part of the countdown timer the top strip drives.
type Countdown interface {
	Retarget(target time.Time)
	Disable()
}

// CountdownDisplay adapts out to the countdown's unit fields.
func CountdownDisplay(out Output) countdown.Display {
	return unitDisplay{out: out}
}

type unitDisplay struct {
	out Output
}

var unitSlots = map[countdown.Unit]page.Slot{
	countdown.Days:    page.CDDays,
	countdown.Hours:   page.CDHours,
	countdown.Minutes: page.CDMinutes,
	countdown.Seconds: page.CDSeconds,
}

func (d unitDisplay) SetUnit(u countdown.Unit, text string) {
	if slot, ok := unitSlots[u]; ok {
		d.out.SetText(slot, text)
	}
}

const (
	iconDown = `<i class="fa-solid fa-angles-down"></i> `
	iconUp   = `<i class="fa-solid fa-angles-up"></i> `
)

// expanderLabel is the button markup for a see-more/see-less control.
func expanderLabel(open bool) string {
	if open {
		return iconUp + "See less"
	}
	return iconDown + "See more"
}
