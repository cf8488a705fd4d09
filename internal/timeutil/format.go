package timeutil

import (
	"time"
)

// Placeholder is shown wherever an instant is unknown.
const Placeholder = "TBA"

const (
	layoutDate     = "Jan 2"
	layoutDateTime = "Jan 2, 3:04 PM"
)

// Formatter renders instants in a fixed display zone.
type Formatter struct {
	loc   *time.Location
	label string
}

// NewFormatter builds a Formatter for loc. An empty label is derived from the
// zone abbreviation, so EST and EDT both print as ET.
func NewFormatter(loc *time.Location, label string) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{loc: loc, label: label}
}

// Location returns the display zone.
func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

// Format renders t as "Sep 6, 7:30 PM ET" or, without time, "Sep 6".
// The zero time renders as Placeholder.
func (f Formatter) Format(t time.Time, withTime bool) string {
	if t.IsZero() {
		return Placeholder
	}
	local := t.In(f.Location())
	if !withTime {
		return local.Format(layoutDate)
	}
	return local.Format(layoutDateTime) + " " + f.zoneLabel(local)
}

func (f Formatter) zoneLabel(local time.Time) string {
	if f.label != "" {
		return f.label
	}
	abbrev, _ := local.Zone()
	return ZoneLabel(abbrev)
}

// ZoneLabel collapses standard/daylight abbreviations such as EST/EDT or
// PST/PDT into ET or PT. Other abbreviations are returned unchanged.
func ZoneLabel(abbrev string) string {
	if len(abbrev) == 3 && (abbrev[1] == 'S' || abbrev[1] == 'D') && abbrev[2] == 'T' {
		return abbrev[:1] + "T"
	}
	return abbrev
}
