package timeutil

import (
	"testing"
	"time"
)

func TestFormatZeroIsPlaceholder(t *testing.T) {
	f := NewFormatter(ResolveLocation("America/New_York"), "")
	if got := f.Format(time.Time{}, true); got != Placeholder {
		t.Fatalf("expected placeholder, got %s", got)
	}
	if got := f.Format(time.Time{}, false); got != Placeholder {
		t.Fatalf("expected placeholder, got %s", got)
	}
}

func TestFormatCollapsesDaylightAndStandard(t *testing.T) {
	f := NewFormatter(ResolveLocation("America/New_York"), "")

	summer := time.Date(2025, 9, 6, 23, 30, 0, 0, time.UTC)
	if got := f.Format(summer, true); got != "Sep 6, 7:30 PM ET" {
		t.Fatalf("unexpected summer format %q", got)
	}

	winter := time.Date(2025, 12, 6, 17, 0, 0, 0, time.UTC)
	if got := f.Format(winter, true); got != "Dec 6, 12:00 PM ET" {
		t.Fatalf("unexpected winter format %q", got)
	}
}

func TestFormatDateOnly(t *testing.T) {
	f := NewFormatter(ResolveLocation("America/New_York"), "")
	kick := time.Date(2025, 9, 6, 16, 0, 0, 0, time.UTC)
	if got := f.Format(kick, false); got != "Sep 6" {
		t.Fatalf("unexpected date-only format %q", got)
	}
}

func TestFormatExplicitLabel(t *testing.T) {
	f := NewFormatter(time.UTC, "GMT")
	kick := time.Date(2025, 9, 6, 16, 5, 0, 0, time.UTC)
	if got := f.Format(kick, true); got != "Sep 6, 4:05 PM GMT" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestZoneLabel(t *testing.T) {
	cases := map[string]string{
		"EST": "ET",
		"EDT": "ET",
		"PDT": "PT",
		"CST": "CT",
		"UTC": "UTC",
		"+03": "+03",
		"":    "",
	}
	for in, want := range cases {
		if got := ZoneLabel(in); got != want {
			t.Fatalf("expected %q for %q, got %q", want, in, got)
		}
	}
}

func TestNilLocationDefaultsToUTC(t *testing.T) {
	f := NewFormatter(nil, "")
	if f.Location() != time.UTC {
		t.Fatalf("expected UTC")
	}
	if got := (Formatter{}).Format(time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC), true); got != "Jan 2, 3:04 AM UTC" {
		t.Fatalf("unexpected zero-value formatter output %q", got)
	}
}
