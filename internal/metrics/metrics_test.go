package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("schedule", 10*time.Millisecond, nil)
	rec.RecordFetch("schedule", 15*time.Millisecond, errors.New("boom"))

	if got := rec.FetchCalls("schedule"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.FetchErrors("schedule"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("schedule")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if rec.FetchCalls("rankings") != 0 {
		t.Fatalf("expected no calls for unseen document")
	}
}

func TestRecorderTracksRendersAndCycles(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRender("schedule", time.Millisecond)
	rec.RecordRender("schedule", time.Millisecond)
	rec.RecordPollerCycle("countdown", time.Millisecond, nil)
	rec.RecordCountdownRender("sec", "min")
	rec.RecordCountdownRender("sec")
	rec.RecordCountdownRender()

	if got := rec.Renders("schedule"); got != 2 {
		t.Fatalf("expected 2 renders, got %d", got)
	}
	if got := rec.PollerCycles("countdown"); got != 1 {
		t.Fatalf("expected 1 cycle, got %d", got)
	}
	if got := rec.CountdownRenders("sec"); got != 2 {
		t.Fatalf("expected 2 second redraws, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("schedule", time.Millisecond, nil)
	rec.RecordRender("schedule", time.Millisecond)
	rec.RecordPollerCycle("refresh", time.Millisecond, nil)
	rec.RecordCountdownRender("sec")

	if rec.FetchCalls("schedule") != 0 || rec.Renders("schedule") != 0 || rec.PollerCycles("refresh") != 0 || rec.CountdownRenders("sec") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
