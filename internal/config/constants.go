package config

import "time"

const (
	defaultDataDir        = "data"
	defaultDataPublicPath = "data"
	defaultPageTemplate   = "index.html"
	defaultOutputPath     = "dist/index.html"
	defaultTrackedTeam    = "Tennessee"
	defaultTimezone       = "America/New_York"
	// Date-only kickoffs are assumed to start at 16:00 UTC.
	defaultKickoffHourUTC = 16

	defaultCountdownInterval = time.Second
	defaultRefreshInterval   = 30 * time.Second
	defaultFlushInterval     = time.Second
	defaultFetchTimeout      = 10 * time.Second
	defaultFetchRetries      = 3

	defaultScheduleFile = "schedule.json"
	defaultMetaFile     = "meta_current.json"
	defaultRankingsFile = "current/rankings.json"
	defaultLinesFile    = "current/lines.json"
	defaultPlacesFile   = "manual/places.json"
	defaultCalendarFile = "current/next.ics"

	defaultMetricsPort = "9090"
	defaultServiceName = "gameday-hub"
)

// defaultGamedays is the set of weekdays the live top-strip refresh runs on.
var defaultGamedays = []time.Weekday{time.Saturday}
