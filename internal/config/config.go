package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the renderer.
type Config struct {
	Data    DataConfig
	Page    PageConfig
	Team    TeamConfig
	Timing  TimingConfig
	Fetch   FetchConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// DataConfig names the data directory and the documents read from it.
type DataConfig struct {
	// Dir is a filesystem path or an http(s) base URL.
	Dir string
	// PublicPath prefixes links the rendered page exposes (ICS download).
	PublicPath   string
	ScheduleFile string
	MetaFile     string
	RankingsFile string
	LinesFile    string
	PlacesFile   string
	CalendarFile string
}

// PageConfig points at the HTML template and where the rendered copy goes.
type PageConfig struct {
	Template string
	Output   string
}

// TeamConfig describes the tracked team and how its times are shown.
type TeamConfig struct {
	Name           string
	Timezone       string
	TimezoneLabel  string
	KickoffHourUTC int
}

// TimingConfig controls the recurring tasks.
type TimingConfig struct {
	CountdownInterval time.Duration
	RefreshInterval   time.Duration
	FlushInterval     time.Duration
	Gamedays          []time.Weekday
	Live              bool
}

// FetchConfig controls data fetches.
type FetchConfig struct {
	Timeout time.Duration
	Retries int
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional .env file and the environment.
// A value that fails to parse falls back to its own default; the returned
// error names every key that was ignored.
func Load() (Config, error) {
	_ = godotenv.Load()

	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		cfg, _ := fromRaw(defaultRaw())
		return cfg, err
	}
	return fromRaw(raw)
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	cfg, _ := fromRaw(defaultRaw())
	return cfg
}

func defaultRaw() rawEnv {
	var raw rawEnv
	_ = env.ParseWithOptions(&raw, env.Options{Environment: map[string]string{}})
	return raw
}

func fromRaw(raw rawEnv) (Config, error) {
	var errs fieldErrors

	gamedays, err := ParseWeekdays(raw.Gamedays)
	if err != nil {
		errs.add("GAMEDAY_WEEKDAYS", strings.Join(raw.Gamedays, ","), err)
	}
	if err != nil || len(gamedays) == 0 {
		gamedays = append([]time.Weekday(nil), defaultGamedays...)
	}

	kickoffHour := errs.integer("DATE_ONLY_KICKOFF_HOUR", raw.KickoffHourUTC, defaultKickoffHourUTC)
	if kickoffHour < 0 || kickoffHour > 23 {
		kickoffHour = defaultKickoffHourUTC
	}

	cfg := Config{
		Data: DataConfig{
			Dir:          stringOrDefault(raw.DataDir, defaultDataDir),
			PublicPath:   stringOrDefault(raw.DataPublicPath, defaultDataPublicPath),
			ScheduleFile: stringOrDefault(raw.ScheduleFile, defaultScheduleFile),
			MetaFile:     stringOrDefault(raw.MetaFile, defaultMetaFile),
			RankingsFile: stringOrDefault(raw.RankingsFile, defaultRankingsFile),
			LinesFile:    stringOrDefault(raw.LinesFile, defaultLinesFile),
			PlacesFile:   stringOrDefault(raw.PlacesFile, defaultPlacesFile),
			CalendarFile: stringOrDefault(raw.CalendarFile, defaultCalendarFile),
		},
		Page: PageConfig{
			Template: stringOrDefault(raw.PageTemplate, defaultPageTemplate),
			Output:   stringOrDefault(raw.OutputPath, defaultOutputPath),
		},
		Team: TeamConfig{
			Name:           stringOrDefault(raw.TrackedTeam, defaultTrackedTeam),
			Timezone:       stringOrDefault(raw.Timezone, defaultTimezone),
			TimezoneLabel:  raw.TimezoneLabel,
			KickoffHourUTC: kickoffHour,
		},
		Timing: TimingConfig{
			CountdownInterval: errs.duration("COUNTDOWN_INTERVAL", raw.CountdownInterval, defaultCountdownInterval),
			RefreshInterval:   errs.duration("REFRESH_INTERVAL", raw.RefreshInterval, defaultRefreshInterval),
			FlushInterval:     errs.duration("FLUSH_INTERVAL", raw.FlushInterval, defaultFlushInterval),
			Gamedays:          gamedays,
			Live:              errs.boolean("LIVE", raw.Live, false),
		},
		Fetch: FetchConfig{
			Timeout: errs.duration("FETCH_TIMEOUT", raw.FetchTimeout, defaultFetchTimeout),
			Retries: positiveInt(errs.integer("FETCH_RETRIES", raw.FetchRetries, defaultFetchRetries), defaultFetchRetries),
		},
		Log: LogConfig{
			Level:  raw.LogLevel,
			Format: raw.LogFormat,
		},
		Metrics: metricsFromEnv(raw, &errs),
	}
	return cfg, errs.join()
}

// IsGameday reports whether the live refresh should run on t's weekday.
func (c TimingConfig) IsGameday(t time.Time) bool {
	for _, d := range c.Gamedays {
		if t.Weekday() == d {
			return true
		}
	}
	return false
}
