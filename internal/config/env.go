package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// rawEnv holds the environment values before defaults and validation are
// applied. Typed settings stay strings here so one bad value falls back on its
// own instead of failing the whole decode.
type rawEnv struct {
	DataDir        string `env:"DATA_DIR"         envDefault:"data"`
	DataPublicPath string `env:"DATA_PUBLIC_PATH" envDefault:"data"`
	PageTemplate   string `env:"PAGE_TEMPLATE"    envDefault:"index.html"`
	OutputPath     string `env:"OUTPUT_PATH"      envDefault:"dist/index.html"`

	TrackedTeam    string `env:"TRACKED_TEAM"           envDefault:"Tennessee"`
	Timezone       string `env:"DISPLAY_TIMEZONE"       envDefault:"America/New_York"`
	TimezoneLabel  string `env:"DISPLAY_TZ_LABEL"`
	KickoffHourUTC string `env:"DATE_ONLY_KICKOFF_HOUR" envDefault:"16"`

	CountdownInterval string   `env:"COUNTDOWN_INTERVAL" envDefault:"1s"`
	RefreshInterval   string   `env:"REFRESH_INTERVAL"   envDefault:"30s"`
	FlushInterval     string   `env:"FLUSH_INTERVAL"     envDefault:"1s"`
	Gamedays          []string `env:"GAMEDAY_WEEKDAYS"   envDefault:"Sat" envSeparator:","`
	Live              string   `env:"LIVE"               envDefault:"false"`

	FetchTimeout string `env:"FETCH_TIMEOUT" envDefault:"10s"`
	FetchRetries string `env:"FETCH_RETRIES" envDefault:"3"`

	ScheduleFile string `env:"SCHEDULE_FILE" envDefault:"schedule.json"`
	MetaFile     string `env:"META_FILE"     envDefault:"meta_current.json"`
	RankingsFile string `env:"RANKINGS_FILE" envDefault:"current/rankings.json"`
	LinesFile    string `env:"LINES_FILE"    envDefault:"current/lines.json"`
	PlacesFile   string `env:"PLACES_FILE"   envDefault:"manual/places.json"`
	CalendarFile string `env:"CALENDAR_FILE" envDefault:"current/next.ics"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	MetricsEnabled string `env:"METRICS_ENABLED"             envDefault:"false"`
	MetricsPort    string `env:"METRICS_PORT"                envDefault:"9090"`
	OtlpEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `env:"OTEL_SERVICE_NAME"           envDefault:"gameday-hub"`
	OtlpInsecure   string `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

// fieldErrors collects per-key parse failures. Each failing key keeps its
// default; the rest of the configuration is unaffected.
type fieldErrors []error

func (f *fieldErrors) add(key, raw string, err error) {
	*f = append(*f, fmt.Errorf("%s=%q: %w", key, raw, err))
}

func (f fieldErrors) join() error {
	return errors.Join(f...)
}

func (f *fieldErrors) duration(key, raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		f.add(key, raw, err)
		return fallback
	}
	return positiveDuration(parsed, fallback)
}

func (f *fieldErrors) integer(key, raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		f.add(key, raw, err)
		return fallback
	}
	return val
}

func (f *fieldErrors) boolean(key, raw string, fallback bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	f.add(key, raw, errors.New("not a boolean"))
	return fallback
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekdays turns names like "Sat", "saturday" or "any" into weekdays.
// Duplicates are collapsed and order follows the input.
func ParseWeekdays(values []string) ([]time.Weekday, error) {
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	add := func(d time.Weekday) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	for _, v := range trimCSV(values) {
		key := strings.ToLower(v)
		if key == "any" || key == "all" || key == "*" {
			for d := time.Sunday; d <= time.Saturday; d++ {
				add(d)
			}
			continue
		}
		if len(key) > 3 {
			key = key[:3]
		}
		d, ok := weekdayNames[key]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", v)
		}
		add(d)
	}
	return days, nil
}

func positiveDuration(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}

func positiveInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func stringOrDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// trimCSV removes empty entries from a string slice.
func trimCSV(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
