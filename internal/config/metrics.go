package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func metricsFromEnv(raw rawEnv, errs *fieldErrors) MetricsConfig {
	return MetricsConfig{
		Enabled:      errs.boolean("METRICS_ENABLED", raw.MetricsEnabled, false),
		Port:         stringOrDefault(raw.MetricsPort, defaultMetricsPort),
		OtlpEndpoint: raw.OtlpEndpoint,
		ServiceName:  stringOrDefault(raw.ServiceName, defaultServiceName),
		OtlpInsecure: errs.boolean("OTEL_EXPORTER_OTLP_INSECURE", raw.OtlpInsecure, true),
	}
}
