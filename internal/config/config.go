package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaEnabled          bool
	KafkaBrokers          []string
	KafkaSinkTopic        string
	KafkaCorrelationTopic string
	BatchSize             int
	HTTPAddr              string
	HTTPRateLimit         int
	LogLevel              string
	LogFormat             string
	ShutdownTimeout       time.Duration

	// Run scheduling and simulation.
	RunInterval       time.Duration
	MissionDays       int
	SimulationSeed    uint64
	WorkerConcurrency int

	// Acquisition sources.
	OpenNotifyURL     string
	OpenMeteoURL      string
	WeatherLatitude   float64
	WeatherLongitude  float64
	HTTPClientTimeout time.Duration
	WeatherCacheTTL   time.Duration
	WeatherCacheSize  int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	runInterval, err := parsePositiveDuration("RUN_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}
	clientTimeout, err := parsePositiveDuration("HTTP_CLIENT_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parsePositiveDuration("WEATHER_CACHE_TTL", "15m")
	if err != nil {
		return nil, err
	}

	missionDays, err := parsePositiveInt("MISSION_DAYS", 180)
	if err != nil {
		return nil, err
	}
	concurrency, err := parsePositiveInt("WORKER_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	cacheSize, err := parsePositiveInt("WEATHER_CACHE_SIZE", 16)
	if err != nil {
		return nil, err
	}
	rateLimit, err := strconv.Atoi(sharedcfg.EnvOrDefault("HTTP_RATE_LIMIT", "10"))
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid HTTP_RATE_LIMIT")
	}

	seed, err := strconv.ParseUint(sharedcfg.EnvOrDefault("SIMULATION_SEED", "0"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid SIMULATION_SEED")
	}

	lat, err := parseCoordinate("WEATHER_LATITUDE", 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate("WEATHER_LONGITUDE", 180)
	if err != nil {
		return nil, err
	}

	kafkaEnabled := true
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		KafkaEnabled:          kafkaEnabled,
		KafkaBrokers:          sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:        sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "astronaut-profiles"),
		KafkaCorrelationTopic: sharedcfg.EnvOrDefault("KAFKA_CORRELATION_TOPIC", "astronaut-weather-correlation"),
		BatchSize:             batchSize,
		HTTPAddr:              sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		HTTPRateLimit:         rateLimit,
		LogLevel:              sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:             sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:       shutdownTimeout,

		RunInterval:       runInterval,
		MissionDays:       missionDays,
		SimulationSeed:    seed,
		WorkerConcurrency: concurrency,

		OpenNotifyURL:     sharedcfg.EnvOrDefault("OPEN_NOTIFY_URL", "http://api.open-notify.org"),
		OpenMeteoURL:      sharedcfg.EnvOrDefault("OPEN_METEO_URL", "https://api.open-meteo.com"),
		WeatherLatitude:   lat,
		WeatherLongitude:  lon,
		HTTPClientTimeout: clientTimeout,
		WeatherCacheTTL:   cacheTTL,
		WeatherCacheSize:  cacheSize,
	}

	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
		if cfg.KafkaCorrelationTopic == "" {
			return nil, errors.New("KAFKA_CORRELATION_TOPIC is required")
		}
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseCoordinate(key string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, "0"), 64)
	if err != nil || v < -limit || v > limit {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
