package main

import (
	"log/slog"

	kafkaadapter "github.com/couchcryptid/astronaut-etl/internal/adapter/kafka"
	"github.com/couchcryptid/astronaut-etl/internal/adapter/openmeteo"
	"github.com/couchcryptid/astronaut-etl/internal/adapter/opennotify"
	"github.com/couchcryptid/astronaut-etl/internal/config"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
	"github.com/couchcryptid/astronaut-etl/internal/pipeline"
)

// app holds the wired components shared by the serve and run commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *observability.Metrics
	writer   *kafkaadapter.Writer // nil when Kafka is disabled
	pipeline *pipeline.Pipeline
}

// newApp wires the pipeline. local sinks (terminal output) load after the
// Kafka publisher.
func newApp(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, local ...pipeline.ReportLoader) *app {
	a := &app{cfg: cfg, logger: logger, metrics: metrics}

	var publisher pipeline.ReportLoader
	if cfg.KafkaEnabled {
		a.writer = kafkaadapter.NewWriter(cfg, logger, metrics)
		publisher = a.writer
		logger.Info("kafka sink enabled",
			"brokers", cfg.KafkaBrokers,
			"sink_topic", cfg.KafkaSinkTopic,
			"correlation_topic", cfg.KafkaCorrelationTopic,
		)
	} else {
		logger.Info("kafka sink disabled")
	}

	astronauts := opennotify.NewClient(cfg.OpenNotifyURL, cfg.HTTPClientTimeout, logger)
	weather := openmeteo.NewCachedSource(
		openmeteo.NewClient(cfg.OpenMeteoURL, cfg.WeatherLatitude, cfg.WeatherLongitude, cfg.HTTPClientTimeout, logger),
		cfg.WeatherCacheSize, cfg.WeatherCacheTTL, nil, metrics,
	)
	transformer := pipeline.NewTransformer(cfg.MissionDays, cfg.WorkerConcurrency, logger, metrics)

	a.pipeline = pipeline.New(astronauts, weather, transformer, orderSinks(publisher, local...), logger, metrics, cfg.RunInterval, cfg.SimulationSeed)
	return a
}

// orderSinks puts the publisher ahead of the local sinks, so a failed
// publish stops the run before anything is printed. A nil publisher is
// skipped.
func orderSinks(publisher pipeline.ReportLoader, local ...pipeline.ReportLoader) []pipeline.ReportLoader {
	sinks := make([]pipeline.ReportLoader, 0, len(local)+1)
	if publisher != nil {
		sinks = append(sinks, publisher)
	}
	return append(sinks, local...)
}

// close releases the Kafka producer, if any.
func (a *app) close() {
	if a.writer == nil {
		return
	}
	if err := a.writer.Close(); err != nil {
		a.logger.Error("kafka writer close error", "error", err)
	}
}
