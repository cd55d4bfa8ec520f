package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/astronaut-etl/internal/config"
	"github.com/couchcryptid/astronaut-etl/internal/domain"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
)

// messageWriter is the subset of *kafkago.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes run reports to Kafka. Each astronaut profile goes to the
// sink topic and the staged correlation row to the correlation topic.
// It implements pipeline.ReportLoader.
type Writer struct {
	writer           messageWriter
	sinkTopic        string
	correlationTopic string
	logger           *slog.Logger
	metrics          *observability.Metrics
}

// NewWriter creates a Kafka producer for the configured topics.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchSize:    cfg.BatchSize,
	}
	return newWriter(w, cfg.KafkaSinkTopic, cfg.KafkaCorrelationTopic, logger, metrics)
}

func newWriter(w messageWriter, sinkTopic, correlationTopic string, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	return &Writer{
		writer:           w,
		sinkTopic:        sinkTopic,
		correlationTopic: correlationTopic,
		logger:           logger,
		metrics:          metrics,
	}
}

// Load serializes the report and publishes all of its messages in a single
// WriteMessages call.
func (w *Writer) Load(ctx context.Context, report domain.RunReport) error {
	msgs, err := w.messages(report)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	w.metrics.MessagesProduced.Add(float64(len(msgs)))
	w.logger.Debug("report published", "run_id", report.RunID, "messages", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

func (w *Writer) messages(report domain.RunReport) ([]kafkago.Message, error) {
	msgs := make([]kafkago.Message, 0, len(report.Profiles)+1)
	for i := range report.Profiles {
		msg, err := serializeProfile(report, report.Profiles[i])
		if err != nil {
			return nil, err
		}
		msg.Topic = w.sinkTopic
		msgs = append(msgs, msg)
	}

	msg, err := serializeCorrelation(report)
	if err != nil {
		return nil, err
	}
	msg.Topic = w.correlationTopic
	return append(msgs, msg), nil
}

// profileMessage is the sink topic payload.
type profileMessage struct {
	RunID       string    `json:"run_id"`
	ProcessedAt time.Time `json:"processed_at"`
	domain.AstronautProfile
}

// correlationMessage is the correlation topic payload.
type correlationMessage struct {
	RunID       string                     `json:"run_id"`
	ProcessedAt time.Time                  `json:"processed_at"`
	Weather     domain.WeatherObservation  `json:"weather"`
	Record      domain.CorrelationRecord   `json:"record"`
	Analysis    domain.CorrelationAnalysis `json:"analysis"`
}

// serializeProfile marshals one astronaut profile into a Kafka message keyed
// by astronaut name.
func serializeProfile(report domain.RunReport, profile domain.AstronautProfile) (kafkago.Message, error) {
	data, err := json.Marshal(profileMessage{
		RunID:            report.RunID,
		ProcessedAt:      report.GeneratedAt,
		AstronautProfile: profile,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize astronaut profile: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(profile.Astronaut.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "craft", Value: []byte(profile.Astronaut.Craft)},
			{Key: "run_id", Value: []byte(report.RunID)},
			{Key: "processed_at", Value: []byte(report.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

func serializeCorrelation(report domain.RunReport) (kafkago.Message, error) {
	data, err := json.Marshal(correlationMessage{
		RunID:       report.RunID,
		ProcessedAt: report.GeneratedAt,
		Weather:     report.Weather,
		Record:      report.Correlation,
		Analysis:    report.Analysis,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize correlation record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.RunID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(report.RunID)},
			{Key: "processed_at", Value: []byte(report.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
