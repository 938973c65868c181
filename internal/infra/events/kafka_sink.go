package events

import (
	"context"
	"encoding/json"
	"time"

	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the sink uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	MaxAttempts  int
	WriteTimeout time.Duration
}

// KafkaSink writes events as JSON keyed by candidate id, so one candidate's events land
// on one partition in order. Expiry events have no candidate and are keyed by resource.
type KafkaSink struct {
	writer      MessageWriter
	maxAttempts int
	backoff     time.Duration
}

func NewKafkaSink(cfg KafkaConfig) (*KafkaSink, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("kafka: at least one broker required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka: topic required")
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireAll,
	}
	return NewKafkaSinkWithWriter(w, cfg.MaxAttempts), nil
}

func NewKafkaSinkWithWriter(w MessageWriter, maxAttempts int) *KafkaSink {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &KafkaSink{
		writer:      w,
		maxAttempts: maxAttempts,
		backoff:     100 * time.Millisecond,
	}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Handle(ctx context.Context, ev allocation.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	msg := kafka.Message{
		Key:   []byte(messageKey(ev)),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	}

	var lastErr error
	backoff := s.backoff
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if lastErr = s.writer.WriteMessages(ctx, msg); lastErr == nil {
			return nil
		}
		if attempt == s.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), "kafka write cancelled")
		case <-time.After(backoff):
		}
		if backoff < 2*time.Second {
			backoff *= 2
		}
	}
	return errs.Wrapf(lastErr, "kafka write failed after %d attempts", s.maxAttempts)
}

func (s *KafkaSink) Close() error {
	if s == nil || s.writer == nil {
		return nil
	}
	return s.writer.Close()
}

func messageKey(ev allocation.Event) string {
	if ev.Type == allocation.EventExpired {
		return ev.ResourceID.String()
	}
	return ev.CandidateID.String()
}
