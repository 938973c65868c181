//go:build unit

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"candidate-assistance/internal/usecase/allocation"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return kafka.LeaderNotAvailable
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaSink_Handle(t *testing.T) {
	candidateID := uuid.New()
	resourceID := uuid.New()

	tests := []struct {
		name      string
		ev        allocation.Event
		failures  int
		wantKey   string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "assigned is keyed by candidate",
			ev:        allocation.Event{Type: allocation.EventAssigned, CandidateID: candidateID, ResourceID: resourceID},
			wantKey:   candidateID.String(),
			wantCalls: 1,
		},
		{
			name:      "expired is keyed by resource",
			ev:        allocation.Event{Type: allocation.EventExpired, ResourceID: resourceID},
			wantKey:   resourceID.String(),
			wantCalls: 1,
		},
		{
			name:      "transient failure is retried",
			ev:        allocation.Event{Type: allocation.EventAssigned, CandidateID: candidateID},
			failures:  1,
			wantKey:   candidateID.String(),
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			ev:        allocation.Event{Type: allocation.EventAssigned, CandidateID: candidateID},
			failures:  5,
			wantErr:   true,
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{failures: tt.failures}
			sink := NewKafkaSinkWithWriter(w, 3)
			sink.backoff = time.Millisecond

			err := sink.Handle(context.Background(), tt.ev)

			assert.Equal(t, tt.wantCalls, w.calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, w.written)
				return
			}
			require.NoError(t, err)
			require.Len(t, w.written, 1)
			assert.Equal(t, tt.wantKey, string(w.written[0].Key))

			var decoded allocation.Event
			require.NoError(t, json.Unmarshal(w.written[0].Value, &decoded))
			assert.Equal(t, tt.ev.Type, decoded.Type)
		})
	}
}

func TestNewKafkaSink_Validation(t *testing.T) {
	_, err := NewKafkaSink(KafkaConfig{Topic: "casi.events"})
	require.Error(t, err)

	_, err = NewKafkaSink(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.Error(t, err)

	sink, err := NewKafkaSink(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "casi.events"})
	require.NoError(t, err)
	assert.NoError(t, sink.Close())
}
