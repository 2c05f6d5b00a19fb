package kafkaclient

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type mockWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *mockWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		err     error
		wantErr bool
	}{
		{name: "json payload", value: map[string]any{"userId": "42", "lat": 1.5}},
		{name: "writer failure", value: map[string]any{}, err: errors.New("leader not available"), wantErr: true},
		{name: "unmarshalable value", value: make(chan int), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &mockWriter{err: tt.err}
			p := &Publisher{writer: w}

			err := p.Publish(context.Background(), "42", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Publish() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(w.msgs) != 1 {
				t.Fatalf("expected 1 message, got %d", len(w.msgs))
			}
			if string(w.msgs[0].Key) != "42" {
				t.Errorf("key = %q, want 42", w.msgs[0].Key)
			}
			var decoded map[string]any
			if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
				t.Fatalf("value is not JSON: %v", err)
			}
			if decoded["userId"] != "42" {
				t.Errorf("decoded = %v", decoded)
			}
		})
	}
}

func TestPublisher_Close(t *testing.T) {
	w := &mockWriter{}
	if err := (&Publisher{writer: w}).Close(); err != nil {
		t.Fatal(err)
	}
	if !w.closed {
		t.Error("writer not closed")
	}
}
