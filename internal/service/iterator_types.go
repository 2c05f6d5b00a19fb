package service

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageIterator is the consumer side the Iterator reads from. It is
// satisfied by *kafkaclient.KafkaConsumer.
//
// Implementations own the lifecycle of the underlying connection.
type MessageIterator interface {
	// Messages returns a receive-only channel of Kafka messages. The channel
	// is closed when the consumer is stopped or the source is exhausted.
	Messages() <-chan kafka.Message

	// CommitOffset acknowledges that a message has been processed.
	CommitOffset(ctx context.Context, msg kafka.Message) error
}

// DecodeFunc turns the raw message payload into a T. Returning an error
// skips the message without committing it.
type DecodeFunc[T any] func(ctx context.Context, msg kafka.Message) (T, error)

// Delivered pairs a decoded value with the message it came from.
type Delivered[T any] struct {
	// Data is the decoded payload.
	Data T
	// Message is the Kafka message that carried it.
	Message kafka.Message
}
