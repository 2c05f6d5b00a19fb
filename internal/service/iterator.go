// Package service contains helpers used by application services.
// In particular, it provides an Iterator that consumes bus messages from a
// MessageIterator (Kafka via pkg/kafkaclient), decodes each one with a
// pluggable DecodeFunc and streams the results.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
)

// Iterator consumes messages from a MessageIterator, decodes them via a
// DecodeFunc and yields Delivered items on a channel. It is generic over the
// decoded item type T.
//
// The Iterator does not manage the lifecycle of the underlying message source;
// callers start and stop their consumer outside.
type Iterator[T any] struct {
	msgIterator MessageIterator
	decode      DecodeFunc[T]
}

// NewIterator constructs an Iterator for the provided message source and
// decoder.
func NewIterator[T any](iterator MessageIterator, decode DecodeFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		msgIterator: iterator,
		decode:      decode,
	}
}

// JSONDecoder decodes the message value as JSON into a T.
func JSONDecoder[T any]() DecodeFunc[T] {
	return func(_ context.Context, msg kafka.Message) (T, error) {
		var v T
		if err := json.Unmarshal(msg.Value, &v); err != nil {
			return v, fmt.Errorf("decode offset %d: %w", msg.Offset, err)
		}
		return v, nil
	}
}

// Objects starts a goroutine that:
//  1. Receives messages from the underlying MessageIterator
//  2. Decodes each message with the DecodeFunc
//  3. Emits a Delivered[T] on the returned channel
//  4. Commits the message offset once the item was handed over
//
// Decode errors are logged and the message is skipped. The output channel is
// closed when the Messages() channel closes or ctx is done.
func (it *Iterator[T]) Objects(ctx context.Context) <-chan *Delivered[T] {
	out := make(chan *Delivered[T])
	go func() {
		defer close(out)

		msgs := it.msgIterator.Messages()
		for {
			var msg kafka.Message
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					return
				}
				msg = m
			}

			data, err := it.decode(ctx, msg)
			if err != nil {
				log.Printf("Error decoding message: %v", err)
				continue
			}

			select {
			case out <- &Delivered[T]{Data: data, Message: msg}:
			case <-ctx.Done():
				return
			}

			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v", err)
			}
		}
	}()
	return out
}
