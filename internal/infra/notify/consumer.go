package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxBackoff = 30 * time.Second

// ErrPermanent marks a handler failure that a redelivery cannot fix.
var ErrPermanent = errors.New("permanent delivery failure")

// DeliveryHandler processes one message body. A failed delivery is requeued
// once unless the error wraps ErrPermanent; after that it is dead-lettered.
type DeliveryHandler interface {
	Handle(ctx context.Context, body []byte) error
}

type Consumer struct {
	url      string
	queue    string
	prefetch int
	handler  DeliveryHandler
}

func NewConsumer(url, queue string, handler DeliveryHandler) *Consumer {
	return &Consumer{url: url, queue: queue, prefetch: 1, handler: handler}
}

// Run consumes until ctx is cancelled, reconnecting with exponential
// backoff whenever the broker connection is lost.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			slog.Warn("failed to dial broker", "error", err.Error(), "retry_in", backoff.String())
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("consume loop ended, reconnecting", "error", err.Error())
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		slog.Warn("failed to set QoS", "error", err.Error())
	}
	if err := declareQueues(ch, c.queue); err != nil {
		return err
	}
	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	slog.Info("consuming", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	err := c.handler.Handle(ctx, d.Body)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	requeue := shouldRequeue(d, err)
	slog.Error("failed to handle delivery",
		"message_id", d.MessageId,
		"redelivered", d.Redelivered,
		"requeue", requeue,
		"error", err.Error())
	_ = d.Nack(false, requeue)
}

// shouldRequeue allows a single retry for transient failures. Anything else
// goes to the dead-letter queue.
func shouldRequeue(d amqp.Delivery, err error) bool {
	return !d.Redelivered && !errors.Is(err, ErrPermanent)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
