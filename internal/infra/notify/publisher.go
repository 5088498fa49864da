package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"glamping-booking/internal/pkg/config"
	"glamping-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errors.New("publisher closed")

// AMQPPublisher publishes confirmed reservations to a durable queue.
// The connection is dialed lazily and re-dialed after the broker drops it.
type AMQPPublisher struct {
	url   string
	queue string

	mu     sync.Mutex
	conn   *amqp.Connection
	closed bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue}
}

func (p *AMQPPublisher) PublishConfirmed(ctx context.Context, event commands.ReservationConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := declareQueues(ch, p.queue); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reservation.ID.String(),
		Type:         event.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("dial broker: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel open: %w", err)
	}
	return ch, nil
}

// Close drops the connection. Later publishes fail with ErrPublisherClosed
// instead of dialing again.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishConfirmed(_ context.Context, event commands.ReservationConfirmedEvent) error {
	slog.Info("reservation confirmed (no broker configured)",
		"reservation_id", event.Reservation.ID.String(),
		"email", event.Reservation.Email,
		"total", event.Reservation.Total.String())
	return nil
}

// NewPublisher picks the broker publisher when AMQP_URL is set.
func NewPublisher(cfg config.AMQPConfig) commands.ConfirmationPublisher {
	if cfg.URL == "" {
		return LogPublisher{}
	}
	return NewAMQPPublisher(cfg)
}
