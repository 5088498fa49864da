package notify

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *Consumer) Dispatch(ctx context.Context, d amqp.Delivery) { c.dispatch(ctx, d) }

func (c *Consumer) Prefetch() int { return c.prefetch }
