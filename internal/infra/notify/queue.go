package notify

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeadLetterQueue names the queue that collects deliveries the consumer gave up on.
func DeadLetterQueue(queue string) string {
	return queue + ".dead"
}

// QueueArgs routes rejected deliveries to the dead-letter queue through the
// default exchange. Publisher and consumer must declare with the same args.
func QueueArgs(queue string) amqp.Table {
	return amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DeadLetterQueue(queue),
	}
}

func declareQueues(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(DeadLetterQueue(queue), true, false, false, false, nil); err != nil {
		return fmt.Errorf("dead-letter queue declare: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, QueueArgs(queue)); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	return nil
}
