package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"foodorder/internal/core/domain/model/kernel"
)

const notificationQueue = "user_notifications"

// Notifier publishes user notifications to a durable RabbitMQ queue. A
// separate consumer process fans them out to push, SMS or email channels.
type Notifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// notificationMessage is the wire format published to the queue.
type notificationMessage struct {
	UserID  string    `json:"user_id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// NewNotifier connects to RabbitMQ and declares the notification queue.
func NewNotifier(url string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		notificationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", notificationQueue, err)
	}

	return &Notifier{conn: conn, channel: ch}, nil
}

// Notify publishes one notification. Messages are persistent so a broker
// restart does not lose them.
func (n *Notifier) Notify(ctx context.Context, userID kernel.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(notificationMessage{
		UserID:  userID.String(),
		Message: message,
		SentAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.channel.Publish(
		"", // default exchange
		notificationQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the channel and the connection.
func (n *Notifier) Close() error {
	var errs []error
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during notifier close: %v", errs)
	}
	return nil
}
