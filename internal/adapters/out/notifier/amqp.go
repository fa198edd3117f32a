// Package notifier provides the notification sinks: a RabbitMQ fanout
// publisher for deployments with a broker, and a log-based fallback for
// everything else.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kitchen/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName   = "kitchen_notifications"
	publishTimeout = 10 * time.Second
)

// envelope is the wire format of one notification.
type envelope struct {
	Kind      string    `json:"kind"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// AMQPNotifier publishes notifications to a RabbitMQ fanout exchange, so
// every interested consumer (alerting, dashboards) receives each signal.
type AMQPNotifier struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewAMQPNotifier connects to the broker and declares the fanout exchange.
func NewAMQPNotifier(url string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPNotifier{
		conn:    conn,
		channel: channel,
	}, nil
}

// Notify publishes one notification as JSON.
func (n *AMQPNotifier) Notify(ctx context.Context, kind ports.NotificationKind, payload any) error {
	body, err := json.Marshal(envelope{
		Kind:      string(kind),
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		exchangeName,
		"",    // routing key unused by fanout
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (n *AMQPNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}
