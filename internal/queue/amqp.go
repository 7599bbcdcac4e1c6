package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// NotificationJob is the body of a queued order notification.
type NotificationJob struct {
	OrderID int `json:"order_id"`
}

// AMQPQueue publishes jobs to RabbitMQ; the worker binary consumes them.
// Subscribe is not supported here — consumption lives in cmd/worker.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPQueue(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		OrderNotifications,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return &AMQPQueue{conn: conn, ch: ch}, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	orderID, ok := payload.(int)
	if !ok {
		return fmt.Errorf("unexpected payload type %T, expected int", payload)
	}
	body, err := json.Marshal(NotificationJob{OrderID: orderID})
	if err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("AMQPQueue does not subscribe in-process; run the worker binary")
}

func (q *AMQPQueue) Close() {
	if q.ch != nil {
		q.ch.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
}

var _ Queue = (*AMQPQueue)(nil)
