package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const bookingQueueName = "booking.confirmed"

// Publisher publishes booking-confirmed events to RabbitMQ.  It never
// panics and never interrupts the request flow: every error is logged
// and returned so callers can choose to ignore it.  An empty URL makes
// the publisher a no-op.
type Publisher struct {
	url string
}

// NewPublisher returns a publisher for the given broker URL.  Pass an
// empty string to disable publishing entirely.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishBookingConfirmed marshals the event and publishes it to the
// booking.confirmed queue.  The queue is declared durable on every call
// so the publisher works against a fresh broker, and messages are marked
// persistent.
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	if p == nil || p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		bookingQueueName, // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",               // default exchange
		bookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
