package queue

// Publishing is best effort: errors are logged and returned so callers can
// ignore failures without interrupting the main request flow.  A booking
// commit never depends on the broker being reachable.

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublishTicketConfirmed publishes a TicketConfirmedEvent to the
// "ticket.confirmed" queue.  Messages are marked as persistent.
func PublishTicketConfirmed(ctx context.Context, event TicketConfirmedEvent) error {
	return publish(ctx, ticketQueueName, event)
}

// PublishTicketCancelled publishes a TicketCancelledEvent to the
// "ticket.cancelled" queue.
func PublishTicketCancelled(ctx context.Context, event TicketCancelledEvent) error {
	return publish(ctx, "ticket.cancelled", event)
}

// publish dials the broker, declares the target queue (idempotent, durable
// so messages survive broker restarts) and sends one persistent JSON
// message.  The function attempts to be robust and to never panic.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(BrokerURL())
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
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
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
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
