package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	bookingExpirationExchange   = "booking_expiration_exchange"
	bookingExpirationQueue      = "booking_expiration_queue"
	bookingExpirationRoutingKey = "booking_expiration"
)

// dial opens a channel and declares the delayed exchange, queue and binding
// shared by the publisher and the consumer.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Requires the rabbitmq_delayed_message_exchange plugin
	err = channel.ExchangeDeclare(
		bookingExpirationExchange,
		"x-delayed-message",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		bookingExpirationQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		bookingExpirationQueue,
		bookingExpirationRoutingKey,
		bookingExpirationExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}
