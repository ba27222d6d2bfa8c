package rabbitmq

import (
	"fmt"

	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/rabbitmq/amqp091-go"
)

const (
	OrderExchange         = "order_exchange"
	OrderPlacedQueue      = "order_placed_queue"
	OrderPlacedRoutingKey = "order.placed"
)

// dial opens a channel with the order exchange and queue declared.
func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		OrderExchange, // name
		"topic",       // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		OrderPlacedQueue, // name
		true,             // durable
		false,            // auto-delete
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		OrderPlacedQueue,      // queue name
		OrderPlacedRoutingKey, // routing key
		OrderExchange,         // exchange
		false,                 // no-wait
		nil,                   // arguments
	)
}
