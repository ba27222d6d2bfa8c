package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		OrderExchange,         // exchange
		OrderPlacedRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.OrderID,
			Timestamp:    event.CreatedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
