package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderPlacedHandler processes one decoded order.placed event.
type OrderPlacedHandler func(ctx context.Context, event model.OrderPlacedEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler OrderPlacedHandler
}

func NewConsumer(cfg config.RabbitMQConfig, handler OrderPlacedHandler) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// Start consumes until ctx is done or the channel closes. The returned
// channel is closed when the loop exits.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		OrderPlacedQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.deliver(ctx, msg)
			}
		}
	}()

	return done, nil
}

func (c *Consumer) deliver(ctx context.Context, msg amqp091.Delivery) {
	switch handleMessage(ctx, msg.Body, c.handler) {
	case ack:
		if err := msg.Ack(false); err != nil {
			logger.Error("[Consumer] ack", zap.Error(err))
		}
	case reject:
		// no retry policy: the message is dropped
		if err := msg.Nack(false, false); err != nil {
			logger.Error("[Consumer] nack", zap.Error(err))
		}
	}
}

type outcome int

const (
	ack outcome = iota
	reject
)

func handleMessage(ctx context.Context, body []byte, handler OrderPlacedHandler) outcome {
	var event model.OrderPlacedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("[Consumer] malformed order.placed message", zap.Error(err), zap.ByteString("body", body))
		return ack
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("[Consumer] handle order.placed", zap.String("order_id", event.OrderID), zap.Error(err))
		return reject
	}
	return ack
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
