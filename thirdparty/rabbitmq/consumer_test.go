package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessage(t *testing.T) {
	event := model.OrderPlacedEvent{
		OrderID:       "ord-1",
		CustomerName:  "Budi",
		PaymentMethod: constant.PaymentMethodCash,
		TotalAmount:   decimal.NewFromInt(50000),
		ItemCount:     2,
		CreatedAt:     time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("decoded event reaches the handler", func(t *testing.T) {
		var got model.OrderPlacedEvent
		res := handleMessage(context.Background(), body, func(_ context.Context, e model.OrderPlacedEvent) error {
			got = e
			return nil
		})
		assert.Equal(t, ack, res)
		assert.Equal(t, "ord-1", got.OrderID)
		assert.True(t, got.TotalAmount.Equal(event.TotalAmount))
		assert.True(t, got.CreatedAt.Equal(event.CreatedAt))
	})

	t.Run("malformed body is acked and dropped", func(t *testing.T) {
		called := false
		res := handleMessage(context.Background(), []byte("{not json"), func(context.Context, model.OrderPlacedEvent) error {
			called = true
			return nil
		})
		assert.Equal(t, ack, res)
		assert.False(t, called)
	})

	t.Run("handler failure is rejected", func(t *testing.T) {
		res := handleMessage(context.Background(), body, func(context.Context, model.OrderPlacedEvent) error {
			return errors.New("printer offline")
		})
		assert.Equal(t, reject, res)
	})
}
