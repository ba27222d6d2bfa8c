package kitchen_test

import (
	"context"
	"testing"
	"time"

	appkitchen "github.com/muhammadheryan/warung-order/application/kitchen"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKitchenApp_HandleOrderPlaced(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	app := appkitchen.NewKitchenApp(&config.Config{Checkout: config.CheckoutConfig{Timezone: "Asia/Jakarta"}})

	err := app.HandleOrderPlaced(context.Background(), model.OrderPlacedEvent{
		OrderID:       "ord-7",
		CustomerName:  "Siti",
		PaymentMethod: constant.PaymentMethodTransfer,
		TotalAmount:   decimal.NewFromInt(1250000),
		ItemCount:     3,
		CreatedAt:     time.Date(2026, 10, 15, 7, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("[HandleOrderPlaced] kitchen ticket").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ord-7", fields["order_id"])
	assert.Equal(t, "Bank Transfer", fields["payment"])
	assert.Equal(t, "Rp1.250.000", fields["total"])
	assert.Equal(t, "15/10/2026 14.30.00", fields["placed_at"])
}

func TestKitchenApp_HandleOrderPlacedRejectsEmptyID(t *testing.T) {
	app := appkitchen.NewKitchenApp(&config.Config{})
	assert.Error(t, app.HandleOrderPlaced(context.Background(), model.OrderPlacedEvent{}))
}
