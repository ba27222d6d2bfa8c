package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/currency"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

// KitchenApp turns placed orders into kitchen tickets.
type KitchenApp interface {
	HandleOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error
}

type kitchenAppImpl struct {
	location *time.Location
}

func NewKitchenApp(config *config.Config) KitchenApp {
	return &kitchenAppImpl{location: config.Checkout.Location()}
}

func (s *kitchenAppImpl) HandleOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error {
	if event.OrderID == "" {
		return fmt.Errorf("order.placed event without order id")
	}

	payment := constant.PaymentMethodLabel[event.PaymentMethod]
	if payment == "" {
		payment = string(event.PaymentMethod)
	}

	logger.Info("[HandleOrderPlaced] kitchen ticket",
		zap.String("order_id", event.OrderID),
		zap.String("customer", event.CustomerName),
		zap.String("payment", payment),
		zap.Int("items", event.ItemCount),
		zap.String("total", currency.FormatRupiah(event.TotalAmount)),
		zap.String("placed_at", event.CreatedAt.In(s.location).Format("02/01/2006 15.04.05")),
	)
	return nil
}
