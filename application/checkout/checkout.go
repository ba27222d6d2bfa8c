package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	orderrepo "github.com/muhammadheryan/warung-order/repository/order"
	settingrepo "github.com/muhammadheryan/warung-order/repository/setting"
	txrepo "github.com/muhammadheryan/warung-order/repository/tx"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	validatorx "github.com/muhammadheryan/warung-order/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// order and item amounts are stored as DECIMAL(15,2)
const amountScale = 2

var maxAmount = decimal.New(1, 13)

type CheckoutApp interface {
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// EventPublisher announces placed orders. Publishing is best effort.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error
}

type checkoutAppImpl struct {
	location    *time.Location
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	settingRepo settingrepo.SettingRepository
	publisher   EventPublisher
}

func NewCheckoutApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, settingRepo settingrepo.SettingRepository, publisher EventPublisher) CheckoutApp {
	return &checkoutAppImpl{
		location:    config.Checkout.Location(),
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		settingRepo: settingRepo,
		publisher:   publisher,
	}
}

func (s *checkoutAppImpl) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// nothing is persisted while the destination number is missing or malformed
	setting, err := s.settingRepo.Get(ctx, constant.SettingKeyWhatsappNumber)
	if err != nil {
		logger.Error("[Checkout] get whatsapp setting", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if setting == nil || setting.Value == "" {
		logger.Warn("[Checkout] whatsapp number not configured")
		return nil, errors.SetFieldError(constant.ErrConfiguration, constant.SettingKeyWhatsappNumber, "whatsapp number not configured")
	}
	if !constant.WhatsappNumberPattern.MatchString(setting.Value) {
		logger.Error("[Checkout] stored whatsapp number is malformed", zap.String("whatsapp_number", setting.Value))
		return nil, errors.SetFieldError(constant.ErrConfiguration, constant.SettingKeyWhatsappNumber, constant.WhatsappNumberFormat)
	}

	order := &model.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     model.CartTotal(req.Items),
		Status:          constant.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
		Items:           snapshotItems(req.Items),
	}

	orderID, err := s.persist(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	message := RenderMessage(order, time.Now().In(s.location))
	redirectURI := BuildRedirectURI(setting.Value, message)

	s.publishPlaced(ctx, order)

	logger.Info("[Checkout] order placed", zap.String("order_id", orderID), zap.String("total", order.TotalAmount.String()))
	return &model.CheckoutResponse{
		OrderID:     orderID,
		RedirectURI: redirectURI,
	}, nil
}

func (s *checkoutAppImpl) persist(ctx context.Context, order *model.Order) (string, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Checkout] begin tx", zap.Error(err))
		return "", errors.Wrap(constant.ErrInternal, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[Checkout] insert order", zap.Error(err))
		return "", errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, order.Items); err != nil {
		logger.Error("[Checkout] insert items", zap.Error(err))
		return "", errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.Error(err))
		return "", errors.Wrap(constant.ErrInternal, err)
	}
	committed = true
	return orderID, nil
}

func (s *checkoutAppImpl) publishPlaced(ctx context.Context, order *model.Order) {
	if s.publisher == nil {
		return
	}
	itemCount := 0
	for _, it := range order.Items {
		itemCount += it.Quantity
	}
	event := model.OrderPlacedEvent{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		PaymentMethod: order.PaymentMethod,
		TotalAmount:   order.TotalAmount,
		ItemCount:     itemCount,
		CreatedAt:     order.CreatedAt,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error("[Checkout] publish order placed", zap.String("order_id", order.ID), zap.Error(err))
	}
}

func validateRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return errors.SetFieldError(constant.ErrInvalidRequest, "items", "request is empty")
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)

	if err := validatorx.ValidateStruct(req); err != nil {
		field, tag, ok := validatorx.FieldError(err)
		if !ok {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return errors.SetFieldError(constant.ErrInvalidRequest, field, ruleDetail(tag))
	}

	for i, it := range req.Items {
		field := fmt.Sprintf("items[%d].price", i)
		switch {
		case it.Price.IsNegative():
			return errors.SetFieldError(constant.ErrInvalidRequest, field, "must not be negative")
		case !it.Price.Equal(it.Price.Truncate(amountScale)):
			return errors.SetFieldError(constant.ErrInvalidRequest, field, "must have at most 2 decimal places")
		case it.Price.GreaterThanOrEqual(maxAmount):
			return errors.SetFieldError(constant.ErrInvalidRequest, field, "is too large")
		}
	}
	if model.CartTotal(req.Items).GreaterThanOrEqual(maxAmount) {
		return errors.SetFieldError(constant.ErrInvalidRequest, "items", "order total is too large")
	}
	return nil
}

func ruleDetail(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "max":
		return "is too long"
	case "gte":
		return "must be at least 1"
	case "lte":
		return "must be at most 1000"
	case "oneof":
		return "must be one of cash, transfer, ewallet"
	default:
		return "failed " + tag
	}
}

// snapshotItems copies the cart lines so later cart changes cannot reach the order.
func snapshotItems(items []model.CartItem) []model.OrderItem {
	out := make([]model.OrderItem, len(items))
	for i, it := range items {
		out[i] = model.OrderItem{
			Position:  i,
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
		}
	}
	return out
}
