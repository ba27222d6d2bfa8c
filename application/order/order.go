package order

import (
	"context"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	orderrepo "github.com/muhammadheryan/warung-order/repository/order"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

const maxPerPage = 100

// OrderApp is the admin read side of persisted orders.
type OrderApp interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.orderRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
