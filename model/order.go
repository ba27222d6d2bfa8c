package model

import (
	"time"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	CustomerName    string                 `json:"customer_name" validate:"required,max=255"`
	CustomerPhone   string                 `json:"customer_phone" validate:"required,max=50"`
	CustomerAddress string                 `json:"customer_address" validate:"required,max=1000"`
	PaymentMethod   constant.PaymentMethod `json:"payment_method" validate:"required,oneof=cash transfer ewallet"`
	Items           []CartItem             `json:"items" validate:"required,min=1,dive"`
}

// CartCheckoutRequest carries the customer details; the items come from the cart session.
type CartCheckoutRequest struct {
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	PaymentMethod   constant.PaymentMethod `json:"payment_method"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	RedirectURI string `json:"redirect_uri"`
}

type Order struct {
	ID              string                 `db:"id" json:"id"`
	CustomerName    string                 `db:"customer_name" json:"customer_name"`
	CustomerPhone   string                 `db:"customer_phone" json:"customer_phone"`
	CustomerAddress string                 `db:"customer_address" json:"customer_address"`
	PaymentMethod   constant.PaymentMethod `db:"payment_method" json:"payment_method"`
	TotalAmount     decimal.Decimal        `db:"total_amount" json:"total_amount"`
	Status          constant.OrderStatus   `db:"status" json:"status"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
	Items           []OrderItem            `db:"-" json:"items"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id" json:"-"`
	Position  int             `db:"position" json:"-"`
	ProductID string          `db:"product_id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Image     string          `db:"image" json:"image"`
	Quantity  int             `db:"quantity" json:"quantity"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderListResponse struct {
	Items      []Order `json:"items"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}

// OrderPlacedEvent is published once an order has been persisted.
type OrderPlacedEvent struct {
	OrderID       string                 `json:"order_id"`
	CustomerName  string                 `json:"customer_name"`
	PaymentMethod constant.PaymentMethod `json:"payment_method"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	ItemCount     int                    `json:"item_count"`
	CreatedAt     time.Time              `json:"created_at"`
}
