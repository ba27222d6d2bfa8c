package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warung-order/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	// InsertOrderTx stores the order header and returns the generated order id.
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (string, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItem) error
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context, page, perPage int) ([]model.Order, int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = "INSERT INTO `order` (id, customer_name, customer_phone, customer_address, payment_method, total_amount, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	insertItemQuery  = "INSERT INTO order_item (order_id, position, product_id, name, price, image, quantity) VALUES (?, ?, ?, ?, ?, ?, ?)"
	selectOrderBase  = "SELECT id, customer_name, customer_phone, customer_address, payment_method, total_amount, status, created_at FROM `order`"
	selectItemsQuery = "SELECT order_id, position, product_id, name, price, image, quantity FROM order_item WHERE order_id = ? ORDER BY position"
	countOrdersQuery = "SELECT COUNT(*) FROM `order`"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (string, error) {
	id := uuid.NewString()
	_, err := tx.ExecContext(ctx, insertOrderQuery,
		id, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.PaymentMethod, order.TotalAmount, order.Status, order.CreatedAt)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItem) error {
	for i, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, orderID, i, it.ProductID, it.Name, it.Price, it.Image, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns nil, nil when the order does not exist
func (r *SQL) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	if err := r.conn.GetContext(ctx, &order, selectOrderBase+" WHERE id = ?", orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	items := make([]model.OrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, selectItemsQuery, orderID); err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// List returns order headers newest first; items are not loaded
func (r *SQL) List(ctx context.Context, page, perPage int) ([]model.Order, int64, error) {
	offset := (page - 1) * perPage

	orders := make([]model.Order, 0)
	query := selectOrderBase + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	if err := r.conn.SelectContext(ctx, &orders, query, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countOrdersQuery); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
