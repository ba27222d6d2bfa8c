package product

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warung-order/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	selectProductBase   = `SELECT id, name, description, price, image, category, available, created_at, updated_at FROM product WHERE true`
	listCategoriesQuery = `SELECT DISTINCT category FROM product WHERE available = true ORDER BY category`
	insertProductQuery  = `INSERT INTO product (id, name, description, price, image, category, available, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateProductQuery  = `UPDATE product SET name = ?, description = ?, price = ?, image = ?, category = ?, available = ?, updated_at = ? WHERE id = ?`
	deleteProductQuery  = `DELETE FROM product WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	query := selectProductBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.Category != "" {
			query += " AND category = ?"
			args = append(args, filter.Category)
		}
		if filter.AvailableOnly {
			query += " AND available = true"
		}
		if q := strings.TrimSpace(filter.Search); q != "" {
			query += " AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
			like := "%" + strings.ToLower(q) + "%"
			args = append(args, like, like)
		}
	}
	query += " ORDER BY created_at DESC"

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &categories, listCategoriesQuery); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns nil, nil when the product does not exist
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, selectProductBase+" AND id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	_, err := s.conn.ExecContext(ctx, insertProductQuery, p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.Available, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQL) Update(ctx context.Context, p *model.Product) error {
	now := time.Now()
	p.UpdatedAt = &now
	_, err := s.conn.ExecContext(ctx, updateProductQuery, p.Name, p.Description, p.Price, p.Image, p.Category, p.Available, now, p.ID)
	return err
}

// Delete reports whether a row was removed
func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
