package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image"`
	Category    string          `db:"category" json:"category"`
	Available   bool            `db:"available" json:"available"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type ProductFilter struct {
	Category      string
	AvailableOnly bool
	Search        string
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available"`
}

// UpdateProductRequest only changes the fields that are set.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Available   *bool            `json:"available"`
}

type ProductListResponse struct {
	Items []Product `json:"items"`
}
