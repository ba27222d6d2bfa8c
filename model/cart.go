package model

import "github.com/shopspring/decimal"

type CartItem struct {
	ID       string          `json:"id" validate:"required,max=64"`
	Name     string          `json:"name" validate:"required,max=255"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image" validate:"max=1024"`
	Quantity int             `json:"quantity" validate:"gte=1,lte=1000"`
}

// CartProduct is what a product contributes to a cart line.
type CartProduct struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

type CartResponse struct {
	CartID     string          `json:"cart_id"`
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type NewCartResponse struct {
	CartID string `json:"cart_id"`
}

// CartTotal is the exact sum of price x quantity over items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
