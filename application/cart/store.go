package cart

import (
	"sync"

	"github.com/muhammadheryan/warung-order/model"
	"github.com/shopspring/decimal"
)

// Store is an ordered set of cart lines keyed by item id.
// Lines keep the position of their first add; every line has quantity >= 1.
type Store struct {
	mu    sync.RWMutex
	items []model.CartItem
}

// NewStore restores a cart from a snapshot, dropping non-positive quantities
// and merging lines that share an id.
func NewStore(items ...model.CartItem) *Store {
	s := &Store{items: make([]model.CartItem, 0, len(items))}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if i := s.indexOf(it.ID); i >= 0 {
			s.items[i].Quantity += it.Quantity
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddToCart increments the line for p.ID or appends it with quantity 1.
func (s *Store) AddToCart(p model.CartProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
		return
	}
	s.items = append(s.items, model.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

func (s *Store) remove(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

// UpdateQuantity sets the absolute quantity of a line; quantity <= 0 removes it.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
}

// Items returns a copy of the lines in cart order.
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities, not the number of lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CartTotal(s.items)
}
