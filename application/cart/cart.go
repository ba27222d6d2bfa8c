package cart

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	appcheckout "github.com/muhammadheryan/warung-order/application/checkout"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	productrepo "github.com/muhammadheryan/warung-order/repository/product"
	redisrepo "github.com/muhammadheryan/warung-order/repository/redis"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	NewCart(ctx context.Context) (*model.NewCartResponse, error)
	GetCart(ctx context.Context, cartID string) (*model.CartResponse, error)
	AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*model.CartResponse, error)
	ClearCart(ctx context.Context, cartID string) error
	// Checkout places an order from the cart and empties it; a failed checkout leaves the cart untouched.
	Checkout(ctx context.Context, cartID string, req *model.CartCheckoutRequest) (*model.CheckoutResponse, error)
}

type cartAppImpl struct {
	ttl         time.Duration
	redisRepo   redisrepo.Repository
	productRepo productrepo.ProductRepository
	checkoutApp appcheckout.CheckoutApp
	locks       *sessionLocks
}

func NewCartApp(config *config.Config, redisRepo redisrepo.Repository, productRepo productrepo.ProductRepository, checkoutApp appcheckout.CheckoutApp) CartApp {
	return &cartAppImpl{
		ttl:         config.Cart.SessionTTL,
		redisRepo:   redisRepo,
		productRepo: productRepo,
		checkoutApp: checkoutApp,
		locks:       newSessionLocks(),
	}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *cartAppImpl) NewCart(ctx context.Context) (*model.NewCartResponse, error) {
	cartID := uuid.NewString()
	if err := s.save(ctx, cartID, NewStore()); err != nil {
		logger.Error("[NewCart] save cart", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	return &model.NewCartResponse{CartID: cartID}, nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, cartID string) (*model.CartResponse, error) {
	store, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return toResponse(cartID, store), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.CartResponse, error) {
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "product_id", "is required")
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[AddItem] productRepo.GetByID", zap.String("product_id", productID), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if p == nil {
		return nil, errors.SetFieldError(constant.ErrNotFound, "product_id", "product not found")
	}
	if !p.Available {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "product_id", "product is unavailable")
	}

	return s.mutate(ctx, cartID, func(store *Store) {
		store.AddToCart(model.CartProduct{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image})
	})
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.CartResponse, error) {
	return s.mutate(ctx, cartID, func(store *Store) {
		store.UpdateQuantity(itemID, quantity)
	})
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, cartID, itemID string) (*model.CartResponse, error) {
	return s.mutate(ctx, cartID, func(store *Store) {
		store.RemoveFromCart(itemID)
	})
}

func (s *cartAppImpl) ClearCart(ctx context.Context, cartID string) error {
	_, err := s.mutate(ctx, cartID, func(store *Store) {
		store.Clear()
	})
	return err
}

func (s *cartAppImpl) Checkout(ctx context.Context, cartID string, req *model.CartCheckoutRequest) (*model.CheckoutResponse, error) {
	unlock := s.locks.lock(cartID)
	defer unlock()

	store, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	res, err := s.checkoutApp.Checkout(ctx, &model.CheckoutRequest{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           store.Items(),
	})
	if err != nil {
		return nil, err
	}

	// the order is placed at this point; a failed clear must not hide it
	store.Clear()
	if err := s.save(ctx, cartID, store); err != nil {
		logger.Error("[Checkout] clear cart after checkout", zap.String("cart_id", cartID), zap.String("order_id", res.OrderID), zap.Error(err))
	}
	return res, nil
}

// mutate applies fn to the cart under the session lock and stores the result.
func (s *cartAppImpl) mutate(ctx context.Context, cartID string, fn func(store *Store)) (*model.CartResponse, error) {
	unlock := s.locks.lock(cartID)
	defer unlock()

	store, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	fn(store)
	if err := s.save(ctx, cartID, store); err != nil {
		logger.Error("[mutate] save cart", zap.String("cart_id", cartID), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	return toResponse(cartID, store), nil
}

func (s *cartAppImpl) load(ctx context.Context, cartID string) (*Store, error) {
	raw, err := s.redisRepo.Get(ctx, cartKey(cartID))
	if stderrors.Is(err, redisrepo.ErrKeyNotFound) {
		return nil, errors.SetFieldError(constant.ErrNotFound, "cart_id", "cart not found or expired")
	}
	if err != nil {
		logger.Error("[load] redisRepo.Get", zap.String("cart_id", cartID), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Error("[load] decode cart", zap.String("cart_id", cartID), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	return NewStore(items...), nil
}

func (s *cartAppImpl) save(ctx context.Context, cartID string, store *Store) error {
	raw, err := json.Marshal(store.Items())
	if err != nil {
		return err
	}
	return s.redisRepo.SetWithTTL(ctx, cartKey(cartID), string(raw), s.ttl)
}

func toResponse(cartID string, store *Store) *model.CartResponse {
	return &model.CartResponse{
		CartID:     cartID,
		Items:      store.Items(),
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	}
}

// sessionLocks serializes read-modify-write cycles per cart id.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{entries: make(map[string]*lockEntry)}
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, id)
		}
		l.mu.Unlock()
	}
}
