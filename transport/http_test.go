package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/warung-order/constant"
	adminmocks "github.com/muhammadheryan/warung-order/mocks/application/admin"
	cartmocks "github.com/muhammadheryan/warung-order/mocks/application/cart"
	checkoutmocks "github.com/muhammadheryan/warung-order/mocks/application/checkout"
	mediamocks "github.com/muhammadheryan/warung-order/mocks/application/media"
	ordermocks "github.com/muhammadheryan/warung-order/mocks/application/order"
	productmocks "github.com/muhammadheryan/warung-order/mocks/application/product"
	settingmocks "github.com/muhammadheryan/warung-order/mocks/application/setting"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/transport"
	cerr "github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	cartApp     *cartmocks.CartApp
	checkoutApp *checkoutmocks.CheckoutApp
	productApp  *productmocks.ProductApp
	settingApp  *settingmocks.SettingApp
	orderApp    *ordermocks.OrderApp
	adminApp    *adminmocks.AdminApp
	mediaApp    *mediamocks.MediaApp
}

func newFields(t *testing.T) fields {
	return fields{
		cartApp:     cartmocks.NewCartApp(t),
		checkoutApp: checkoutmocks.NewCheckoutApp(t),
		productApp:  productmocks.NewProductApp(t),
		settingApp:  settingmocks.NewSettingApp(t),
		orderApp:    ordermocks.NewOrderApp(t),
		adminApp:    adminmocks.NewAdminApp(t),
		mediaApp:    mediamocks.NewMediaApp(t),
	}
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		CartApp:     f.cartApp,
		CheckoutApp: f.checkoutApp,
		ProductApp:  f.productApp,
		SettingApp:  f.settingApp,
		OrderApp:    f.orderApp,
		AdminApp:    f.adminApp,
		MediaApp:    f.mediaApp,
	})
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Field   string          `json:"field"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRestHandler_PublicRoutes(t *testing.T) {
	tests := []struct {
		name       string
		req        func() *http.Request
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
		wantField  string
		check      func(t *testing.T, env envelope)
	}{
		{
			name: "list products passes the filter",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/products?category=Drinks&available_only=true&search=teh", nil)
			},
			mockCall: func(f fields) {
				f.productApp.
					On("ListProducts", mock.Anything, &model.ProductFilter{Category: "Drinks", AvailableOnly: true, Search: "teh"}).
					Return(&model.ProductListResponse{Items: []model.Product{{ID: "p-2", Name: "Es Teh"}}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "list products rejects a bad boolean",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/products?available_only=maybe", nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
			wantField:  "available_only",
		},
		{
			name: "missing product is 404",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/products/p-404", nil)
			},
			mockCall: func(f fields) {
				f.productApp.On("GetProduct", mock.Anything, "p-404").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "0002",
		},
		{
			name: "new cart is 201",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/cart", nil)
			},
			mockCall: func(f fields) {
				f.cartApp.On("NewCart", mock.Anything).Return(&model.NewCartResponse{CartID: "c-1"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantCode:   "0000",
		},
		{
			name: "add item requires product_id",
			req: func() *http.Request {
				return jsonRequest(http.MethodPost, "/cart/c-1/items", map[string]string{})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
			wantField:  "product_id",
		},
		{
			name: "update quantity uses both path ids",
			req: func() *http.Request {
				return jsonRequest(http.MethodPut, "/cart/c-1/items/p-1", map[string]int{"quantity": 4})
			},
			mockCall: func(f fields) {
				f.cartApp.On("UpdateQuantity", mock.Anything, "c-1", "p-1", 4).
					Return(&model.CartResponse{CartID: "c-1", TotalItems: 4}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "checkout returns the redirect",
			req: func() *http.Request {
				return jsonRequest(http.MethodPost, "/checkout", map[string]interface{}{
					"customer_name":    "Budi",
					"customer_phone":   "081234567890",
					"customer_address": "Jl. Merdeka No. 1",
					"payment_method":   "cash",
					"items": []map[string]interface{}{
						{"id": "p-1", "name": "Nasi Goreng", "price": 25000, "quantity": 2},
					},
				})
			},
			mockCall: func(f fields) {
				f.checkoutApp.On("Checkout", mock.Anything, mock.MatchedBy(func(req *model.CheckoutRequest) bool {
					return len(req.Items) == 1 && req.Items[0].Price.Equal(decimal.NewFromInt(25000)) && req.Items[0].Quantity == 2
				})).Return(&model.CheckoutResponse{OrderID: "ord-1", RedirectURI: "https://wa.me/6281234567890?text=x"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
			check: func(t *testing.T, env envelope) {
				var res model.CheckoutResponse
				require.NoError(t, json.Unmarshal(env.Data, &res))
				assert.Equal(t, "ord-1", res.OrderID)
				assert.Equal(t, "https://wa.me/6281234567890?text=x", res.RedirectURI)
			},
		},
		{
			name: "checkout without a configured number",
			req: func() *http.Request {
				return jsonRequest(http.MethodPost, "/checkout", map[string]interface{}{"customer_name": "Budi"})
			},
			mockCall: func(f fields) {
				f.checkoutApp.On("Checkout", mock.Anything, mock.Anything).
					Return(nil, cerr.SetFieldError(constant.ErrConfiguration, constant.SettingKeyWhatsappNumber, "whatsapp number not configured")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0007",
			wantField:  constant.SettingKeyWhatsappNumber,
		},
		{
			name: "checkout persistence failure",
			req: func() *http.Request {
				return jsonRequest(http.MethodPost, "/cart/c-1/checkout", map[string]string{"customer_name": "Budi"})
			},
			mockCall: func(f fields) {
				f.cartApp.On("Checkout", mock.Anything, "c-1", &model.CartCheckoutRequest{CustomerName: "Budi"}).
					Return(nil, cerr.Wrap(constant.ErrInternal, errors.New("deadlock"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "0001",
		},
		{
			name: "malformed body",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString("{"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
			wantField:  "body",
		},
		{
			name: "oversized body is rejected before the app is called",
			req: func() *http.Request {
				body := append([]byte(`{"customer_name":"`), bytes.Repeat([]byte("a"), 2<<20)...)
				body = append(body, `"}`...)
				return httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "0003",
			wantField:  "body",
			check: func(t *testing.T, env envelope) {
				assert.Equal(t, "body exceeds 1MB", env.Detail)
			},
		},
		{
			name: "whatsapp status is public",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/whatsapp", nil)
			},
			mockCall: func(f fields) {
				f.settingApp.On("GetWhatsappConfig", mock.Anything).Return(&model.WhatsappConfigResponse{Configured: false}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, env := do(t, f.handler(), tt.req())
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantField, env.Field)
			if tt.check != nil {
				tt.check(t, env)
			}
		})
	}
}

func TestRestHandler_AdminGuard(t *testing.T) {
	t.Run("login is reachable without a token", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("Login", mock.Anything, &model.AdminLoginRequest{Password: "rahasia"}).
			Return(&model.AdminLoginResponse{Token: "tok"}, nil).Once()

		rec, _ := do(t, f.handler(), jsonRequest(http.MethodPost, "/admin/login", map[string]string{"password": "rahasia"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		f := newFields(t)
		rec, env := do(t, f.handler(), httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "0004", env.Code)
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("ValidateToken", mock.Anything, "bad").Return(nil, errors.New("invalid or expired session")).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec, _ := do(t, f.handler(), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("ValidateToken", mock.Anything, "good").Return(&model.AdminSession{ID: "sess-1", Subject: "admin"}, nil).Once()
		f.orderApp.On("ListOrders", mock.Anything, 2, 5).Return(&model.OrderListResponse{Page: 2, PerPage: 5}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/orders?page=2&per_page=5", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec, _ := do(t, f.handler(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logout ends the session from the token", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("ValidateToken", mock.Anything, "good").Return(&model.AdminSession{ID: "sess-1", Subject: "admin"}, nil).Once()
		f.adminApp.On("Logout", mock.Anything, "sess-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec, _ := do(t, f.handler(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("whatsapp number validation error carries the field", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("ValidateToken", mock.Anything, "good").Return(&model.AdminSession{ID: "sess-1"}, nil).Once()
		f.settingApp.On("ConfigureWhatsappNumber", mock.Anything, "0812").
			Return(nil, cerr.SetFieldError(constant.ErrInvalidRequest, constant.SettingKeyWhatsappNumber, "Must start with 62 followed by 8-15 digits")).Once()

		req := jsonRequest(http.MethodPost, "/admin/whatsapp", map[string]string{"whatsapp_number": "0812"})
		req.Header.Set("Authorization", "Bearer good")
		rec, env := do(t, f.handler(), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.SettingKeyWhatsappNumber, env.Field)
		assert.Equal(t, "Must start with 62 followed by 8-15 digits", env.Detail)
	})

	t.Run("image upload forwards the multipart file", func(t *testing.T) {
		f := newFields(t)
		f.adminApp.On("ValidateToken", mock.Anything, "good").Return(&model.AdminSession{ID: "sess-1"}, nil).Once()
		f.mediaApp.On("UploadImage", mock.Anything, "rendang.png", int64(4), mock.Anything).
			Return(&model.ImageUploadResponse{URL: "http://cdn.example/products/x.png"}, nil).Once()

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("image", "rendang.png")
		require.NoError(t, err)
		_, _ = part.Write([]byte("data"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/admin/images", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer good")
		rec, _ := do(t, f.handler(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
