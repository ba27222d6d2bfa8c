package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/warung-order/application/admin"
	cartapp "github.com/muhammadheryan/warung-order/application/cart"
	checkoutapp "github.com/muhammadheryan/warung-order/application/checkout"
	mediaapp "github.com/muhammadheryan/warung-order/application/media"
	orderapp "github.com/muhammadheryan/warung-order/application/order"
	productapp "github.com/muhammadheryan/warung-order/application/product"
	settingapp "github.com/muhammadheryan/warung-order/application/setting"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CartApp     cartapp.CartApp
	CheckoutApp checkoutapp.CheckoutApp
	ProductApp  productapp.ProductApp
	SettingApp  settingapp.SettingApp
	OrderApp    orderapp.OrderApp
	AdminApp    adminapp.AdminApp
	MediaApp    mediaapp.MediaApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/whatsapp", rh.GetWhatsappConfig).Methods(http.MethodGet)

	mux.HandleFunc("/cart", rh.NewCart).Methods(http.MethodPost)
	mux.HandleFunc("/cart/{cartID}", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/{cartID}", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/{cartID}/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/{cartID}/items/{itemID}", rh.UpdateCartItem).Methods(http.MethodPut)
	mux.HandleFunc("/cart/{cartID}/items/{itemID}", rh.RemoveCartItem).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/{cartID}/checkout", rh.CheckoutCart).Methods(http.MethodPost)
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)

	// Admin routes, guarded by a session token except for login
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", rh.AdminLogin).Methods(http.MethodPost)
	admin.HandleFunc("/logout", rh.AdminLogout).Methods(http.MethodPost)
	admin.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/settings", rh.ListSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", rh.GetSetting).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", rh.UpsertSetting).Methods(http.MethodPut)
	admin.HandleFunc("/whatsapp", rh.ConfigureWhatsapp).Methods(http.MethodPost)
	admin.HandleFunc("/images", rh.UploadImage).Methods(http.MethodPost)
	admin.Use(AuthMiddleware(rh.AdminApp))

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}
