package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warung-order/model"
)

// NewCart handler
// @Summary Create cart
// @Description Starts an empty cart session
// @Tags Cart
// @Produce json
// @Success 201 {object} model.NewCartResponse
// @Router /cart [post]
func (s *RestHandler) NewCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.NewCart(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetCart handler
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} Response
// @Router /cart/{cartID} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.GetCart(r.Context(), mux.Vars(r)["cartID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add to cart
// @Description Adds one unit of a product, merging with an existing line
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param request body model.AddCartItemRequest true "Product"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{cartID}/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), mux.Vars(r)["cartID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Set quantity
// @Description Sets an absolute quantity; zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param itemID path string true "Product ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Router /cart/{cartID}/items/{itemID} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCartItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	res, err := s.CartApp.UpdateQuantity(r.Context(), vars["cartID"], vars["itemID"], req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param itemID path string true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/{cartID}/items/{itemID} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.CartApp.RemoveItem(r.Context(), vars["cartID"], vars["itemID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} Response
// @Router /cart/{cartID} [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.ClearCart(r.Context(), mux.Vars(r)["cartID"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// CheckoutCart handler
// @Summary Checkout cart
// @Description Places the order from the cart session and returns the WhatsApp redirect. The cart is emptied only on success.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param request body model.CartCheckoutRequest true "Customer details"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /cart/{cartID}/checkout [post]
func (s *RestHandler) CheckoutCart(w http.ResponseWriter, r *http.Request) {
	var req model.CartCheckoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.Checkout(r.Context(), mux.Vars(r)["cartID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Checkout handler
// @Summary Checkout
// @Description Places an order from the submitted lines and returns the WhatsApp redirect
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.Checkout(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
