package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	"github.com/muhammadheryan/warung-order/utils/errors"
)

// ListProducts handler
// @Summary List products
// @Description List menu products, optionally filtered
// @Tags Catalog
// @Produce json
// @Param category query string false "Category"
// @Param available_only query bool false "Only available products"
// @Param search query string false "Name or description contains"
// @Success 200 {object} model.ProductListResponse
// @Failure 400 {object} Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if v := q.Get("available_only"); v != "" {
		availableOnly, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, errors.SetFieldError(constant.ErrInvalidRequest, "available_only", "must be a boolean"))
			return
		}
		filter.AvailableOnly = availableOnly
	}

	res, err := s.ProductApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Description Distinct categories of available products
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWhatsappConfig handler
// @Summary WhatsApp configuration
// @Description Tells the storefront whether checkout can be offered
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.WhatsappConfigResponse
// @Router /whatsapp [get]
func (s *RestHandler) GetWhatsappConfig(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.GetWhatsappConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
