package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	utilsContext "github.com/muhammadheryan/warung-order/utils/context"
	"github.com/muhammadheryan/warung-order/utils/errors"
)

// multipart overhead on top of the image itself; the media app enforces the image limit
const maxUploadRequestBytes = 32 << 20

// AdminLogin handler
// @Summary Admin login
// @Description Exchanges the admin password for a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "Login Request"
// @Success 200 {object} model.AdminLoginResponse
// @Failure 400 {object} Response
// @Router /admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogout handler
// @Summary Admin logout
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /admin/logout [post]
func (s *RestHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetAdminSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AdminApp.Logout(r.Context(), session.ID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// CreateProduct handler
// @Summary Create product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 400 {object} Response
// @Router /admin/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Description Only the fields present in the body change
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.UpdateProductRequest true "Fields to change"
// @Success 200 {object} model.Product
// @Failure 404 {object} Response
// @Router /admin/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ProductApp.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListOrders handler
// @Summary List orders
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} model.OrderListResponse
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.ListOrders(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Router /admin/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListSettings handler
// @Summary List settings
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/settings [get]
func (s *RestHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.ListSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSetting handler
// @Summary Get setting
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} model.Setting
// @Failure 404 {object} Response
// @Router /admin/settings/{key} [get]
func (s *RestHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.GetSetting(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpsertSetting handler
// @Summary Set setting
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body model.UpsertSettingRequest true "Value"
// @Success 200 {object} model.Setting
// @Failure 400 {object} Response
// @Router /admin/settings/{key} [put]
func (s *RestHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req model.UpsertSettingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SettingApp.UpsertSetting(r.Context(), mux.Vars(r)["key"], req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfigureWhatsapp handler
// @Summary Configure WhatsApp number
// @Description Normalizes and stores the destination number for checkout messages
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.WhatsappConfigRequest true "WhatsApp number"
// @Success 200 {object} model.WhatsappConfigResponse
// @Failure 400 {object} Response
// @Router /admin/whatsapp [post]
func (s *RestHandler) ConfigureWhatsapp(w http.ResponseWriter, r *http.Request) {
	var req model.WhatsappConfigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SettingApp.ConfigureWhatsappNumber(r.Context(), req.WhatsappNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UploadImage handler
// @Summary Upload product image
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} model.ImageUploadResponse
// @Failure 400 {object} Response
// @Router /admin/images [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, errors.SetFieldError(constant.ErrInvalidRequest, "image", "multipart file is required"))
		return
	}
	defer file.Close()

	res, err := s.MediaApp.UploadImage(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.SetFieldError(constant.ErrInvalidRequest, name, "must be an integer")
	}
	return n, nil
}
