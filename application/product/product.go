package product

import (
	"context"
	"strings"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	productRepo "github.com/muhammadheryan/warung-order/repository/product"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	if filter == nil {
		filter = &model.ProductFilter{}
	}

	items, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{Items: items}, nil
}

func (s *productAppImpl) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error productRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "name", "is required")
	}
	if req.Price.IsNegative() {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "price", "must not be negative")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = constant.DefaultProductCategory
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	result, err := s.productRepo.Create(ctx, &model.Product{
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		Image:       strings.TrimSpace(req.Image),
		Category:    category,
		Available:   available,
	})
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[CreateProduct] product created", zap.String("product_id", result.ID), zap.String("name", result.Name))
	return result, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	current, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.SetFieldError(constant.ErrInvalidRequest, "name", "must not be empty")
		}
		current.Name = name
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.SetFieldError(constant.ErrInvalidRequest, "price", "must not be negative")
		}
		current.Price = *req.Price
	}
	if req.Image != nil {
		current.Image = strings.TrimSpace(*req.Image)
	}
	if req.Category != nil {
		if category := strings.TrimSpace(*req.Category); category != "" {
			current.Category = category
		}
	}
	if req.Available != nil {
		current.Available = *req.Available
	}

	if err := s.productRepo.Update(ctx, current); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("product_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return current, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("product_id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	logger.Info("[DeleteProduct] product deleted", zap.String("product_id", id))
	return nil
}
