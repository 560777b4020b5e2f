package product

import (
	"context"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	productRepo "github.com/rizkyfachril/backoffice/repository/product"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) error

	ListVariants(ctx context.Context, productID uint64) ([]model.ProductVariant, error)
	CreateVariant(ctx context.Context, productID uint64, req *model.VariantRequest) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, id uint64, req *model.VariantRequest) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
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

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.ProductEntity, error) {
	existing, err := s.productRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.GetBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	entity := &model.ProductEntity{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Status:      constant.EntityStatus(req.Status),
	}

	entity, err = s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Slug uniqueness is scoped to other rows
	if req.Slug != entity.Slug {
		existing, err := s.productRepo.GetBySlug(ctx, req.Slug)
		if err != nil {
			logger.Error("[UpdateProduct] error productRepo.GetBySlug", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	entity.Name = req.Name
	entity.Slug = req.Slug
	entity.Description = req.Description
	entity.Price = req.Price
	entity.CategoryID = req.CategoryID
	entity.ImageURL = req.ImageURL
	entity.Status = constant.EntityStatus(req.Status)

	if err := s.productRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) ListVariants(ctx context.Context, productID uint64) ([]model.ProductVariant, error) {
	variants, err := s.productRepo.ListVariants(ctx, productID)
	if err != nil {
		logger.Error("[ListVariants] error productRepo.ListVariants", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return variants, nil
}

func (s *productAppImpl) CreateVariant(ctx context.Context, productID uint64, req *model.VariantRequest) (*model.ProductVariant, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[CreateVariant] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.productRepo.GetVariantBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[CreateVariant] error productRepo.GetVariantBySKU", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	variant := &model.ProductVariant{
		ProductID: productID,
		Title:     req.Title,
		SKU:       req.SKU,
		Price:     req.Price,
	}

	variant, err = s.productRepo.CreateVariant(ctx, variant)
	if err != nil {
		logger.Error("[CreateVariant] error productRepo.CreateVariant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return variant, nil
}

func (s *productAppImpl) UpdateVariant(ctx context.Context, id uint64, req *model.VariantRequest) (*model.ProductVariant, error) {
	variant, err := s.productRepo.GetVariantByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateVariant] error productRepo.GetVariantByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.SKU != variant.SKU {
		existing, err := s.productRepo.GetVariantBySKU(ctx, req.SKU)
		if err != nil {
			logger.Error("[UpdateVariant] error productRepo.GetVariantBySKU", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	variant.Title = req.Title
	variant.SKU = req.SKU
	variant.Price = req.Price

	if err := s.productRepo.UpdateVariant(ctx, variant); err != nil {
		logger.Error("[UpdateVariant] error productRepo.UpdateVariant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return variant, nil
}

func (s *productAppImpl) DeleteVariant(ctx context.Context, id uint64) error {
	variant, err := s.productRepo.GetVariantByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteVariant] error productRepo.GetVariantByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if variant == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.DeleteVariant(ctx, id); err != nil {
		logger.Error("[DeleteVariant] error productRepo.DeleteVariant", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
