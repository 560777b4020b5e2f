package category

import (
	"context"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	categoryRepo "github.com/rizkyfachril/backoffice/repository/category"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryAppImpl struct {
	categoryRepo categoryRepo.CategoryRepository
}

func NewCategoryApp(categoryRepo categoryRepo.CategoryRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo}
}

func (s *categoryAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] error categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *categoryAppImpl) GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	existing, err := s.categoryRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		logger.Error("[CreateCategory] error categoryRepo.GetBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	entity := &model.CategoryEntity{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	}

	entity, err = s.categoryRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateCategory] error categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *categoryAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Slug != entity.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, req.Slug)
		if err != nil {
			logger.Error("[UpdateCategory] error categoryRepo.GetBySlug", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	entity.Name = req.Name
	entity.Slug = req.Slug
	entity.Description = req.Description
	entity.ParentID = req.ParentID

	if err := s.categoryRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateCategory] error categoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *categoryAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCategory] error categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
