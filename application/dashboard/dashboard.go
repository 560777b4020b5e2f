package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	categoryrepo "github.com/rizkyfachril/backoffice/repository/category"
	inventoryrepo "github.com/rizkyfachril/backoffice/repository/inventory"
	productrepo "github.com/rizkyfachril/backoffice/repository/product"
	redisrepo "github.com/rizkyfachril/backoffice/repository/redis"
	userrepo "github.com/rizkyfachril/backoffice/repository/user"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = time.Minute
)

type DashboardApp interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardAppImpl struct {
	productRepo   productrepo.ProductRepository
	categoryRepo  categoryrepo.CategoryRepository
	userRepo      userrepo.UserRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
}

func NewDashboardApp(
	productRepo productrepo.ProductRepository,
	categoryRepo categoryrepo.CategoryRepository,
	userRepo userrepo.UserRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	redisRepo redisrepo.Repository,
) DashboardApp {
	return &dashboardAppImpl{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
	}
}

// GetStats returns entity counts for the admin landing page. Counts are cached
// briefly in Redis; a cache failure falls through to the database.
func (s *dashboardAppImpl) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	if cached, err := s.redisRepo.Get(ctx, statsCacheKey); err == nil && cached != "" {
		var stats model.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		logger.Error("[GetStats] count products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categoryCount, err := s.categoryRepo.Count(ctx)
	if err != nil {
		logger.Error("[GetStats] count categories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		logger.Error("[GetStats] count users", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lowStockCount, err := s.inventoryRepo.CountLowStock(ctx)
	if err != nil {
		logger.Error("[GetStats] count low stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stats := &model.DashboardStats{
		ProductCount:  productCount,
		CategoryCount: categoryCount,
		UserCount:     userCount,
		LowStockCount: lowStockCount,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, statsCacheKey, string(payload), statsCacheTTL); err != nil {
			logger.Warn("[GetStats] cache stats", zap.String("error", err.Error()))
		}
	}

	return stats, nil
}
