package dashboard_test

import (
	"context"
	"errors"
	"testing"

	appdashboard "github.com/rizkyfachril/backoffice/application/dashboard"
	categorymocks "github.com/rizkyfachril/backoffice/mocks/repository/category"
	inventorymocks "github.com/rizkyfachril/backoffice/mocks/repository/inventory"
	productmocks "github.com/rizkyfachril/backoffice/mocks/repository/product"
	redismocks "github.com/rizkyfachril/backoffice/mocks/repository/redis"
	usermocks "github.com/rizkyfachril/backoffice/mocks/repository/user"
	"github.com/stretchr/testify/mock"
)

func TestDashboardApp_GetStats(t *testing.T) {
	type fields struct {
		productRepo   *productmocks.ProductRepository
		categoryRepo  *categorymocks.CategoryRepository
		userRepo      *usermocks.UserRepository
		inventoryRepo *inventorymocks.InventoryRepository
		redisRepo     *redismocks.RedisRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			productRepo:   productmocks.NewProductRepository(t),
			categoryRepo:  categorymocks.NewCategoryRepository(t),
			userRepo:      usermocks.NewUserRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			redisRepo:     redismocks.NewRedisRepository(t),
		}
	}

	t.Run("success: counts from repositories on cache miss", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()

		f.productRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
		f.categoryRepo.On("Count", mock.Anything).Return(int64(4), nil).Once()
		f.userRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()
		f.inventoryRepo.On("CountLowStock", mock.Anything).Return(int64(2), nil).Once()

		f.redisRepo.On("SetWithTTL", mock.Anything, "dashboard:stats", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

		app := appdashboard.NewDashboardApp(f.productRepo, f.categoryRepo, f.userRepo, f.inventoryRepo, f.redisRepo)
		got, err := app.GetStats(context.Background())
		if err != nil {
			t.Fatalf("GetStats() error = %v", err)
		}
		if got.ProductCount != 12 || got.CategoryCount != 4 || got.UserCount != 3 || got.LowStockCount != 2 {
			t.Fatalf("GetStats() = %+v", got)
		}
	})

	t.Run("success: cached stats skip the database", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "dashboard:stats").
			Return(`{"product_count":7,"category_count":2,"user_count":1,"low_stock_count":0}`, nil).
			Once()

		app := appdashboard.NewDashboardApp(f.productRepo, f.categoryRepo, f.userRepo, f.inventoryRepo, f.redisRepo)
		got, err := app.GetStats(context.Background())
		if err != nil {
			t.Fatalf("GetStats() error = %v", err)
		}
		if got.ProductCount != 7 || got.CategoryCount != 2 {
			t.Fatalf("GetStats() = %+v", got)
		}
	})

	t.Run("error: count returns error", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()
		f.productRepo.On("Count", mock.Anything).Return(int64(0), errors.New("db error")).Once()

		app := appdashboard.NewDashboardApp(f.productRepo, f.categoryRepo, f.userRepo, f.inventoryRepo, f.redisRepo)
		if _, err := app.GetStats(context.Background()); err == nil {
			t.Fatal("GetStats() expected error")
		}
	})

	t.Run("success: cache write failure is non-fatal", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()

		f.productRepo.On("Count", mock.Anything).Return(int64(1), nil).Once()
		f.categoryRepo.On("Count", mock.Anything).Return(int64(1), nil).Once()
		f.userRepo.On("Count", mock.Anything).Return(int64(1), nil).Once()
		f.inventoryRepo.On("CountLowStock", mock.Anything).Return(int64(0), nil).Once()

		f.redisRepo.On("SetWithTTL", mock.Anything, "dashboard:stats", mock.AnythingOfType("string"), mock.Anything).Return(errors.New("redis down")).Once()

		app := appdashboard.NewDashboardApp(f.productRepo, f.categoryRepo, f.userRepo, f.inventoryRepo, f.redisRepo)
		got, err := app.GetStats(context.Background())
		if err != nil {
			t.Fatalf("GetStats() error = %v", err)
		}
		if got.ProductCount != 1 {
			t.Fatalf("GetStats() = %+v", got)
		}
	})
}
