package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/rizkyfachril/backoffice/application/product"
	"github.com/rizkyfachril/backoffice/constant"
	productmocks "github.com/rizkyfachril/backoffice/mocks/repository/product"
	"github.com/rizkyfachril/backoffice/model"
	cerr "github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx     context.Context
		page    int
		perPage int
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
	}{
		{
			name: "success: list products with pagination",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				page:    1,
				perPage: 10,
			},
			mockCall: func(f fields) {
				items := []model.ProductListItem{
					{
						ID:    1,
						Name:  "Product 1",
						Slug:  "product-1",
						Price: 50000.0,
					},
					{
						ID:    2,
						Name:  "Product 2",
						Slug:  "product-2",
						Price: 75000.0,
					},
				}
				f.productRepo.
					On("List", mock.Anything, 1, 10).
					Return(items, int64(2), nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items: []model.ProductListItem{
					{
						ID:    1,
						Name:  "Product 1",
						Slug:  "product-1",
						Price: 50000.0,
					},
					{
						ID:    2,
						Name:  "Product 2",
						Slug:  "product-2",
						Price: 75000.0,
					},
				},
				TotalCount: 2,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "success: default page and perPage when zero or negative",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				page:    0,
				perPage: 0,
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything, 1, 10).
					Return([]model.ProductListItem{}, int64(0), nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductListItem{},
				TotalCount: 0,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				page:    1,
				perPage: 10,
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything, 1, 10).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.ListProducts(tt.args.ctx, tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_CreateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.ProductRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			req: &model.ProductRequest{
				Name:  "Widget",
				Slug:  "widget",
				Price: 9.99,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetBySlug", mock.Anything, "widget").Return(nil, nil).Once()

				f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ProductEntity) bool {
					return ent.Name == "Widget" && ent.Slug == "widget"
				})).Return(&model.ProductEntity{
					ID:    1,
					Name:  "Widget",
					Slug:  "widget",
					Price: 9.99,
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: slug already exists",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			req: &model.ProductRequest{
				Name:  "Widget",
				Slug:  "widget",
				Price: 9.99,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetBySlug", mock.Anything, "widget").Return(&model.ProductEntity{
					ID:   2,
					Slug: "widget",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCodeExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.CreateProduct(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID == 0 {
				t.Fatal("CreateProduct() ID should not be zero")
			}
		})
	}
}

func TestProductApp_CreateVariant(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		req      *model.VariantRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create variant",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			id: 1,
			req: &model.VariantRequest{
				Title: "Large / Red",
				SKU:   "WID-L-RED",
				Price: 12.50,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{ID: 1}, nil).Once()
				f.productRepo.On("GetVariantBySKU", mock.Anything, "WID-L-RED").Return(nil, nil).Once()

				f.productRepo.On("CreateVariant", mock.Anything, mock.MatchedBy(func(v *model.ProductVariant) bool {
					return v.ProductID == 1 && v.SKU == "WID-L-RED"
				})).Return(&model.ProductVariant{
					ID:        5,
					ProductID: 1,
					Title:     "Large / Red",
					SKU:       "WID-L-RED",
					Price:     12.50,
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: sku already exists",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			id: 1,
			req: &model.VariantRequest{
				Title: "Large / Red",
				SKU:   "WID-L-RED",
				Price: 12.50,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{ID: 1}, nil).Once()
				f.productRepo.On("GetVariantBySKU", mock.Anything, "WID-L-RED").Return(&model.ProductVariant{
					ID:  9,
					SKU: "WID-L-RED",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCodeExists,
		},
		{
			name: "error: product not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			id: 999,
			req: &model.VariantRequest{
				Title: "Large / Red",
				SKU:   "WID-L-RED",
				Price: 12.50,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo)

			_, err := app.CreateVariant(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateVariant() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestProductApp_DeleteProduct(t *testing.T) {
	t.Run("success: delete existing product", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{ID: 1}, nil).Once()
		productRepo.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()

		app := appproduct.NewProductApp(productRepo)
		if err := app.DeleteProduct(context.Background(), 1); err != nil {
			t.Fatalf("DeleteProduct() error = %v", err)
		}
	})

	t.Run("error: product not found", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		productRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()

		app := appproduct.NewProductApp(productRepo)
		err := app.DeleteProduct(context.Background(), 999)
		if err == nil {
			t.Fatal("DeleteProduct() expected error")
		}

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}
