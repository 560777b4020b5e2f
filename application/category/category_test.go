package category_test

import (
	"context"
	"errors"
	"testing"

	appcategory "github.com/rizkyfachril/backoffice/application/category"
	"github.com/rizkyfachril/backoffice/constant"
	categorymocks "github.com/rizkyfachril/backoffice/mocks/repository/category"
	"github.com/rizkyfachril/backoffice/model"
	cerr "github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCategoryApp_CreateCategory(t *testing.T) {
	type fields struct {
		categoryRepo *categorymocks.CategoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CategoryRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create category",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			req: &model.CategoryRequest{
				Name: "Electronics",
				Slug: "electronics",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetBySlug", mock.Anything, "electronics").Return(nil, nil).Once()

				f.categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.CategoryEntity) bool {
					return ent.Name == "Electronics" && ent.Slug == "electronics"
				})).Return(&model.CategoryEntity{
					ID:   1,
					Name: "Electronics",
					Slug: "electronics",
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: slug already exists",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			req: &model.CategoryRequest{
				Name: "Electronics",
				Slug: "electronics",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetBySlug", mock.Anything, "electronics").Return(&model.CategoryEntity{
					ID:   1,
					Slug: "electronics",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCodeExists,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			req: &model.CategoryRequest{
				Name: "Electronics",
				Slug: "electronics",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetBySlug", mock.Anything, "electronics").Return(nil, nil).Once()
				f.categoryRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcategory.NewCategoryApp(tt.fields.categoryRepo)

			got, err := app.CreateCategory(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateCategory() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatal("CreateCategory() ID should not be zero")
			}
		})
	}
}

func TestCategoryApp_UpdateCategory(t *testing.T) {
	type fields struct {
		categoryRepo *categorymocks.CategoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		req      *model.CategoryRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: update without slug change skips uniqueness check",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 1,
			req: &model.CategoryRequest{
				Name: "Consumer Electronics",
				Slug: "electronics",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.CategoryEntity{
					ID:   1,
					Name: "Electronics",
					Slug: "electronics",
				}, nil).Once()

				f.categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.CategoryEntity) bool {
					return ent.ID == 1 && ent.Name == "Consumer Electronics"
				})).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: new slug taken by another category",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 1,
			req: &model.CategoryRequest{
				Name: "Electronics",
				Slug: "gadgets",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.CategoryEntity{
					ID:   1,
					Slug: "electronics",
				}, nil).Once()

				f.categoryRepo.On("GetBySlug", mock.Anything, "gadgets").Return(&model.CategoryEntity{
					ID:   2,
					Slug: "gadgets",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCodeExists,
		},
		{
			name: "error: category not found",
			fields: fields{
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 999,
			req: &model.CategoryRequest{
				Name: "Electronics",
				Slug: "electronics",
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
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
			app := appcategory.NewCategoryApp(tt.fields.categoryRepo)

			_, err := app.UpdateCategory(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateCategory() error = %v, wantErr %v", err, tt.wantErr)
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

func TestCategoryApp_DeleteCategory(t *testing.T) {
	t.Run("success: delete existing category", func(t *testing.T) {
		categoryRepo := categorymocks.NewCategoryRepository(t)
		categoryRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.CategoryEntity{ID: 1}, nil).Once()
		categoryRepo.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()

		app := appcategory.NewCategoryApp(categoryRepo)
		if err := app.DeleteCategory(context.Background(), 1); err != nil {
			t.Fatalf("DeleteCategory() error = %v", err)
		}
	})

	t.Run("error: category not found", func(t *testing.T) {
		categoryRepo := categorymocks.NewCategoryRepository(t)
		categoryRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()

		app := appcategory.NewCategoryApp(categoryRepo)
		err := app.DeleteCategory(context.Background(), 999)
		if err == nil {
			t.Fatal("DeleteCategory() expected error")
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
