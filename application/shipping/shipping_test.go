package shipping_test

import (
	"context"
	"errors"
	"testing"

	appshipping "github.com/rizkyfachril/backoffice/application/shipping"
	"github.com/rizkyfachril/backoffice/constant"
	shippingmocks "github.com/rizkyfachril/backoffice/mocks/repository/shipping"
	"github.com/rizkyfachril/backoffice/model"
	cerr "github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestShippingApp_CreateCarrier(t *testing.T) {
	type fields struct {
		shippingRepo *shippingmocks.ShippingRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CarrierRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create carrier",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.CarrierRequest{
				Name: "JNE",
				Code: "jne",
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByCode", mock.Anything, "jne").Return(nil, nil).Once()

				f.shippingRepo.On("CreateCarrier", mock.Anything, mock.MatchedBy(func(c *model.ShippingCarrier) bool {
					return c.Name == "JNE" && c.Code == "jne"
				})).Return(&model.ShippingCarrier{
					ID:   1,
					Name: "JNE",
					Code: "jne",
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: code already exists",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.CarrierRequest{
				Name: "JNE",
				Code: "jne",
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByCode", mock.Anything, "jne").Return(&model.ShippingCarrier{
					ID:   1,
					Code: "jne",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCodeExists,
		},
		{
			name: "error: repository returns error",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.CarrierRequest{
				Name: "JNE",
				Code: "jne",
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByCode", mock.Anything, "jne").Return(nil, errors.New("db error")).Once()
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
			app := appshipping.NewShippingApp(tt.fields.shippingRepo)

			got, err := app.CreateCarrier(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateCarrier() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatal("CreateCarrier() ID should not be zero")
			}
		})
	}
}

func TestShippingApp_CreateMethod(t *testing.T) {
	type fields struct {
		shippingRepo *shippingmocks.ShippingRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.MethodRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create method under existing carrier",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.MethodRequest{
				CarrierID:     1,
				Name:          "Regular",
				Code:          "jne-reg",
				Price:         9000,
				EstimatedDays: 3,
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByID", mock.Anything, uint64(1)).Return(&model.ShippingCarrier{ID: 1}, nil).Once()
				f.shippingRepo.On("GetMethodByCode", mock.Anything, "jne-reg").Return(nil, nil).Once()

				f.shippingRepo.On("CreateMethod", mock.Anything, mock.MatchedBy(func(m *model.ShippingMethod) bool {
					return m.CarrierID == 1 && m.Code == "jne-reg"
				})).Return(&model.ShippingMethod{
					ID:        1,
					CarrierID: 1,
					Code:      "jne-reg",
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: carrier not found",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.MethodRequest{
				CarrierID: 999,
				Name:      "Regular",
				Code:      "jne-reg",
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: method code already exists",
			fields: fields{
				shippingRepo: shippingmocks.NewShippingRepository(t),
			},
			req: &model.MethodRequest{
				CarrierID: 1,
				Name:      "Regular",
				Code:      "jne-reg",
			},
			mockCall: func(f fields) {
				f.shippingRepo.On("GetCarrierByID", mock.Anything, uint64(1)).Return(&model.ShippingCarrier{ID: 1}, nil).Once()
				f.shippingRepo.On("GetMethodByCode", mock.Anything, "jne-reg").Return(&model.ShippingMethod{
					ID:   2,
					Code: "jne-reg",
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
			app := appshipping.NewShippingApp(tt.fields.shippingRepo)

			_, err := app.CreateMethod(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateMethod() error = %v, wantErr %v", err, tt.wantErr)
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

func TestShippingApp_UpdateCarrier(t *testing.T) {
	t.Run("success: code unchanged skips uniqueness check", func(t *testing.T) {
		shippingRepo := shippingmocks.NewShippingRepository(t)
		shippingRepo.On("GetCarrierByID", mock.Anything, uint64(1)).Return(&model.ShippingCarrier{
			ID:   1,
			Name: "JNE",
			Code: "jne",
		}, nil).Once()
		shippingRepo.On("UpdateCarrier", mock.Anything, mock.MatchedBy(func(c *model.ShippingCarrier) bool {
			return c.ID == 1 && c.Name == "JNE Express"
		})).Return(nil).Once()

		app := appshipping.NewShippingApp(shippingRepo)
		got, err := app.UpdateCarrier(context.Background(), 1, &model.CarrierRequest{
			Name: "JNE Express",
			Code: "jne",
		})
		if err != nil {
			t.Fatalf("UpdateCarrier() error = %v", err)
		}
		if got.Name != "JNE Express" {
			t.Fatalf("UpdateCarrier() name = %s", got.Name)
		}
	})

	t.Run("error: new code taken by another carrier", func(t *testing.T) {
		shippingRepo := shippingmocks.NewShippingRepository(t)
		shippingRepo.On("GetCarrierByID", mock.Anything, uint64(1)).Return(&model.ShippingCarrier{
			ID:   1,
			Code: "jne",
		}, nil).Once()
		shippingRepo.On("GetCarrierByCode", mock.Anything, "sicepat").Return(&model.ShippingCarrier{
			ID:   2,
			Code: "sicepat",
		}, nil).Once()

		app := appshipping.NewShippingApp(shippingRepo)
		_, err := app.UpdateCarrier(context.Background(), 1, &model.CarrierRequest{
			Name: "JNE",
			Code: "sicepat",
		})
		if err == nil {
			t.Fatal("UpdateCarrier() expected error")
		}

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrCodeExists] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrCodeExists])
		}
	})
}
