package shipping

import (
	"context"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	shippingRepo "github.com/rizkyfachril/backoffice/repository/shipping"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

type ShippingApp interface {
	ListCarriers(ctx context.Context) ([]model.ShippingCarrier, error)
	GetCarrier(ctx context.Context, id uint64) (*model.ShippingCarrier, error)
	CreateCarrier(ctx context.Context, req *model.CarrierRequest) (*model.ShippingCarrier, error)
	UpdateCarrier(ctx context.Context, id uint64, req *model.CarrierRequest) (*model.ShippingCarrier, error)
	DeleteCarrier(ctx context.Context, id uint64) error

	ListMethods(ctx context.Context) ([]model.ShippingMethod, error)
	CreateMethod(ctx context.Context, req *model.MethodRequest) (*model.ShippingMethod, error)
	UpdateMethod(ctx context.Context, id uint64, req *model.MethodRequest) (*model.ShippingMethod, error)
	DeleteMethod(ctx context.Context, id uint64) error

	ListServiceTypes(ctx context.Context) ([]model.ShippingServiceType, error)
	CreateServiceType(ctx context.Context, req *model.ServiceTypeRequest) (*model.ShippingServiceType, error)
	UpdateServiceType(ctx context.Context, id uint64, req *model.ServiceTypeRequest) (*model.ShippingServiceType, error)
	DeleteServiceType(ctx context.Context, id uint64) error
}

type shippingAppImpl struct {
	shippingRepo shippingRepo.ShippingRepository
}

func NewShippingApp(shippingRepo shippingRepo.ShippingRepository) ShippingApp {
	return &shippingAppImpl{shippingRepo: shippingRepo}
}

func (s *shippingAppImpl) ListCarriers(ctx context.Context) ([]model.ShippingCarrier, error) {
	carriers, err := s.shippingRepo.ListCarriers(ctx)
	if err != nil {
		logger.Error("[ListCarriers] error shippingRepo.ListCarriers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return carriers, nil
}

func (s *shippingAppImpl) GetCarrier(ctx context.Context, id uint64) (*model.ShippingCarrier, error) {
	carrier, err := s.shippingRepo.GetCarrierByID(ctx, id)
	if err != nil {
		logger.Error("[GetCarrier] error shippingRepo.GetCarrierByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if carrier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return carrier, nil
}

func (s *shippingAppImpl) CreateCarrier(ctx context.Context, req *model.CarrierRequest) (*model.ShippingCarrier, error) {
	existing, err := s.shippingRepo.GetCarrierByCode(ctx, req.Code)
	if err != nil {
		logger.Error("[CreateCarrier] error shippingRepo.GetCarrierByCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	carrier := &model.ShippingCarrier{
		Name:        req.Name,
		Code:        req.Code,
		TrackingURL: req.TrackingURL,
		Status:      constant.EntityStatus(req.Status),
	}

	carrier, err = s.shippingRepo.CreateCarrier(ctx, carrier)
	if err != nil {
		logger.Error("[CreateCarrier] error shippingRepo.CreateCarrier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return carrier, nil
}

func (s *shippingAppImpl) UpdateCarrier(ctx context.Context, id uint64, req *model.CarrierRequest) (*model.ShippingCarrier, error) {
	carrier, err := s.shippingRepo.GetCarrierByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCarrier] error shippingRepo.GetCarrierByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if carrier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Code != carrier.Code {
		existing, err := s.shippingRepo.GetCarrierByCode(ctx, req.Code)
		if err != nil {
			logger.Error("[UpdateCarrier] error shippingRepo.GetCarrierByCode", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	carrier.Name = req.Name
	carrier.Code = req.Code
	carrier.TrackingURL = req.TrackingURL
	carrier.Status = constant.EntityStatus(req.Status)

	if err := s.shippingRepo.UpdateCarrier(ctx, carrier); err != nil {
		logger.Error("[UpdateCarrier] error shippingRepo.UpdateCarrier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return carrier, nil
}

func (s *shippingAppImpl) DeleteCarrier(ctx context.Context, id uint64) error {
	carrier, err := s.shippingRepo.GetCarrierByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteCarrier] error shippingRepo.GetCarrierByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if carrier == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.shippingRepo.DeleteCarrier(ctx, id); err != nil {
		logger.Error("[DeleteCarrier] error shippingRepo.DeleteCarrier", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *shippingAppImpl) ListMethods(ctx context.Context) ([]model.ShippingMethod, error) {
	methods, err := s.shippingRepo.ListMethods(ctx)
	if err != nil {
		logger.Error("[ListMethods] error shippingRepo.ListMethods", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return methods, nil
}

func (s *shippingAppImpl) CreateMethod(ctx context.Context, req *model.MethodRequest) (*model.ShippingMethod, error) {
	carrier, err := s.shippingRepo.GetCarrierByID(ctx, req.CarrierID)
	if err != nil {
		logger.Error("[CreateMethod] error shippingRepo.GetCarrierByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if carrier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.shippingRepo.GetMethodByCode(ctx, req.Code)
	if err != nil {
		logger.Error("[CreateMethod] error shippingRepo.GetMethodByCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	method := &model.ShippingMethod{
		CarrierID:     req.CarrierID,
		Name:          req.Name,
		Code:          req.Code,
		Price:         req.Price,
		EstimatedDays: req.EstimatedDays,
		Status:        constant.EntityStatus(req.Status),
	}

	method, err = s.shippingRepo.CreateMethod(ctx, method)
	if err != nil {
		logger.Error("[CreateMethod] error shippingRepo.CreateMethod", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return method, nil
}

func (s *shippingAppImpl) UpdateMethod(ctx context.Context, id uint64, req *model.MethodRequest) (*model.ShippingMethod, error) {
	method, err := s.shippingRepo.GetMethodByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateMethod] error shippingRepo.GetMethodByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if method == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Code != method.Code {
		existing, err := s.shippingRepo.GetMethodByCode(ctx, req.Code)
		if err != nil {
			logger.Error("[UpdateMethod] error shippingRepo.GetMethodByCode", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	method.CarrierID = req.CarrierID
	method.Name = req.Name
	method.Code = req.Code
	method.Price = req.Price
	method.EstimatedDays = req.EstimatedDays
	method.Status = constant.EntityStatus(req.Status)

	if err := s.shippingRepo.UpdateMethod(ctx, method); err != nil {
		logger.Error("[UpdateMethod] error shippingRepo.UpdateMethod", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return method, nil
}

func (s *shippingAppImpl) DeleteMethod(ctx context.Context, id uint64) error {
	method, err := s.shippingRepo.GetMethodByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteMethod] error shippingRepo.GetMethodByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if method == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.shippingRepo.DeleteMethod(ctx, id); err != nil {
		logger.Error("[DeleteMethod] error shippingRepo.DeleteMethod", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *shippingAppImpl) ListServiceTypes(ctx context.Context) ([]model.ShippingServiceType, error) {
	types, err := s.shippingRepo.ListServiceTypes(ctx)
	if err != nil {
		logger.Error("[ListServiceTypes] error shippingRepo.ListServiceTypes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return types, nil
}

func (s *shippingAppImpl) CreateServiceType(ctx context.Context, req *model.ServiceTypeRequest) (*model.ShippingServiceType, error) {
	existing, err := s.shippingRepo.GetServiceTypeByCode(ctx, req.Code)
	if err != nil {
		logger.Error("[CreateServiceType] error shippingRepo.GetServiceTypeByCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCodeExists)
	}

	serviceType := &model.ShippingServiceType{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}

	serviceType, err = s.shippingRepo.CreateServiceType(ctx, serviceType)
	if err != nil {
		logger.Error("[CreateServiceType] error shippingRepo.CreateServiceType", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return serviceType, nil
}

func (s *shippingAppImpl) UpdateServiceType(ctx context.Context, id uint64, req *model.ServiceTypeRequest) (*model.ShippingServiceType, error) {
	serviceType, err := s.shippingRepo.GetServiceTypeByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateServiceType] error shippingRepo.GetServiceTypeByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if serviceType == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Code != serviceType.Code {
		existing, err := s.shippingRepo.GetServiceTypeByCode(ctx, req.Code)
		if err != nil {
			logger.Error("[UpdateServiceType] error shippingRepo.GetServiceTypeByCode", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCodeExists)
		}
	}

	serviceType.Name = req.Name
	serviceType.Code = req.Code
	serviceType.Description = req.Description

	if err := s.shippingRepo.UpdateServiceType(ctx, serviceType); err != nil {
		logger.Error("[UpdateServiceType] error shippingRepo.UpdateServiceType", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return serviceType, nil
}

func (s *shippingAppImpl) DeleteServiceType(ctx context.Context, id uint64) error {
	serviceType, err := s.shippingRepo.GetServiceTypeByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteServiceType] error shippingRepo.GetServiceTypeByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if serviceType == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.shippingRepo.DeleteServiceType(ctx, id); err != nil {
		logger.Error("[DeleteServiceType] error shippingRepo.DeleteServiceType", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
