package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	"github.com/rizkyfachril/backoffice/utils/errors"
	validatorx "github.com/rizkyfachril/backoffice/utils/validator"
)

func (s *RestHandler) ListCarriers(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShippingApp.ListCarriers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetCarrier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.GetCarrier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateCarrier(w http.ResponseWriter, r *http.Request) {
	var req model.CarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.CreateCarrier(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) UpdateCarrier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.UpdateCarrier(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteCarrier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ShippingApp.DeleteCarrier(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShippingApp.ListMethods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateMethod(w http.ResponseWriter, r *http.Request) {
	var req model.MethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.CreateMethod(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.MethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.UpdateMethod(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ShippingApp.DeleteMethod(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShippingApp.ListServiceTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req model.ServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.CreateServiceType(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.UpdateServiceType(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ShippingApp.DeleteServiceType(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
