package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	"github.com/rizkyfachril/backoffice/utils/errors"
	validatorx "github.com/rizkyfachril/backoffice/utils/validator"
)

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.CategoryRequest true "Category Request"
// @Success 201 {object} model.CategoryEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /api/v1/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CategoryApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
