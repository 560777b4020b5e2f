package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	utilsContext "github.com/rizkyfachril/backoffice/utils/context"
	"github.com/rizkyfachril/backoffice/utils/errors"
	validatorx "github.com/rizkyfachril/backoffice/utils/validator"
)

// RecordMovement handler
// @Summary Record a stock movement
// @Description Apply an in/out/adjustment movement to an inventory record and append a ledger entry
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.RecordMovementRequest true "Movement Request"
// @Success 201 {object} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /api/v1/inventory/movements [post]
func (s *RestHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// Attribute the movement to the session user when present
	if userID, ok := utilsContext.GetUserID(ctx); ok {
		req.ProcessedBy = &userID
	}

	res, err := s.InventoryApp.RecordMovement(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// RecordMovementInternal accepts ledger writes from internal services (order
// fulfillment, returns processing) authenticated by API key instead of a user
// session.
func (s *RestHandler) RecordMovementInternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.RecordMovement(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListMovements handler
// @Summary List stock movements
// @Description Up to 1000 most recent movements, newest first, with product and variant display names
// @Tags Inventory
// @Produce json
// @Param limit query int false "Maximum rows (capped at 1000)"
// @Success 200 {array} model.MovementListItem
// @Security BearerAuth
// @Router /api/v1/inventory/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := s.InventoryApp.ListMovements(ctx, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateInventory handler
// @Summary Create an inventory record
// @Description Direct creation path; computes available quantity but appends no ledger entry
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.CreateInventoryRequest true "Inventory Request"
// @Success 201 {object} model.InventoryRecord
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /api/v1/inventory [post]
func (s *RestHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateInventory(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.ListInventory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.GetInventory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
