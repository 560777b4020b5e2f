package inventory

import (
	"context"
	"time"

	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/model"
	inventoryrepo "github.com/rizkyfachril/backoffice/repository/inventory"
	txrepo "github.com/rizkyfachril/backoffice/repository/tx"
	"github.com/rizkyfachril/backoffice/thirdparty/rabbitmq"
	"github.com/rizkyfachril/backoffice/utils/errors"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	RecordMovement(ctx context.Context, req *model.RecordMovementRequest) (*model.StockMovement, error)
	ListMovements(ctx context.Context, limit int) ([]model.MovementListItem, error)
	CreateInventory(ctx context.Context, req *model.CreateInventoryRequest) (*model.InventoryRecord, error)
	GetInventory(ctx context.Context, id uint64) (*model.InventoryRecord, error)
	ListInventory(ctx context.Context) ([]model.InventoryRecord, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, publisher *rabbitmq.Publisher) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

// RecordMovement derives the new on-hand quantity from the current inventory
// state, persists it, and appends one immutable ledger entry. The whole
// lookup-compute-write sequence runs in a single transaction with the
// inventory row locked, so concurrent movements on the same (product, variant)
// key serialize and previous_quantity is never stale.
func (s *inventoryAppImpl) RecordMovement(ctx context.Context, req *model.RecordMovementRequest) (*model.StockMovement, error) {
	movementType := constant.MovementType(req.MovementType)
	switch movementType {
	case constant.MovementTypeIn, constant.MovementTypeOut, constant.MovementTypeAdjustment:
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidMovementType)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecordMovement] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	rec, err := s.inventoryRepo.GetByKeyForUpdateTx(ctx, tx, req.ProductID, req.VariantID)
	if err != nil {
		logger.Error("[RecordMovement] get inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var previousQuantity int64
	if rec != nil {
		previousQuantity = rec.Quantity
	}

	var newQuantity int64
	switch movementType {
	case constant.MovementTypeIn:
		newQuantity = previousQuantity + req.Quantity
	case constant.MovementTypeOut:
		if rec == nil {
			return nil, errors.SetCustomError(constant.ErrInventoryNotFound)
		}
		newQuantity = previousQuantity - req.Quantity
		if newQuantity < 0 {
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
	case constant.MovementTypeAdjustment:
		newQuantity = req.Quantity
	}

	now := time.Now()
	isInbound := movementType == constant.MovementTypeIn

	var invID uint64
	if rec == nil {
		newRec := &model.InventoryRecord{
			ProductID:         req.ProductID,
			VariantID:         req.VariantID,
			Quantity:          newQuantity,
			ReservedQuantity:  0,
			AvailableQuantity: newQuantity,
			Location:          req.Location,
			Supplier:          req.Supplier,
		}
		if isInbound {
			newRec.LastRestockDate = &now
		}
		invID, err = s.inventoryRepo.InsertTx(ctx, tx, newRec)
		if err != nil {
			logger.Error("[RecordMovement] insert inventory", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		invID = rec.ID
		up := &model.InventoryUpsert{
			ProductID:       req.ProductID,
			VariantID:       req.VariantID,
			NewQuantity:     newQuantity,
			Supplier:        req.Supplier,
			UpdateSupplier:  isInbound && req.Supplier != "",
			UpdateRestocked: isInbound,
			Now:             now,
		}
		if err := s.inventoryRepo.UpdateQuantityTx(ctx, tx, rec.ID, up); err != nil {
			logger.Error("[RecordMovement] update inventory", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	movement := &model.StockMovement{
		InventoryID:      invID,
		ProductID:        req.ProductID,
		VariantID:        req.VariantID,
		MovementType:     movementType,
		Quantity:         req.Quantity,
		PreviousQuantity: previousQuantity,
		NewQuantity:      newQuantity,
		Reason:           req.Reason,
		Location:         req.Location,
		Reference:        req.Reference,
		Notes:            req.Notes,
		CostPrice:        req.CostPrice,
		Supplier:         req.Supplier,
		ProcessedBy:      req.ProcessedBy,
		CreatedAt:        now,
	}
	movementID, err := s.inventoryRepo.InsertMovementTx(ctx, tx, movement)
	if err != nil {
		logger.Error("[RecordMovement] insert movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	movement.ID = movementID

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecordMovement] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishLowStockAlert(rec, invID, req, newQuantity, now)

	return movement, nil
}

// publishLowStockAlert fires after commit; a publish failure is logged, never
// surfaced to the caller.
func (s *inventoryAppImpl) publishLowStockAlert(rec *model.InventoryRecord, invID uint64, req *model.RecordMovementRequest, newQuantity int64, now time.Time) {
	if s.publisher == nil || rec == nil || rec.ReorderPoint <= 0 {
		return
	}

	available := newQuantity - rec.ReservedQuantity
	if available > rec.ReorderPoint {
		return
	}

	msg := rabbitmq.LowStockMessage{
		InventoryID:       invID,
		ProductID:         req.ProductID,
		VariantID:         req.VariantID,
		AvailableQuantity: available,
		ReorderPoint:      rec.ReorderPoint,
		ReorderQuantity:   rec.ReorderQuantity,
		OccurredAt:        now,
	}
	if err := s.publisher.PublishLowStock(msg); err != nil {
		logger.Error("[RecordMovement] publish low stock alert", zap.String("error", err.Error()))
	}
}

func (s *inventoryAppImpl) ListMovements(ctx context.Context, limit int) ([]model.MovementListItem, error) {
	if limit <= 0 || limit > constant.MaxMovementListLimit {
		limit = constant.MaxMovementListLimit
	}

	items, err := s.inventoryRepo.ListMovements(ctx, limit)
	if err != nil {
		logger.Error("[ListMovements] list movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// CreateInventory is the direct creation path. It computes the available
// quantity the same way the ledger does but appends no movement row.
func (s *inventoryAppImpl) CreateInventory(ctx context.Context, req *model.CreateInventoryRequest) (*model.InventoryRecord, error) {
	existing, err := s.inventoryRepo.GetByKey(ctx, req.ProductID, req.VariantID)
	if err != nil {
		logger.Error("[CreateInventory] get inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateInventory)
	}

	rec := &model.InventoryRecord{
		ProductID:         req.ProductID,
		VariantID:         req.VariantID,
		Quantity:          req.Quantity,
		ReservedQuantity:  req.ReservedQuantity,
		AvailableQuantity: req.Quantity - req.ReservedQuantity,
		ReorderPoint:      req.ReorderPoint,
		ReorderQuantity:   req.ReorderQuantity,
		Location:          req.Location,
		Supplier:          req.Supplier,
	}

	rec, err = s.inventoryRepo.Create(ctx, rec)
	if err != nil {
		logger.Error("[CreateInventory] create inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rec, nil
}

func (s *inventoryAppImpl) GetInventory(ctx context.Context, id uint64) (*model.InventoryRecord, error) {
	rec, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetInventory] get inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return rec, nil
}

func (s *inventoryAppImpl) ListInventory(ctx context.Context) ([]model.InventoryRecord, error) {
	records, err := s.inventoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListInventory] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}
