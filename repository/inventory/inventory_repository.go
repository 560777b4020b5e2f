package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rizkyfachril/backoffice/model"
)

type InventoryRepository interface {
	GetByKeyForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64, variantID *uint64) (*model.InventoryRecord, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, rec *model.InventoryRecord) (uint64, error)
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, up *model.InventoryUpsert) error
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (uint64, error)

	Create(ctx context.Context, rec *model.InventoryRecord) (*model.InventoryRecord, error)
	GetByID(ctx context.Context, id uint64) (*model.InventoryRecord, error)
	GetByKey(ctx context.Context, productID uint64, variantID *uint64) (*model.InventoryRecord, error)
	List(ctx context.Context) ([]model.InventoryRecord, error)
	ListMovements(ctx context.Context, limit int) ([]model.MovementListItem, error)
	CountLowStock(ctx context.Context) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	inventoryColumns = `id, product_id, variant_id, quantity, reserved_quantity, available_quantity,
reorder_point, reorder_quantity, location, supplier, status, last_restock_date, created_at, updated_at`

	insertInventoryQuery = `INSERT INTO inventory
(product_id, variant_id, quantity, reserved_quantity, available_quantity, reorder_point, reorder_quantity, location, supplier, last_restock_date, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	insertMovementQuery = `INSERT INTO stock_movement
(inventory_id, product_id, variant_id, movement_type, quantity, previous_quantity, new_quantity, reason, location, reference, notes, cost_price, supplier, processed_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	listMovementsQuery = `SELECT m.id, m.inventory_id, m.product_id,
COALESCE(p.name, 'Unknown Product') AS product_name,
m.variant_id, v.title AS variant_title,
m.movement_type, m.quantity, m.previous_quantity, m.new_quantity,
m.reason, m.location, m.reference, m.created_at
FROM stock_movement m
LEFT JOIN product p ON m.product_id = p.id
LEFT JOIN product_variant v ON m.variant_id = v.id
ORDER BY m.created_at DESC, m.id DESC
LIMIT ?`

	countLowStockQuery = `SELECT COUNT(*) FROM inventory WHERE reorder_point > 0 AND available_quantity <= reorder_point`
)

// GetByKeyForUpdateTx locks the inventory row for the exact (product, variant)
// key. The null-safe comparison makes a missing variant match NULL only.
func (r *SQL) GetByKeyForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64, variantID *uint64) (*model.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = ? AND variant_id <=> ? FOR UPDATE`

	var rec model.InventoryRecord
	if err := tx.QueryRowxContext(ctx, query, productID, variantID).StructScan(&rec); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, rec *model.InventoryRecord) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertInventoryQuery,
		rec.ProductID, rec.VariantID, rec.Quantity, rec.ReservedQuantity, rec.AvailableQuantity,
		rec.ReorderPoint, rec.ReorderQuantity, rec.Location, rec.Supplier, rec.LastRestockDate)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

// UpdateQuantityTx persists the computed on-hand quantity and rederives the
// available quantity from the untouched reserved quantity in the same
// statement, so the invariant holds without a second read.
func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, up *model.InventoryUpsert) error {
	query := "UPDATE inventory SET quantity = ?, available_quantity = ? - reserved_quantity, updated_at = ?"
	args := []any{up.NewQuantity, up.NewQuantity, up.Now}

	if up.UpdateRestocked {
		query += ", last_restock_date = ?"
		args = append(args, up.Now)
	}
	if up.UpdateSupplier {
		query += ", supplier = ?"
		args = append(args, up.Supplier)
	}

	query += " WHERE id = ?"
	args = append(args, id)

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertMovementQuery,
		m.InventoryID, m.ProductID, m.VariantID, m.MovementType, m.Quantity,
		m.PreviousQuantity, m.NewQuantity, m.Reason, m.Location, m.Reference,
		m.Notes, m.CostPrice, m.Supplier, m.ProcessedBy, m.CreatedAt)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (r *SQL) Create(ctx context.Context, rec *model.InventoryRecord) (*model.InventoryRecord, error) {
	result, err := r.conn.ExecContext(ctx, insertInventoryQuery,
		rec.ProductID, rec.VariantID, rec.Quantity, rec.ReservedQuantity, rec.AvailableQuantity,
		rec.ReorderPoint, rec.ReorderQuantity, rec.Location, rec.Supplier, rec.LastRestockDate)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	rec.ID = uint64(lastID)
	return rec, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = ?`

	var rec model.InventoryRecord
	if err := r.conn.QueryRowxContext(ctx, query, id).StructScan(&rec); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) GetByKey(ctx context.Context, productID uint64, variantID *uint64) (*model.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = ? AND variant_id <=> ?`

	var rec model.InventoryRecord
	if err := r.conn.QueryRowxContext(ctx, query, productID, variantID).StructScan(&rec); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) List(ctx context.Context) ([]model.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY id`

	rows, err := r.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.InventoryRecord, 0)
	for rows.Next() {
		var rec model.InventoryRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQL) ListMovements(ctx context.Context, limit int) ([]model.MovementListItem, error) {
	rows, err := r.conn.QueryxContext(ctx, listMovementsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MovementListItem, 0)
	for rows.Next() {
		var it model.MovementListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.GetContext(ctx, &count, countLowStockQuery); err != nil {
		return 0, err
	}
	return count, nil
}
