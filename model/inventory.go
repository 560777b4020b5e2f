package model

import (
	"time"

	"github.com/rizkyfachril/backoffice/constant"
)

// InventoryRecord holds the current stock state for a (product, variant) key.
// At most one record exists per key; variant-less products use a NULL variant.
type InventoryRecord struct {
	ID                uint64                `db:"id" json:"id"`
	ProductID         uint64                `db:"product_id" json:"product_id"`
	VariantID         *uint64               `db:"variant_id" json:"variant_id,omitempty"`
	Quantity          int64                 `db:"quantity" json:"quantity"`
	ReservedQuantity  int64                 `db:"reserved_quantity" json:"reserved_quantity"`
	AvailableQuantity int64                 `db:"available_quantity" json:"available_quantity"`
	ReorderPoint      int64                 `db:"reorder_point" json:"reorder_point"`
	ReorderQuantity   int64                 `db:"reorder_quantity" json:"reorder_quantity"`
	Location          string                `db:"location" json:"location"`
	Supplier          string                `db:"supplier" json:"supplier"`
	Status            constant.EntityStatus `db:"status" json:"status"`
	LastRestockDate   *time.Time            `db:"last_restock_date" json:"last_restock_date,omitempty"`
	CreatedAt         time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

// StockMovement is one immutable ledger entry. Movements are never edited or
// deleted after insert.
type StockMovement struct {
	ID               uint64                `db:"id" json:"id"`
	InventoryID      uint64                `db:"inventory_id" json:"inventory_id"`
	ProductID        uint64                `db:"product_id" json:"product_id"`
	VariantID        *uint64               `db:"variant_id" json:"variant_id,omitempty"`
	MovementType     constant.MovementType `db:"movement_type" json:"movement_type"`
	Quantity         int64                 `db:"quantity" json:"quantity"`
	PreviousQuantity int64                 `db:"previous_quantity" json:"previous_quantity"`
	NewQuantity      int64                 `db:"new_quantity" json:"new_quantity"`
	Reason           string                `db:"reason" json:"reason"`
	Location         string                `db:"location" json:"location,omitempty"`
	Reference        string                `db:"reference" json:"reference,omitempty"`
	Notes            string                `db:"notes" json:"notes,omitempty"`
	CostPrice        *float64              `db:"cost_price" json:"cost_price,omitempty"`
	Supplier         string                `db:"supplier" json:"supplier,omitempty"`
	ProcessedBy      *uint64               `db:"processed_by" json:"processed_by,omitempty"`
	CreatedAt        time.Time             `db:"created_at" json:"created_at"`
}

// MovementListItem is a ledger entry flattened with catalog display names for
// the movement history endpoint.
type MovementListItem struct {
	ID               uint64                `db:"id" json:"id"`
	InventoryID      uint64                `db:"inventory_id" json:"inventory_id"`
	ProductID        uint64                `db:"product_id" json:"product_id"`
	ProductName      string                `db:"product_name" json:"product_name"`
	VariantID        *uint64               `db:"variant_id" json:"variant_id,omitempty"`
	VariantTitle     *string               `db:"variant_title" json:"variant_title,omitempty"`
	MovementType     constant.MovementType `db:"movement_type" json:"movement_type"`
	Quantity         int64                 `db:"quantity" json:"quantity"`
	PreviousQuantity int64                 `db:"previous_quantity" json:"previous_quantity"`
	NewQuantity      int64                 `db:"new_quantity" json:"new_quantity"`
	Reason           string                `db:"reason" json:"reason"`
	Location         string                `db:"location" json:"location,omitempty"`
	Reference        string                `db:"reference" json:"reference,omitempty"`
	CreatedAt        time.Time             `db:"created_at" json:"created_at"`
}

type RecordMovementRequest struct {
	ProductID    uint64   `json:"product_id" validate:"required"`
	VariantID    *uint64  `json:"variant_id"`
	MovementType string   `json:"movement_type" validate:"required"`
	Quantity     int64    `json:"quantity" validate:"required,gt=0"`
	Reason       string   `json:"reason" validate:"required"`
	Location     string   `json:"location"`
	Reference    string   `json:"reference"`
	Notes        string   `json:"notes"`
	CostPrice    *float64 `json:"cost_price"`
	Supplier     string   `json:"supplier"`
	ProcessedBy  *uint64  `json:"-"`
}

type CreateInventoryRequest struct {
	ProductID        uint64  `json:"product_id" validate:"required"`
	VariantID        *uint64 `json:"variant_id"`
	Quantity         int64   `json:"quantity" validate:"gte=0"`
	ReservedQuantity int64   `json:"reserved_quantity" validate:"gte=0"`
	ReorderPoint     int64   `json:"reorder_point" validate:"gte=0"`
	ReorderQuantity  int64   `json:"reorder_quantity" validate:"gte=0"`
	Location         string  `json:"location"`
	Supplier         string  `json:"supplier"`
}

// InventoryUpsert carries the computed inventory state the ledger persists
// inside the movement transaction.
type InventoryUpsert struct {
	ProductID       uint64
	VariantID       *uint64
	NewQuantity     int64
	Location        string
	Supplier        string
	UpdateSupplier  bool
	UpdateRestocked bool
	Now             time.Time
}
