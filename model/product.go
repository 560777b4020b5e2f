package model

import (
	"time"

	"github.com/rizkyfachril/backoffice/constant"
)

type ProductEntity struct {
	ID          uint64                `db:"id" json:"id"`
	Name        string                `db:"name" json:"name"`
	Slug        string                `db:"slug" json:"slug"`
	Description string                `db:"description" json:"description,omitempty"`
	Price       float64               `db:"price" json:"price"`
	CategoryID  *uint64               `db:"category_id" json:"category_id,omitempty"`
	ImageURL    string                `db:"image_url" json:"image_url,omitempty"`
	Status      constant.EntityStatus `db:"status" json:"status"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

type ProductListItem struct {
	ID           uint64  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Slug         string  `db:"slug" json:"slug"`
	Price        float64 `db:"price" json:"price"`
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  *uint64 `json:"category_id"`
	ImageURL    string  `json:"image_url"`
	Status      int     `json:"status"`
}

type ProductVariant struct {
	ID        uint64     `db:"id" json:"id"`
	ProductID uint64     `db:"product_id" json:"product_id"`
	Title     string     `db:"title" json:"title"`
	SKU       string     `db:"sku" json:"sku"`
	Price     float64    `db:"price" json:"price"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type VariantRequest struct {
	Title string  `json:"title" validate:"required"`
	SKU   string  `json:"sku" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}
