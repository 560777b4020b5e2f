package model

import (
	"time"

	"github.com/rizkyfachril/backoffice/constant"
)

type ShippingCarrier struct {
	ID          uint64                `db:"id" json:"id"`
	Name        string                `db:"name" json:"name"`
	Code        string                `db:"code" json:"code"`
	TrackingURL string                `db:"tracking_url" json:"tracking_url,omitempty"`
	Status      constant.EntityStatus `db:"status" json:"status"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

type CarrierRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	TrackingURL string `json:"tracking_url"`
	Status      int    `json:"status"`
}

type ShippingMethod struct {
	ID            uint64                `db:"id" json:"id"`
	CarrierID     uint64                `db:"carrier_id" json:"carrier_id"`
	Name          string                `db:"name" json:"name"`
	Code          string                `db:"code" json:"code"`
	Price         float64               `db:"price" json:"price"`
	EstimatedDays int                   `db:"estimated_days" json:"estimated_days"`
	Status        constant.EntityStatus `db:"status" json:"status"`
	CreatedAt     time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

type MethodRequest struct {
	CarrierID     uint64  `json:"carrier_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Code          string  `json:"code" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	EstimatedDays int     `json:"estimated_days" validate:"gte=0"`
	Status        int     `json:"status"`
}

type ShippingServiceType struct {
	ID          uint64     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Code        string     `db:"code" json:"code"`
	Description string     `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type ServiceTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}
