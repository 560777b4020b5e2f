package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrCodeExists
	ErrInsufficientStock
	ErrInvalidMovementType
	ErrInventoryNotFound
	ErrDuplicateInventory
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrCredentialExists:    "email already exists",
	ErrInvalidPassword:     "password invalid",
	ErrCodeExists:          "code or slug already exists",
	ErrInsufficientStock:   "insufficient stock",
	ErrInvalidMovementType: "invalid movement type",
	ErrInventoryNotFound:   "no inventory record for product",
	ErrDuplicateInventory:  "inventory record already exists",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrCodeExists:          http.StatusBadRequest,
	ErrInsufficientStock:   http.StatusBadRequest,
	ErrInvalidMovementType: http.StatusBadRequest,
	ErrInventoryNotFound:   http.StatusBadRequest,
	ErrDuplicateInventory:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrCredentialExists:    "0005",
	ErrInvalidPassword:     "0006",
	ErrCodeExists:          "0007",
	ErrInsufficientStock:   "0008",
	ErrInvalidMovementType: "0009",
	ErrInventoryNotFound:   "0010",
	ErrDuplicateInventory:  "0011",
}
