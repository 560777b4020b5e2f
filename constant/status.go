package constant

type EntityStatus int

const (
	StatusInactive EntityStatus = 0
	StatusActive   EntityStatus = 1
)
