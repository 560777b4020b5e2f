package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Role         string     `db:"role" json:"role"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
