package models

import "time"

// Роли операторов CMS.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User — оператор CMS. Создаётся сидом/миграциями, не через публичный API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
