package entity

import "time"

// Valid roles.
const (
	RoleManager    = "Manager"
	RoleSalesAgent = "SalesAgent"
)

// Valid account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User is a KGL staff account. Email is not unique.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext once persisted
	Role         string // Manager, SalesAgent
	Status       string // Active, Inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
