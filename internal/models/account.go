package models

import "time"

// AccountDB represents an account record in the database
type AccountDB struct {
	ID           int64      `json:"id" db:"id"`                       // Primary key
	Name         string     `json:"name" db:"name"`                   // Unique display name (byte-exact comparison)
	PasswordHash string     `json:"-" db:"password_hash"`             // bcrypt hash, never serialized
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"` // Nil until first login
}
