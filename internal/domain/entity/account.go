// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account represents a registered identity that can authenticate and own tasks.
// The email doubles as the login identifier and is unique across the store.
type Account struct {
	ID           int64     // Generated primary key.
	Email        string    // Login identifier; unique, never empty.
	PasswordHash string    // Bcrypt hash of the account password; never exposed outside the store.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
