// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Credential is a registered account: an email address and the hash of its password.
// Records are created once at registration and never mutated afterwards.
type Credential struct {
	ID           uint      // Surrogate identity assigned by the store on creation.
	Email        string    // Login identifier, unique across all credentials and compared case-sensitively.
	PasswordHash string    // bcrypt output; never the plaintext.
	CreatedAt    time.Time // Timestamp of when the account was registered.
}
