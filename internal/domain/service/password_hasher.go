// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Two calls with the same password return different hashes.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// It returns false, never an error, for malformed hashes or empty passwords.
	Check(password, hash string) bool
}
