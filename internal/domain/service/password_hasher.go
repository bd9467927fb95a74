// Package service defines the interfaces for domain services implemented by
// the infrastructure layer.
package service

// PasswordHasher abstracts password hashing so the application layer does not
// depend on a specific algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
