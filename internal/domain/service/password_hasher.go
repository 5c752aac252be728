// Package service defines contracts for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts credential hashing so the usecase layer does not
// depend on a specific algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
