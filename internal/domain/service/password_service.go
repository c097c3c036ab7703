package service

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword creates a salted one-way digest of the given password.
	// Two calls with the same plaintext produce different digests.
	HashPassword(password string) (string, error)

	// CheckPasswordHash compares a plain password against a stored digest
	// using a constant-time comparison.
	CheckPasswordHash(password, hash string) (bool, error)
}
