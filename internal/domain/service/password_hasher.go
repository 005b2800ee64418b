package service

// PasswordHasher abstracts secret hashing so the local auth backend never
// keeps seed passwords in plaintext after startup.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
